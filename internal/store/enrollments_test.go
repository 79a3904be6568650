package store

import (
	"context"
	"testing"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func countRow(n int) pgx.Row {
	return &fakeRow{scan: func(dest ...any) { *dest[0].(*int) = n }}
}

func TestIsEnrolled(t *testing.T) {
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Equal(t, 5, args[0])
			require.Equal(t, 3, args[1])
			return countRow(1)
		},
	}
	enrolled, err := IsEnrolled(context.Background(), db, 5, 3)
	require.NoError(t, err)
	require.True(t, enrolled)
}

func TestPremiumEnrollmentCount(t *testing.T) {
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row { return countRow(4) },
	}
	n, err := PremiumEnrollmentCount(context.Background(), db, 5)
	require.NoError(t, err)
	require.Equal(t, 4, n)
}

func TestSubscribe(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, 5, args[0])
				require.Equal(t, 3, args[1])
				return pgconn.NewCommandTag("INSERT 0 1"), nil
			},
		}
		require.NoError(t, Subscribe(context.Background(), db, 5, 3))
	})

	t.Run("already subscribed", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, &pgconn.PgError{Code: "23505"}
			},
		}
		require.ErrorIs(t, Subscribe(context.Background(), db, 5, 3), ErrConflict)
	})
}

func TestUnsubscribe(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, Unsubscribe(context.Background(), db, 5, 3))
	})

	t.Run("not subscribed", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		require.ErrorIs(t, Unsubscribe(context.Background(), db, 5, 3), ErrConflict)
	})
}

func TestStudentsByTeacher(t *testing.T) {
	db := &database.FakeDB{
		QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
			require.Equal(t, 1, args[0])
			return &fakeRows{scans: []func(dest ...any){
				func(dest ...any) {
					*dest[0].(*int) = 5
					*dest[1].(*string) = "Bob"
					*dest[2].(*string) = "Jones"
					*dest[3].(*string) = "bob@example.com"
					*dest[4].(*int) = 3
					*dest[5].(*string) = "Math"
				},
			}}, nil
		},
	}
	rows, err := StudentsByTeacher(context.Background(), db, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "bob@example.com", rows[0].Email)
	require.Equal(t, "Math", rows[0].CourseTitle)
}
