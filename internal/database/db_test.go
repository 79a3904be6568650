package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestFakeDB(t *testing.T) {
	ctx := context.Background()
	f := &FakeDB{}

	require.Panics(t, func() { _, _ = f.Exec(ctx, "q") })
	require.Panics(t, func() { _, _ = f.Query(ctx, "q") })
	require.Panics(t, func() { f.QueryRow(ctx, "q") })
	require.Panics(t, func() { _, _ = f.Begin(ctx) })
	require.Panics(t, func() { _ = f.Ping(ctx) })
	f.Close()

	f.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}
	f.PingFn = func(context.Context) error { return errors.New("down") }
	closed := false
	f.CloseFn = func() { closed = true }

	tag, err := f.Exec(ctx, "q")
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
	require.Error(t, f.Ping(ctx))
	f.Close()
	require.True(t, closed)
}

func TestFakeTx(t *testing.T) {
	ctx := context.Background()
	tx := &FakeTx{}

	// Defaults: commit and rollback succeed, Begin nests onto itself.
	require.NoError(t, tx.Commit(ctx))
	require.NoError(t, tx.Rollback(ctx))
	nested, err := tx.Begin(ctx)
	require.NoError(t, err)
	require.Same(t, tx, nested)

	require.Panics(t, func() { _, _ = tx.Exec(ctx, "q") })
	require.Panics(t, func() { _, _ = tx.Prepare(ctx, "n", "q") })

	committed := false
	tx.CommitFn = func(context.Context) error { committed = true; return nil }
	require.NoError(t, tx.Commit(ctx))
	require.True(t, committed)
}
