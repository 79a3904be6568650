package users

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/model"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func txDB(committed *bool) *database.FakeDB {
	return &database.FakeDB{
		BeginFn: func(context.Context) (pgx.Tx, error) {
			return &database.FakeTx{
				CommitFn: func(context.Context) error {
					if committed != nil {
						*committed = true
					}
					return nil
				},
			}, nil
		},
	}
}

func TestRegisterTeacherHandler(t *testing.T) {
	e := echo.New()
	body := `{"email":"T@Example.com","password":"abcdef12","first_name":"Alice","last_name":"Smith"}`

	t.Run("weak password", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		validatePassword = func(string) error { return errors.New("weak") }
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, RegisterTeacherHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		validatePassword = func(string) error { return nil }
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(context.Context, database.Querier, *model.User) (*model.User, error) {
			return nil, store.ErrConflict
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, RegisterTeacherHandler(txDB(nil))(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Contains(t, rec.Body.String(), `e-mail \"t@example.com\" is already in use`)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		validatePassword = func(string) error { return nil }
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(_ context.Context, _ database.Querier, u *model.User) (*model.User, error) {
			require.Equal(t, "t@example.com", u.Email)
			u.ID = 42
			return u, nil
		}
		createTeacher = func(_ context.Context, _ database.Querier, teacher *model.Teacher) (*model.Teacher, error) {
			require.Equal(t, 42, teacher.UserID)
			require.Equal(t, "h", teacher.PasswordHash)
			teacher.ID = 7
			return teacher, nil
		}
		committed := false
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, RegisterTeacherHandler(txDB(&committed))(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.True(t, committed)
		require.Contains(t, rec.Body.String(), `"teacher_id":7`)
		require.Contains(t, rec.Body.String(), `"user_id":42`)
	})

	t.Run("profile insert fails, no commit", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		validatePassword = func(string) error { return nil }
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(_ context.Context, _ database.Querier, u *model.User) (*model.User, error) {
			u.ID = 42
			return u, nil
		}
		createTeacher = func(context.Context, database.Querier, *model.Teacher) (*model.Teacher, error) {
			return nil, errors.New("boom")
		}
		committed := false
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, RegisterTeacherHandler(txDB(&committed))(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.False(t, committed)
	})
}

func TestRegisterStudentHandler(t *testing.T) {
	e := echo.New()
	body := `{"email":"s@example.com","password":"abcdef12","first_name":"Bob","last_name":"Jones"}`

	t.Run("duplicate email", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		validatePassword = func(string) error { return nil }
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(context.Context, database.Querier, *model.User) (*model.User, error) {
			return nil, store.ErrConflict
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, RegisterStudentHandler(txDB(nil))(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		validatePassword = func(string) error { return nil }
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(_ context.Context, _ database.Querier, u *model.User) (*model.User, error) {
			u.ID = 42
			return u, nil
		}
		createStudent = func(_ context.Context, _ database.Querier, student *model.Student) (*model.Student, error) {
			require.Equal(t, 42, student.UserID)
			student.ID = 6
			return student, nil
		}
		committed := false
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, RegisterStudentHandler(txDB(&committed))(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.True(t, committed)
		require.Contains(t, rec.Body.String(), `"student_id":6`)
	})
}
