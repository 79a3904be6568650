package enrollments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/middleware"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/model"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restore() {
	getCourseByID = store.GetCourseByID
	premiumEnrollmentCount = store.PremiumEnrollmentCount
	subscribe = store.Subscribe
	unsubscribe = store.Unsubscribe
	studentsByTeacher = store.StudentsByTeacher
}

func newSubCtx(e *echo.Echo, method, id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/courses/"+id+"/subscription", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetPath("/courses/:course_id/subscription")
	ctx.SetParamNames("course_id")
	ctx.SetParamValues(id)
	ctx.Set(middleware.ContextStudentKey, &model.Student{ID: 5})
	return ctx, rec
}

func TestSubscribeHandler(t *testing.T) {
	e := echo.New()

	t.Run("course not found", func(t *testing.T) {
		t.Cleanup(restore)
		getCourseByID = func(context.Context, database.Querier, int) (*model.Course, error) {
			return nil, store.ErrNotFound
		}
		ctx, rec := newSubCtx(e, http.MethodPost, "3")
		require.NoError(t, SubscribeHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("premium cap reached", func(t *testing.T) {
		t.Cleanup(restore)
		getCourseByID = func(context.Context, database.Querier, int) (*model.Course, error) {
			return &model.Course{ID: 3, IsPremium: true}, nil
		}
		premiumEnrollmentCount = func(context.Context, database.Querier, int) (int, error) {
			return MaxPremiumEnrollments, nil
		}
		ctx, rec := newSubCtx(e, http.MethodPost, "3")
		require.NoError(t, SubscribeHandler(nil)(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Contains(t, rec.Body.String(), "cannot subscribe to more than 5 premium courses")
	})

	t.Run("premium under cap", func(t *testing.T) {
		t.Cleanup(restore)
		getCourseByID = func(context.Context, database.Querier, int) (*model.Course, error) {
			return &model.Course{ID: 3, IsPremium: true}, nil
		}
		premiumEnrollmentCount = func(context.Context, database.Querier, int) (int, error) {
			return MaxPremiumEnrollments - 1, nil
		}
		subscribe = func(_ context.Context, _ database.Querier, studentID, courseID int) error {
			require.Equal(t, 5, studentID)
			require.Equal(t, 3, courseID)
			return nil
		}
		ctx, rec := newSubCtx(e, http.MethodPost, "3")
		require.NoError(t, SubscribeHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("already subscribed", func(t *testing.T) {
		t.Cleanup(restore)
		getCourseByID = func(context.Context, database.Querier, int) (*model.Course, error) {
			return &model.Course{ID: 3}, nil
		}
		subscribe = func(context.Context, database.Querier, int, int) error {
			return store.ErrConflict
		}
		ctx, rec := newSubCtx(e, http.MethodPost, "3")
		require.NoError(t, SubscribeHandler(nil)(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Contains(t, rec.Body.String(), "already subscribed")
	})

	t.Run("non-premium skips cap check", func(t *testing.T) {
		t.Cleanup(restore)
		getCourseByID = func(context.Context, database.Querier, int) (*model.Course, error) {
			return &model.Course{ID: 3}, nil
		}
		premiumEnrollmentCount = func(context.Context, database.Querier, int) (int, error) {
			t.Fatal("cap check not expected")
			return 0, nil
		}
		subscribe = func(context.Context, database.Querier, int, int) error { return nil }
		ctx, rec := newSubCtx(e, http.MethodPost, "3")
		require.NoError(t, SubscribeHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUnsubscribeHandler(t *testing.T) {
	e := echo.New()

	t.Run("not subscribed", func(t *testing.T) {
		t.Cleanup(restore)
		getCourseByID = func(context.Context, database.Querier, int) (*model.Course, error) {
			return &model.Course{ID: 3}, nil
		}
		unsubscribe = func(context.Context, database.Querier, int, int) error {
			return store.ErrConflict
		}
		ctx, rec := newSubCtx(e, http.MethodDelete, "3")
		require.NoError(t, UnsubscribeHandler(nil)(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Contains(t, rec.Body.String(), "not subscribed")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getCourseByID = func(context.Context, database.Querier, int) (*model.Course, error) {
			return &model.Course{ID: 3}, nil
		}
		unsubscribe = func(context.Context, database.Querier, int, int) error { return nil }
		ctx, rec := newSubCtx(e, http.MethodDelete, "3")
		require.NoError(t, UnsubscribeHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "successfully unsubscribed")
	})
}

func TestStudentsReportHandler(t *testing.T) {
	e := echo.New()

	newReportCtx := func() (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/reports/students", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.Set(middleware.ContextTeacherKey, &model.Teacher{ID: 1})
		return ctx, rec
	}

	t.Run("no students", func(t *testing.T) {
		t.Cleanup(restore)
		studentsByTeacher = func(context.Context, database.Querier, int) ([]model.StudentReport, error) {
			return nil, nil
		}
		ctx, rec := newReportCtx()
		require.NoError(t, StudentsReportHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "no students found for the given teacher's courses")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		studentsByTeacher = func(_ context.Context, _ database.Querier, teacherID int) ([]model.StudentReport, error) {
			require.Equal(t, 1, teacherID)
			return []model.StudentReport{
				{StudentID: 5, FirstName: "Bob", LastName: "Jones", Email: "bob@example.com", CourseID: 3, CourseTitle: "Math"},
			}, nil
		}
		ctx, rec := newReportCtx()
		require.NoError(t, StudentsReportHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"course_title":"Math"`)
	})
}
