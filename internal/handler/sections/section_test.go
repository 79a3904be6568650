package sections

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/middleware"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/model"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func restore() {
	createSection = store.CreateSection
	getSectionByID = store.GetSectionByID
	updateSection = store.UpdateSection
	deleteSection = store.DeleteSection
	getCourseByID = store.GetCourseByID
}

func newSectionCtx(e *echo.Echo, method, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/sections/"+id, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	if id != "" {
		ctx.SetPath("/sections/:section_id")
		ctx.SetParamNames("section_id")
		ctx.SetParamValues(id)
	}
	ctx.Set(middleware.ContextTeacherKey, &model.Teacher{ID: 1})
	return ctx, rec
}

func TestCreateSectionHandler(t *testing.T) {
	e := echo.New()
	body := `{"title":"Intro","content":"c","course_id":3}`

	t.Run("rejects non word-character title", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newSectionCtx(e, http.MethodPost, "", `{"title":"Intro one","content":"c","course_id":3}`)
		require.NoError(t, CreateSectionHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "title must be 1-100 word characters")
	})

	t.Run("course not found", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getCourseByID = func(context.Context, database.Querier, int) (*model.Course, error) {
			return nil, store.ErrNotFound
		}
		ctx, rec := newSectionCtx(e, http.MethodPost, "", body)
		require.NoError(t, CreateSectionHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("not owner", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getCourseByID = func(context.Context, database.Querier, int) (*model.Course, error) {
			return &model.Course{ID: 3, OwnerID: 2}, nil
		}
		ctx, rec := newSectionCtx(e, http.MethodPost, "", body)
		require.NoError(t, CreateSectionHandler(nil)(ctx))
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getCourseByID = func(context.Context, database.Querier, int) (*model.Course, error) {
			return &model.Course{ID: 3, OwnerID: 1}, nil
		}
		createSection = func(_ context.Context, _ database.Querier, s *model.Section) (*model.Section, error) {
			require.Equal(t, 3, s.CourseID)
			s.ID = 10
			return s, nil
		}
		ctx, rec := newSectionCtx(e, http.MethodPost, "", body)
		require.NoError(t, CreateSectionHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), `"section_id":10`)
	})
}

func TestUpdateSectionHandler(t *testing.T) {
	e := echo.New()
	body := `{"title":"Intro2","content":"c2"}`

	t.Run("section not found", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getSectionByID = func(context.Context, database.Querier, int) (*model.Section, error) {
			return nil, store.ErrNotFound
		}
		ctx, rec := newSectionCtx(e, http.MethodPut, "10", body)
		require.NoError(t, UpdateSectionHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("not owner of parent course", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getSectionByID = func(context.Context, database.Querier, int) (*model.Section, error) {
			return &model.Section{ID: 10, CourseID: 3}, nil
		}
		getCourseByID = func(context.Context, database.Querier, int) (*model.Course, error) {
			return &model.Course{ID: 3, OwnerID: 2}, nil
		}
		ctx, rec := newSectionCtx(e, http.MethodPut, "10", body)
		require.NoError(t, UpdateSectionHandler(nil)(ctx))
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("success replaces fields", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getSectionByID = func(context.Context, database.Querier, int) (*model.Section, error) {
			desc := "old"
			return &model.Section{ID: 10, CourseID: 3, Title: "Intro", Content: "c", Description: &desc}, nil
		}
		getCourseByID = func(context.Context, database.Querier, int) (*model.Course, error) {
			return &model.Course{ID: 3, OwnerID: 1}, nil
		}
		updateSection = func(_ context.Context, _ database.Querier, s *model.Section) error {
			require.Equal(t, "Intro2", s.Title)
			require.Equal(t, "c2", s.Content)
			require.Nil(t, s.Description)
			return nil
		}
		ctx, rec := newSectionCtx(e, http.MethodPut, "10", body)
		require.NoError(t, UpdateSectionHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"title":"Intro2"`)
	})
}

func TestDeleteSectionHandler(t *testing.T) {
	e := echo.New()

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getSectionByID = func(context.Context, database.Querier, int) (*model.Section, error) {
			return &model.Section{ID: 10, CourseID: 3}, nil
		}
		getCourseByID = func(context.Context, database.Querier, int) (*model.Course, error) {
			return &model.Course{ID: 3, OwnerID: 1}, nil
		}
		deleteSection = func(_ context.Context, _ database.Querier, sectionID int) error {
			require.Equal(t, 10, sectionID)
			return nil
		}
		ctx, rec := newSectionCtx(e, http.MethodDelete, "10", "")
		require.NoError(t, DeleteSectionHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "section successfully deleted")
	})

	t.Run("not owner", func(t *testing.T) {
		t.Cleanup(restore)
		getSectionByID = func(context.Context, database.Querier, int) (*model.Section, error) {
			return &model.Section{ID: 10, CourseID: 3}, nil
		}
		getCourseByID = func(context.Context, database.Querier, int) (*model.Course, error) {
			return &model.Course{ID: 3, OwnerID: 2}, nil
		}
		ctx, rec := newSectionCtx(e, http.MethodDelete, "10", "")
		require.NoError(t, DeleteSectionHandler(nil)(ctx))
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}
