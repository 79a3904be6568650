package tags

import (
	"errors"
	"net/http"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/api"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/handler"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/middleware"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/model"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createTag         = store.CreateTag
	getTagByID        = store.GetTagByID
	deleteTag         = store.DeleteTag
	isTagAttached     = store.IsTagAttached
	attachTag         = store.AttachTag
	detachTag         = store.DetachTag
	detachAllForTag   = store.DetachAllForTag
	listTagsForCourse = store.ListTagsForCourse
	getCourseByID     = store.GetCourseByID
)

// @Summary     Create a tag
// @Tags        tags
// @Accept      json
// @Produce     json
// @Param       Token header string true "Session token"
// @Param       payload body api.CreateTagRequest true "Tag data"
// @Success     201 {object} api.TagResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /tags [post]
// @Security    ApiKeyAuth
func CreateTagHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateTagRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		tag, err := createTag(c.Request().Context(), db, req.TagName)
		if err != nil {
			if errors.Is(err, store.ErrConflict) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "tag with this name already exists"})
			}
			return handler.RespondError(c, err)
		}

		return c.JSON(http.StatusCreated, api.TagResponse{TagID: tag.ID, TagName: tag.Name})
	}
}

// @Summary     Delete a tag
// @Description Removes the tag and all of its course mappings
// @Tags        tags
// @Produce     json
// @Param       Token header string true "Session token"
// @Param       tag_id path int true "Tag ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /tags/{tag_id} [delete]
// @Security    ApiKeyAuth
func DeleteTagHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		tagID, err := handler.ParamInt(c, "tag_id")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if _, err := getTagByID(ctx, db, tagID); err != nil {
			return handler.RespondError(c, err)
		}

		tx, err := db.Begin(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to start transaction"})
		}
		defer func() { _ = tx.Rollback(ctx) }()

		if err := detachAllForTag(ctx, tx, tagID); err != nil {
			return handler.RespondError(c, err)
		}
		if err := deleteTag(ctx, tx, tagID); err != nil {
			return handler.RespondError(c, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to commit transaction"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "tag successfully deleted"})
	}
}

// @Summary     Attach a tag to a course
// @Description Only the course owner may attach; attaching twice is refused
// @Tags        tags
// @Produce     json
// @Param       Token header string true "Session token"
// @Param       course_id path int true "Course ID"
// @Param       tag_id path int true "Tag ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /courses/{course_id}/tags/{tag_id} [post]
// @Security    ApiKeyAuth
func AttachTagHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		teacher := c.Get(middleware.ContextTeacherKey).(*model.Teacher)

		courseID, tagID, err := courseAndTagIDs(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		course, err := getCourseByID(ctx, db, courseID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		if course.OwnerID != teacher.ID {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "only the course owner may manage its tags"})
		}
		if _, err := getTagByID(ctx, db, tagID); err != nil {
			return handler.RespondError(c, err)
		}

		attached, err := isTagAttached(ctx, db, courseID, tagID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		if attached {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "tag already attached"})
		}

		if err := attachTag(ctx, db, courseID, tagID); err != nil {
			return handler.RespondError(c, err)
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "tag successfully attached to course"})
	}
}

// @Summary     Detach a tag from a course
// @Tags        tags
// @Produce     json
// @Param       Token header string true "Session token"
// @Param       course_id path int true "Course ID"
// @Param       tag_id path int true "Tag ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /courses/{course_id}/tags/{tag_id} [delete]
// @Security    ApiKeyAuth
func DetachTagHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		teacher := c.Get(middleware.ContextTeacherKey).(*model.Teacher)

		courseID, tagID, err := courseAndTagIDs(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		course, err := getCourseByID(ctx, db, courseID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		if course.OwnerID != teacher.ID {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "only the course owner may manage its tags"})
		}
		if _, err := getTagByID(ctx, db, tagID); err != nil {
			return handler.RespondError(c, err)
		}

		if err := detachTag(ctx, db, courseID, tagID); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "tag is not attached to this course"})
			}
			return handler.RespondError(c, err)
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "tag successfully detached from course"})
	}
}

// @Summary     List a course's tags
// @Tags        tags
// @Produce     json
// @Param       Token header string true "Session token"
// @Param       course_id path int true "Course ID"
// @Success     200 {object} api.CourseWithTagsResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /courses/{course_id}/tags [get]
// @Security    ApiKeyAuth
func CourseTagsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		courseID, err := handler.ParamInt(c, "course_id")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		course, err := getCourseByID(ctx, db, courseID)
		if err != nil {
			return handler.RespondError(c, err)
		}

		list, err := listTagsForCourse(ctx, db, courseID)
		if err != nil {
			return handler.RespondError(c, err)
		}

		resp := api.CourseWithTagsResponse{
			Course: api.CourseResponse{
				CourseID:    course.ID,
				Title:       course.Title,
				Description: course.Description,
				Objectives:  course.Objectives,
				OwnerID:     course.OwnerID,
				IsPremium:   course.IsPremium,
				Rating:      course.Rating,
			},
			Tags: make([]api.TagResponse, 0, len(list)),
		}
		for _, t := range list {
			resp.Tags = append(resp.Tags, api.TagResponse{TagID: t.ID, TagName: t.Name})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

func courseAndTagIDs(c echo.Context) (int, int, error) {
	courseID, err := handler.ParamInt(c, "course_id")
	if err != nil {
		return 0, 0, err
	}
	tagID, err := handler.ParamInt(c, "tag_id")
	if err != nil {
		return 0, 0, err
	}
	return courseID, tagID, nil
}
