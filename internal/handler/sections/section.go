package sections

import (
	"net/http"
	"regexp"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/api"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/handler"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/middleware"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/model"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createSection  = store.CreateSection
	getSectionByID = store.GetSectionByID
	updateSection  = store.UpdateSection
	deleteSection  = store.DeleteSection
	getCourseByID  = store.GetCourseByID
)

var sectionTitleRe = regexp.MustCompile(`^\w{1,100}$`)

// @Summary     Create a section
// @Description Adds a section to a course owned by the calling teacher
// @Tags        sections
// @Accept      json
// @Produce     json
// @Param       Token header string true "Session token"
// @Param       payload body api.CreateSectionRequest true "Section data"
// @Success     201 {object} api.SectionResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /sections [post]
// @Security    ApiKeyAuth
func CreateSectionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		teacher := c.Get(middleware.ContextTeacherKey).(*model.Teacher)

		var req api.CreateSectionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if !sectionTitleRe.MatchString(req.Title) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "title must be 1-100 word characters"})
		}

		course, err := getCourseByID(ctx, db, req.CourseID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		if course.OwnerID != teacher.ID {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "only the course owner may add sections"})
		}

		section, err := createSection(ctx, db, &model.Section{
			Title:            req.Title,
			Content:          req.Content,
			Description:      req.Description,
			ExternalResource: req.ExternalResource,
			CourseID:         req.CourseID,
		})
		if err != nil {
			return handler.RespondError(c, err)
		}

		return c.JSON(http.StatusCreated, sectionResponse(section))
	}
}

// @Summary     Update a section
// @Description Replaces all section fields; only the owner of the parent course may update
// @Tags        sections
// @Accept      json
// @Produce     json
// @Param       Token header string true "Session token"
// @Param       section_id path int true "Section ID"
// @Param       payload body api.UpdateSectionRequest true "Section data"
// @Success     200 {object} api.SectionResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /sections/{section_id} [put]
// @Security    ApiKeyAuth
func UpdateSectionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		teacher := c.Get(middleware.ContextTeacherKey).(*model.Teacher)

		sectionID, err := handler.ParamInt(c, "section_id")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		var req api.UpdateSectionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if !sectionTitleRe.MatchString(req.Title) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "title must be 1-100 word characters"})
		}

		section, err := getSectionByID(ctx, db, sectionID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		course, err := getCourseByID(ctx, db, section.CourseID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		if course.OwnerID != teacher.ID {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "only the course owner may update sections"})
		}

		section.Title = req.Title
		section.Content = req.Content
		section.Description = req.Description
		section.ExternalResource = req.ExternalResource
		if err := updateSection(ctx, db, section); err != nil {
			return handler.RespondError(c, err)
		}

		return c.JSON(http.StatusOK, sectionResponse(section))
	}
}

// @Summary     Delete a section
// @Description Only the owner of the parent course may delete
// @Tags        sections
// @Produce     json
// @Param       Token header string true "Session token"
// @Param       section_id path int true "Section ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /sections/{section_id} [delete]
// @Security    ApiKeyAuth
func DeleteSectionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		teacher := c.Get(middleware.ContextTeacherKey).(*model.Teacher)

		sectionID, err := handler.ParamInt(c, "section_id")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		section, err := getSectionByID(ctx, db, sectionID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		course, err := getCourseByID(ctx, db, section.CourseID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		if course.OwnerID != teacher.ID {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "only the course owner may delete sections"})
		}

		if err := deleteSection(ctx, db, sectionID); err != nil {
			return handler.RespondError(c, err)
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "section successfully deleted"})
	}
}

func sectionResponse(s *model.Section) api.SectionResponse {
	return api.SectionResponse{
		SectionID:        s.ID,
		Title:            s.Title,
		Content:          s.Content,
		Description:      s.Description,
		ExternalResource: s.ExternalResource,
		CourseID:         s.CourseID,
	}
}
