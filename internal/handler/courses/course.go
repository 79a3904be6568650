package courses

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/api"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/handler"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/middleware"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/model"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/service"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createCourse          = store.CreateCourse
	getCourseByID         = store.GetCourseByID
	listCoursesForTeacher = store.ListCoursesForTeacher
	listCoursesForStudent = store.ListCoursesForStudent
	updateCourse          = store.UpdateCourse
	deleteCourse          = store.DeleteCourse
	listSections          = store.ListSectionsByCourse
	countEnrollments      = store.CountEnrollmentsForCourse
	deleteSectionsByID    = store.DeleteSectionsByCourse
	detachAllForCourse    = store.DetachAllForCourse
	getTeacherByUserID    = store.GetTeacherByUserID
	getStudentByUserID    = store.GetStudentByUserID
	isEnrolled            = store.IsEnrolled
)

var courseTitleRe = regexp.MustCompile(`^\w{1,50}$`)

// @Summary     Create a course
// @Description Creates a course owned by the calling teacher
// @Tags        courses
// @Accept      json
// @Produce     json
// @Param       Token header string true "Session token"
// @Param       payload body api.CreateCourseRequest true "Course data"
// @Success     201 {object} api.CourseResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /courses [post]
// @Security    ApiKeyAuth
func CreateCourseHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		teacher := c.Get(middleware.ContextTeacherKey).(*model.Teacher)

		var req api.CreateCourseRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if !courseTitleRe.MatchString(req.Title) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "title must be 1-50 word characters"})
		}

		course, err := createCourse(c.Request().Context(), db, &model.Course{
			Title:       req.Title,
			Description: req.Description,
			Objectives:  req.Objectives,
			OwnerID:     teacher.ID,
			IsPremium:   req.IsPremium,
		})
		if err != nil {
			if errors.Is(err, store.ErrConflict) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "course with this title already exists"})
			}
			return handler.RespondError(c, err)
		}

		return c.JSON(http.StatusCreated, courseResponse(course))
	}
}

// @Summary     List courses
// @Description Lists courses visible to the caller; teachers see their own premium courses, students the ones they are enrolled in
// @Tags        courses
// @Produce     json
// @Param       Token header string true "Session token"
// @Param       title query string false "Title substring filter"
// @Success     200 {array} api.CourseResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /courses [get]
// @Security    ApiKeyAuth
func ListCoursesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		title := c.QueryParam("title")

		var (
			list []model.Course
			err  error
		)
		if teacher, terr := getTeacherByUserID(ctx, db, claims.UserID); terr == nil {
			list, err = listCoursesForTeacher(ctx, db, teacher.ID, title)
		} else if student, serr := getStudentByUserID(ctx, db, claims.UserID); serr == nil {
			list, err = listCoursesForStudent(ctx, db, student.ID, title)
		} else {
			// No profile: only non-premium courses. A student id of 0
			// matches no enrollment.
			list, err = listCoursesForStudent(ctx, db, 0, title)
		}
		if err != nil {
			return handler.RespondError(c, err)
		}

		out := make([]api.CourseResponse, 0, len(list))
		for i := range list {
			out = append(out, courseResponse(&list[i]))
		}
		return c.JSON(http.StatusOK, out)
	}
}

// @Summary     Get a course with its sections
// @Description Sections are ordered by id and can be filtered by title substring
// @Tags        courses
// @Produce     json
// @Param       Token header string true "Session token"
// @Param       course_id path int true "Course ID"
// @Param       sort query string false "Section order: asc (default) or desc"
// @Param       title query string false "Section title substring filter"
// @Success     200 {object} api.CourseWithSectionsResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /courses/{course_id} [get]
// @Security    ApiKeyAuth
func GetCourseHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		courseID, err := handler.ParamInt(c, "course_id")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		course, err := getCourseByID(ctx, db, courseID)
		if err != nil {
			return handler.RespondError(c, err)
		}

		if course.IsPremium {
			if err := premiumAccess(c, db, claims.UserID, course); err != nil {
				return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: err.Error()})
			}
		}

		sections, err := listSections(ctx, db, course.ID, c.QueryParam("title"), c.QueryParam("sort") == "desc")
		if err != nil {
			return handler.RespondError(c, err)
		}

		resp := api.CourseWithSectionsResponse{
			CourseID:    course.ID,
			Title:       course.Title,
			Description: course.Description,
			Objectives:  course.Objectives,
			OwnerID:     course.OwnerID,
			IsPremium:   course.IsPremium,
			Rating:      course.Rating,
			Sections:    make([]api.SectionResponse, 0, len(sections)),
		}
		for i := range sections {
			s := &sections[i]
			resp.Sections = append(resp.Sections, api.SectionResponse{
				SectionID:        s.ID,
				Title:            s.Title,
				Content:          s.Content,
				Description:      s.Description,
				ExternalResource: s.ExternalResource,
				CourseID:         s.CourseID,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Update a course
// @Description Replaces the provided fields; only the owning teacher may update
// @Tags        courses
// @Accept      json
// @Produce     json
// @Param       Token header string true "Session token"
// @Param       course_id path int true "Course ID"
// @Param       payload body api.UpdateCourseRequest true "Fields to update"
// @Success     200 {object} api.CourseResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /courses/{course_id} [put]
// @Security    ApiKeyAuth
func UpdateCourseHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		teacher := c.Get(middleware.ContextTeacherKey).(*model.Teacher)

		courseID, err := handler.ParamInt(c, "course_id")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		var req api.UpdateCourseRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if req.Title != nil && !courseTitleRe.MatchString(*req.Title) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "title must be 1-50 word characters"})
		}

		course, err := getCourseByID(ctx, db, courseID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		if course.OwnerID != teacher.ID {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "only the course owner may update it"})
		}

		updated, err := updateCourse(ctx, db, courseID, req.Title, req.Description, req.Objectives, req.IsPremium)
		if err != nil {
			if errors.Is(err, store.ErrConflict) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "course with this title already exists"})
			}
			return handler.RespondError(c, err)
		}

		return c.JSON(http.StatusOK, courseResponse(updated))
	}
}

// @Summary     Delete a course
// @Description Refused while any student is enrolled; child sections and tag mappings are removed first
// @Tags        courses
// @Produce     json
// @Param       Token header string true "Session token"
// @Param       course_id path int true "Course ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /courses/{course_id} [delete]
// @Security    ApiKeyAuth
func DeleteCourseHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		teacher := c.Get(middleware.ContextTeacherKey).(*model.Teacher)

		courseID, err := handler.ParamInt(c, "course_id")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		course, err := getCourseByID(ctx, db, courseID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		if course.OwnerID != teacher.ID {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "only the course owner may delete it"})
		}

		enrolled, err := countEnrollments(ctx, db, courseID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		if enrolled > 0 {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "cannot delete a course with enrolled students"})
		}

		tx, err := db.Begin(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to start transaction"})
		}
		defer func() { _ = tx.Rollback(ctx) }()

		if err := deleteSectionsByID(ctx, tx, courseID); err != nil {
			return handler.RespondError(c, err)
		}
		if err := detachAllForCourse(ctx, tx, courseID); err != nil {
			return handler.RespondError(c, err)
		}
		if err := deleteCourse(ctx, tx, courseID); err != nil {
			return handler.RespondError(c, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to commit transaction"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "course successfully deleted"})
	}
}

// premiumAccess allows the owning teacher and enrolled students through.
func premiumAccess(c echo.Context, db database.DB, userID int, course *model.Course) error {
	ctx := c.Request().Context()

	if teacher, err := getTeacherByUserID(ctx, db, userID); err == nil {
		if teacher.ID == course.OwnerID {
			return nil
		}
		return errors.New("premium course is available only to its owner")
	}

	student, err := getStudentByUserID(ctx, db, userID)
	if err != nil {
		return errors.New("premium course requires enrollment")
	}
	enrolled, err := isEnrolled(ctx, db, student.ID, course.ID)
	if err != nil || !enrolled {
		return errors.New("premium course requires enrollment")
	}
	return nil
}

func courseResponse(course *model.Course) api.CourseResponse {
	return api.CourseResponse{
		CourseID:    course.ID,
		Title:       course.Title,
		Description: course.Description,
		Objectives:  course.Objectives,
		OwnerID:     course.OwnerID,
		IsPremium:   course.IsPremium,
		Rating:      course.Rating,
	}
}
