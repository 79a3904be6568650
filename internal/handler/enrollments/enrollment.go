package enrollments

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

// MaxPremiumEnrollments caps how many premium courses a student may be
// enrolled in at once.
const MaxPremiumEnrollments = 5

var (
	getCourseByID          = store.GetCourseByID
	premiumEnrollmentCount = store.PremiumEnrollmentCount
	subscribe              = store.Subscribe
	unsubscribe            = store.Unsubscribe
	studentsByTeacher      = store.StudentsByTeacher
)

// @Summary     Subscribe to a course
// @Description Enrolls the calling student; premium enrollments are capped
// @Tags        enrollments
// @Produce     json
// @Param       Token header string true "Session token"
// @Param       course_id path int true "Course ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /courses/{course_id}/subscription [post]
// @Security    ApiKeyAuth
func SubscribeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		student := c.Get(middleware.ContextStudentKey).(*model.Student)

		courseID, err := handler.ParamInt(c, "course_id")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		course, err := getCourseByID(ctx, db, courseID)
		if err != nil {
			return handler.RespondError(c, err)
		}

		if course.IsPremium {
			count, err := premiumEnrollmentCount(ctx, db, student.ID)
			if err != nil {
				return handler.RespondError(c, err)
			}
			if count >= MaxPremiumEnrollments {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "cannot subscribe to more than 5 premium courses"})
			}
		}

		if err := subscribe(ctx, db, student.ID, courseID); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "student is already subscribed to this course"})
			}
			return handler.RespondError(c, err)
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "successfully subscribed to course"})
	}
}

// @Summary     Unsubscribe from a course
// @Tags        enrollments
// @Produce     json
// @Param       Token header string true "Session token"
// @Param       course_id path int true "Course ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /courses/{course_id}/subscription [delete]
// @Security    ApiKeyAuth
func UnsubscribeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		student := c.Get(middleware.ContextStudentKey).(*model.Student)

		courseID, err := handler.ParamInt(c, "course_id")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if _, err := getCourseByID(ctx, db, courseID); err != nil {
			return handler.RespondError(c, err)
		}

		if err := unsubscribe(ctx, db, student.ID, courseID); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "student is not subscribed to this course"})
			}
			return handler.RespondError(c, err)
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "successfully unsubscribed from course"})
	}
}

// @Summary     Enrolled students report
// @Description Lists every student enrolled in any of the calling teacher's courses
// @Tags        enrollments
// @Produce     json
// @Param       Token header string true "Session token"
// @Success     200 {array} api.StudentReportRow
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /reports/students [get]
// @Security    ApiKeyAuth
func StudentsReportHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		teacher := c.Get(middleware.ContextTeacherKey).(*model.Teacher)

		rows, err := studentsByTeacher(c.Request().Context(), db, teacher.ID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		if len(rows) == 0 {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "no students found for the given teacher's courses"})
		}

		out := make([]api.StudentReportRow, 0, len(rows))
		for _, r := range rows {
			out = append(out, api.StudentReportRow{
				StudentID:   r.StudentID,
				FirstName:   r.FirstName,
				LastName:    r.LastName,
				Email:       r.Email,
				CourseID:    r.CourseID,
				CourseTitle: r.CourseTitle,
			})
		}
		return c.JSON(http.StatusOK, out)
	}
}
