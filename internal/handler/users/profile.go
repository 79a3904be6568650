package users

import (
	"net/http"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/api"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/middleware"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/model"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	updateTeacher      = store.UpdateTeacher
	updateStudent      = store.UpdateStudent
	updateUserPassword = store.UpdateUserPassword
)

// @Summary     Teacher profile
// @Tags        users
// @Produce     json
// @Param       Token header string true "Session token"
// @Success     200 {object} api.TeacherResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Router      /teachers/info [get]
// @Security    ApiKeyAuth
func GetTeacherInfoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		teacher := c.Get(middleware.ContextTeacherKey).(*model.Teacher)
		return c.JSON(http.StatusOK, api.TeacherResponse{
			TeacherID:       teacher.ID,
			Email:           teacher.Email,
			FirstName:       teacher.FirstName,
			LastName:        teacher.LastName,
			PhoneNumber:     teacher.PhoneNumber,
			LinkedInAccount: teacher.LinkedInAccount,
			UserID:          teacher.UserID,
		})
	}
}

// @Summary     Update teacher profile
// @Description Replaces the provided fields; a new password also updates the account row
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       Token header string true "Session token"
// @Param       payload body api.UpdateTeacherRequest true "Fields to update"
// @Success     200 {object} api.TeacherResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /teachers/info [put]
// @Security    ApiKeyAuth
func UpdateTeacherInfoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		teacher := c.Get(middleware.ContextTeacherKey).(*model.Teacher)

		var req api.UpdateTeacherRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		var passwordHash *string
		if req.Password != nil {
			if err := validatePassword(*req.Password); err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
			}
			hash, err := hashPassword(*req.Password)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
			}
			passwordHash = &hash
		}

		// The profile row and the account row change together.
		tx, err := db.Begin(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to start transaction"})
		}
		defer func() { _ = tx.Rollback(ctx) }()

		updated, err := updateTeacher(ctx, tx, teacher.ID, req.FirstName, req.LastName, req.PhoneNumber, req.LinkedInAccount, passwordHash)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update teacher"})
		}
		if passwordHash != nil {
			if err := updateUserPassword(ctx, tx, teacher.UserID, *passwordHash); err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update password"})
			}
		}

		if err := tx.Commit(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to commit transaction"})
		}

		return c.JSON(http.StatusOK, api.TeacherResponse{
			TeacherID:       updated.ID,
			Email:           updated.Email,
			FirstName:       updated.FirstName,
			LastName:        updated.LastName,
			PhoneNumber:     updated.PhoneNumber,
			LinkedInAccount: updated.LinkedInAccount,
			UserID:          updated.UserID,
		})
	}
}

// @Summary     Student profile
// @Tags        users
// @Produce     json
// @Param       Token header string true "Session token"
// @Success     200 {object} api.StudentResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Router      /students/info [get]
// @Security    ApiKeyAuth
func GetStudentInfoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		student := c.Get(middleware.ContextStudentKey).(*model.Student)
		return c.JSON(http.StatusOK, api.StudentResponse{
			StudentID: student.ID,
			Email:     student.Email,
			FirstName: student.FirstName,
			LastName:  student.LastName,
			UserID:    student.UserID,
		})
	}
}

// @Summary     Update student profile
// @Description Replaces the provided fields; a new password also updates the account row
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       Token header string true "Session token"
// @Param       payload body api.UpdateStudentRequest true "Fields to update"
// @Success     200 {object} api.StudentResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /students/info [put]
// @Security    ApiKeyAuth
func UpdateStudentInfoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		student := c.Get(middleware.ContextStudentKey).(*model.Student)

		var req api.UpdateStudentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		var passwordHash *string
		if req.Password != nil {
			if err := validatePassword(*req.Password); err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
			}
			hash, err := hashPassword(*req.Password)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
			}
			passwordHash = &hash
		}

		tx, err := db.Begin(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to start transaction"})
		}
		defer func() { _ = tx.Rollback(ctx) }()

		updated, err := updateStudent(ctx, tx, student.ID, req.FirstName, req.LastName, passwordHash)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update student"})
		}
		if passwordHash != nil {
			if err := updateUserPassword(ctx, tx, student.UserID, *passwordHash); err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update password"})
			}
		}

		if err := tx.Commit(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to commit transaction"})
		}

		return c.JSON(http.StatusOK, api.StudentResponse{
			StudentID: updated.ID,
			Email:     updated.Email,
			FirstName: updated.FirstName,
			LastName:  updated.LastName,
			UserID:    updated.UserID,
		})
	}
}
