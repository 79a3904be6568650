package users

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/api"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/model"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/service"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword     = service.HashPassword
	validatePassword = service.ValidatePassword
	createUser       = store.CreateUser
	createTeacher    = store.CreateTeacher
	createStudent    = store.CreateStudent
)

// @Summary     Register a teacher
// @Description Creates a user account with a linked teacher profile
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       payload body api.RegisterTeacherRequest true "Registration data"
// @Success     201 {object} api.TeacherResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/teachers [post]
func RegisterTeacherHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		var req api.RegisterTeacherRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if err := validatePassword(req.Password); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}
		email := strings.ToLower(req.Email)

		// The account row and the profile row must appear together.
		tx, err := db.Begin(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to start transaction"})
		}
		defer func() { _ = tx.Rollback(ctx) }()

		user, err := createUser(ctx, tx, &model.User{Email: email, PasswordHash: hash})
		if err != nil {
			if errors.Is(err, store.ErrConflict) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: `e-mail "` + email + `" is already in use`})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create user"})
		}

		teacher, err := createTeacher(ctx, tx, &model.Teacher{
			Email:           email,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			PasswordHash:    hash,
			PhoneNumber:     req.PhoneNumber,
			LinkedInAccount: req.LinkedInAccount,
			UserID:          user.ID,
		})
		if err != nil {
			if errors.Is(err, store.ErrConflict) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: `e-mail "` + email + `" is already in use`})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create teacher"})
		}

		if err := tx.Commit(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to commit transaction"})
		}

		return c.JSON(http.StatusCreated, api.TeacherResponse{
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

// @Summary     Register a student
// @Description Creates a user account with a linked student profile
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       payload body api.RegisterStudentRequest true "Registration data"
// @Success     201 {object} api.StudentResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/students [post]
func RegisterStudentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		var req api.RegisterStudentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if err := validatePassword(req.Password); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}
		email := strings.ToLower(req.Email)

		tx, err := db.Begin(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to start transaction"})
		}
		defer func() { _ = tx.Rollback(ctx) }()

		user, err := createUser(ctx, tx, &model.User{Email: email, PasswordHash: hash})
		if err != nil {
			if errors.Is(err, store.ErrConflict) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: `e-mail "` + email + `" is already in use`})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create user"})
		}

		student, err := createStudent(ctx, tx, &model.Student{
			Email:        email,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			PasswordHash: hash,
			UserID:       user.ID,
		})
		if err != nil {
			if errors.Is(err, store.ErrConflict) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: `e-mail "` + email + `" is already in use`})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create student"})
		}

		if err := tx.Commit(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to commit transaction"})
		}

		return c.JSON(http.StatusCreated, api.StudentResponse{
			StudentID: student.ID,
			Email:     student.Email,
			FirstName: student.FirstName,
			LastName:  student.LastName,
			UserID:    student.UserID,
		})
	}
}
