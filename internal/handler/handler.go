package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/api"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/service"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/store"

	"github.com/labstack/echo/v4"
)

// RespondError maps error kinds to status codes 1:1; anything
// unrecognized is an internal error and the detail stays out of the
// response body.
func RespondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: err.Error()})
	case errors.Is(err, store.ErrConflict):
		return c.JSON(http.StatusConflict, api.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
	}
}

// ParamInt reads an integer path parameter.
func ParamInt(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, errors.New("invalid " + name)
	}
	return v, nil
}
