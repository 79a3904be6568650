package handler

import (
	"net/http"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/api"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/cache"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"

	"github.com/labstack/echo/v4"
)

// PingResponse is the health check response model.
// swagger:model PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// PingHandler checks database and cache connectivity.
// @Summary     Health Check
// @Description Returns pong when the database and cache are reachable
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
