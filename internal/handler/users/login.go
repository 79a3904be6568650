package users

import (
	"net/http"
	"strings"
	"time"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/api"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/middleware"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/service"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByEmail    = store.GetUserByEmail
	getUserByID       = store.GetUserByID
	comparePassword   = service.ComparePassword
	issueAccessToken  = service.IssueAccessToken
	verifyAccessToken = service.VerifyAccessToken
	resolveRole       = service.ResolveRole
)

// @Summary     Log in
// @Description Verifies e-mail and password and returns a session token
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       payload body api.LoginRequest true "Credentials"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "incorrect e-mail or password"})
		}
		if err := comparePassword(user.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "incorrect e-mail or password"})
		}

		token, err := issueAccessToken(*user, service.AccessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{Token: token})
	}
}

// @Summary     Log out
// @Description Revokes the presented session token
// @Tags        users
// @Produce     json
// @Param       Token header string true "Session token"
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/logout [post]
func LogoutHandler(revoked service.RevocationStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		token := c.Request().Header.Get(middleware.HeaderToken)
		if token == "" {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing token"})
		}

		claims, err := verifyAccessToken(token)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid token"})
		}

		isRevoked, err := revoked.IsRevoked(ctx, token)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "revocation check failed"})
		}
		if isRevoked {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "user already logged out"})
		}

		// Keep the entry only as long as the token itself would stay valid.
		ttl := service.AccessTokenTTL
		if claims.ExpiresAt != nil {
			ttl = time.Until(claims.ExpiresAt.Time)
		}
		if err := revoked.Revoke(ctx, token, ttl); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to revoke token"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "user successfully logged out"})
	}
}

// @Summary     Current user info
// @Description Returns the id, e-mail and role of the authenticated user
// @Tags        users
// @Produce     json
// @Param       Token header string true "Session token"
// @Success     200 {object} api.UserInfoResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /users/info [get]
// @Security    ApiKeyAuth
func UserInfoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		user, err := getUserByID(ctx, db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid token"})
		}

		role, err := resolveRole(ctx, db, user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to resolve role"})
		}

		return c.JSON(http.StatusOK, api.UserInfoResponse{
			ID:    user.ID,
			Email: user.Email,
			Role:  string(role),
		})
	}
}
