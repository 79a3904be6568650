package middleware

import (
	"fmt"
	"net/http"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/service"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/store"

	"github.com/labstack/echo/v4"
)

// HeaderToken is the custom header carrying the session token. The API
// does not use the standard bearer scheme.
const HeaderToken = "Token"

const (
	ContextUserKey    = "user"
	ContextTeacherKey = "teacher"
	ContextStudentKey = "student"
)

var (
	getTeacherByUserID = store.GetTeacherByUserID
	getStudentByUserID = store.GetStudentByUserID
)

func extractClaims(c echo.Context) (string, *service.CustomClaims, error) {
	token := c.Request().Header.Get(HeaderToken)
	if token == "" {
		return "", nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	claims, err := service.VerifyAccessToken(token)
	if err != nil {
		return "", nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return token, claims, nil
}

// RequireAuth verifies the Token header and rejects revoked (logged-out)
// tokens, then stores the claims in the request context.
func RequireAuth(revoked service.RevocationStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, claims, err := extractClaims(c)
			if err != nil {
				return err
			}
			isRevoked, err := revoked.IsRevoked(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "revocation check failed")
			}
			if isRevoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "user is logged out")
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireTeacher authenticates and additionally requires a teacher
// profile, which it stores in the context.
func RequireTeacher(db database.DB, revoked service.RevocationStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return RequireAuth(revoked)(func(c echo.Context) error {
			claims := c.Get(ContextUserKey).(*service.CustomClaims)
			teacher, err := getTeacherByUserID(c.Request().Context(), db, claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "teacher profile required")
			}
			c.Set(ContextTeacherKey, teacher)
			return next(c)
		})
	}
}

// RequireStudent authenticates and additionally requires a student
// profile, which it stores in the context.
func RequireStudent(db database.DB, revoked service.RevocationStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return RequireAuth(revoked)(func(c echo.Context) error {
			claims := c.Get(ContextUserKey).(*service.CustomClaims)
			student, err := getStudentByUserID(c.Request().Context(), db, claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "student profile required")
			}
			c.Set(ContextStudentKey, student)
			return next(c)
		})
	}
}
