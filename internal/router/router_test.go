package router

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/cache"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type noopRevocation struct{}

func (noopRevocation) Revoke(context.Context, string, time.Duration) error { return nil }
func (noopRevocation) IsRevoked(context.Context, string) (bool, error)     { return false, nil }

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, noopRevocation{})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/users/login",
		http.MethodPost + " /api/users/logout",
		http.MethodGet + " /api/users/info",
		http.MethodPost + " /api/users/teachers",
		http.MethodPost + " /api/users/students",
		http.MethodGet + " /api/teachers/info",
		http.MethodPut + " /api/teachers/info",
		http.MethodGet + " /api/students/info",
		http.MethodPut + " /api/students/info",
		http.MethodPost + " /api/courses",
		http.MethodGet + " /api/courses",
		http.MethodGet + " /api/courses/:course_id",
		http.MethodPut + " /api/courses/:course_id",
		http.MethodDelete + " /api/courses/:course_id",
		http.MethodPost + " /api/sections",
		http.MethodPut + " /api/sections/:section_id",
		http.MethodDelete + " /api/sections/:section_id",
		http.MethodPost + " /api/courses/:course_id/subscription",
		http.MethodDelete + " /api/courses/:course_id/subscription",
		http.MethodGet + " /api/reports/students",
		http.MethodPost + " /api/tags",
		http.MethodDelete + " /api/tags/:tag_id",
		http.MethodGet + " /api/courses/:course_id/tags",
		http.MethodPost + " /api/courses/:course_id/tags/:tag_id",
		http.MethodDelete + " /api/courses/:course_id/tags/:tag_id",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
