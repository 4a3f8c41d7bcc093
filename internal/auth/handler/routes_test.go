package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterRoutes verifies the routes are mounted where clients expect
// them. Requests carry no credentials or bodies, so handlers answer with
// their own rejection statuses rather than fiber's 404/405.
func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, _ := newTestApp(ctrl)

	testCases := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodPost, "/api/v1/register", fiber.StatusBadRequest},
		{http.MethodPost, "/api/v1/login", fiber.StatusBadRequest},
		{http.MethodPost, "/api/v1/refresh", fiber.StatusUnauthorized},
		{http.MethodPost, "/api/v1/password/forgot", fiber.StatusBadRequest},
		{http.MethodPost, "/api/v1/password/reset", fiber.StatusBadRequest},
		{http.MethodDelete, "/api/v1/session", fiber.StatusUnauthorized},
		{http.MethodGet, "/api/v1/user", fiber.StatusUnauthorized},
		{http.MethodGet, "/api/v1/sessions", fiber.StatusUnauthorized},
		{http.MethodDelete, "/api/v1/sessions/some-id", fiber.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestHealthRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, _ := newTestApp(ctrl)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
