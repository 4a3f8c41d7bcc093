package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JosephOluOlofinte/sleat-backend/config"
	"github.com/JosephOluOlofinte/sleat-backend/internal/auth/handler"
	"github.com/JosephOluOlofinte/sleat-backend/internal/auth/service"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiddlewareApp(t *testing.T, tokenService *service.TokenService) *fiber.App {
	t.Helper()

	cfg := &config.Config{Env: "development"}
	authHandler := handler.NewAuthHandler(nil, tokenService, cfg)

	app := fiber.New()
	app.Get("/protected", authHandler.Authenticate, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    c.Locals("userID"),
			"session_id": c.Locals("sessionID"),
		})
	})

	return app
}

func TestAuthenticate(t *testing.T) {
	tokenService := service.NewTokenService("access-secret", "refresh-secret", 15*time.Minute, 30*24*time.Hour)

	t.Run("valid bearer token passes and exposes claims", func(t *testing.T) {
		app := newMiddlewareApp(t, tokenService)

		token, err := tokenService.SignAccessToken("user-1", "session-1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "user-1")
		assert.Contains(t, string(body), "session-1")
	})

	t.Run("access cookie works too", func(t *testing.T) {
		app := newMiddlewareApp(t, tokenService)

		token, err := tokenService.SignAccessToken("user-1", "session-1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("expired token reports token expired", func(t *testing.T) {
		expiredService := service.NewTokenService("access-secret", "refresh-secret", -time.Minute, -time.Minute)
		app := newMiddlewareApp(t, tokenService)

		token, err := expiredService.SignAccessToken("user-1", "session-1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "token expired")
	})

	t.Run("garbage token reports invalid token", func(t *testing.T) {
		app := newMiddlewareApp(t, tokenService)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer garbage")

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "invalid token")
	})

	t.Run("missing token is unauthorized", func(t *testing.T) {
		app := newMiddlewareApp(t, tokenService)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
