package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	app.Post("/api/v1/register", h.Register)
	app.Post("/api/v1/login", h.Login)
	app.Post("/api/v1/refresh", h.Refresh)
	app.Get("/api/v1/email/verify/:code", h.VerifyEmail)
	app.Post("/api/v1/password/forgot", h.ForgotPassword)
	app.Post("/api/v1/password/reset", h.ResetPassword)

	// Protected endpoints
	protected := app.Group("/api/v1", h.Authenticate)
	protected.Delete("/session", h.Logout)
	protected.Get("/user", h.GetCurrentUser)
	protected.Get("/sessions", h.GetSessions)
	protected.Delete("/sessions/:id", h.DeleteSession)
}
