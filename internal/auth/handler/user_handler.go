package handler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *AuthHandler) GetCurrentUser(c *fiber.Ctx) error {
	userID, _ := c.Locals(localUserID).(string)

	user, err := h.authService.CurrentUser(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *AuthHandler) GetSessions(c *fiber.Ctx) error {
	userID, _ := c.Locals(localUserID).(string)
	sessionID, _ := c.Locals(localSessionID).(string)

	sessions, err := h.authService.ListSessions(c.Context(), userID, sessionID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(sessions)
}

func (h *AuthHandler) DeleteSession(c *fiber.Ctx) error {
	userID, _ := c.Locals(localUserID).(string)

	if err := h.authService.DeleteSession(c.Context(), userID, c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "session removed"})
}
