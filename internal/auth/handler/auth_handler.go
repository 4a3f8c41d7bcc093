package handler

import (
	"github.com/JosephOluOlofinte/sleat-backend/config"
	"github.com/JosephOluOlofinte/sleat-backend/internal/auth/dto"
	"github.com/JosephOluOlofinte/sleat-backend/internal/auth/service"
	autherror "github.com/JosephOluOlofinte/sleat-backend/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService   *service.AuthService
	tokens        service.TokenGenerator
	secureCookies bool
}

func NewAuthHandler(authService *service.AuthService, tokens service.TokenGenerator, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		tokens:        tokens,
		secureCookies: cfg.Env != "development",
	}
}

func statusOf(kind autherror.Kind) int {
	switch kind {
	case autherror.KindConflict:
		return fiber.StatusConflict
	case autherror.KindUnauthorized:
		return fiber.StatusUnauthorized
	case autherror.KindNotFound:
		return fiber.StatusNotFound
	case autherror.KindTooManyRequests:
		return fiber.StatusTooManyRequests
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	return c.Status(statusOf(autherror.KindOf(err))).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	input.UserAgent = string(c.Request().Header.UserAgent())

	resp, err := h.authService.Register(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	h.setAccessTokenCookie(c, resp.AccessToken)
	h.setRefreshTokenCookie(c, resp.RefreshToken)

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	input.UserAgent = string(c.Request().Header.UserAgent())

	resp, err := h.authService.Login(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	h.setAccessTokenCookie(c, resp.AccessToken)
	h.setRefreshTokenCookie(c, resp.RefreshToken)

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	refreshToken := c.Cookies(refreshTokenCookie)
	if refreshToken == "" {
		var input dto.RefreshInput
		if err := c.BodyParser(&input); err == nil {
			refreshToken = input.RefreshToken
		}
	}

	if refreshToken == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing refresh token"})
	}

	resp, err := h.authService.Refresh(c.Context(), refreshToken)
	if err != nil {
		// Stale tokens must not linger after a failed refresh.
		h.clearAuthCookies(c)
		return respondError(c, err)
	}

	h.setAccessTokenCookie(c, resp.AccessToken)
	if resp.NewRefreshToken != "" {
		h.setRefreshTokenCookie(c, resp.NewRefreshToken)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing verification code"})
	}

	user, err := h.authService.VerifyEmail(c.Context(), code)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":    user,
		"message": "email was successfully verified",
	})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	resp, err := h.authService.SendPasswordResetEmail(c.Context(), input.Email)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "password reset email sent",
		"email_id": resp.EmailID,
	})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	user, err := h.authService.ResetPassword(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	// Every session for this user is gone now; drop this client's
	// cookies too.
	h.clearAuthCookies(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":    user,
		"message": "password was reset successfully",
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sessionID, _ := c.Locals(localSessionID).(string)

	if err := h.authService.Logout(c.Context(), sessionID); err != nil {
		return respondError(c, err)
	}

	h.clearAuthCookies(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "logout successful"})
}
