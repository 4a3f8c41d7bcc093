package handler

import (
	"errors"
	"strings"

	autherror "github.com/JosephOluOlofinte/sleat-backend/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	localUserID    = "userID"
	localSessionID = "sessionID"
)

// Authenticate gates protected routes on a valid access token, taken
// from the access cookie or a bearer header. It distinguishes "expired"
// from "invalid" for the client message only; both are 401.
func (h *AuthHandler) Authenticate(c *fiber.Ctx) error {
	tokenString := c.Cookies(accessTokenCookie)
	if tokenString == "" {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
			tokenString = after
		}
	}

	if tokenString == "" {
		return respondError(c, autherror.ErrNotAuthorized)
	}

	claims, err := h.tokens.VerifyAccessToken(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return respondError(c, autherror.ErrAccessTokenExpired)
		}
		return respondError(c, autherror.ErrInvalidAccessToken)
	}

	c.Locals(localUserID, claims.UserID)
	c.Locals(localSessionID, claims.SessionID)

	return c.Next()
}
