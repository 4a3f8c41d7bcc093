package dto

import (
	"time"

	"github.com/JosephOluOlofinte/sleat-backend/internal/auth/domain"
)

// AuthResponse is returned by register and login: the public user plus a
// freshly signed token pair bound to a new session.
type AuthResponse struct {
	User         domain.PublicUser `json:"user"`
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
}

type SessionOutput struct {
	ID        string    `json:"id"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Current   bool      `json:"is_current,omitempty"`
}
