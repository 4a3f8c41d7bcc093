package domain

import "time"

type Session struct {
	ID        string
	UserID    string
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Valid reports whether the session is still usable at the given instant.
// Validity is always recomputed against the current clock, never cached
// from a token claim.
func (s *Session) Valid(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
