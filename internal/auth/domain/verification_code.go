package domain

import "time"

type VerificationCodeType string

const (
	EmailVerification VerificationCodeType = "email_verification"
	PasswordReset     VerificationCodeType = "password_reset"
)

// VerificationCode is a single-use, typed, expiring code. Its ID doubles
// as the bearer secret embedded in outbound email links, so it must come
// from the random id generator, never a sequence.
type VerificationCode struct {
	ID        string
	UserID    string
	Type      VerificationCodeType
	ExpiresAt time.Time
	CreatedAt time.Time
}
