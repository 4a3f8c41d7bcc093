// Package errors defines the error taxonomy shared by the auth service and
// its HTTP layer. Callers branch on Kind, never on message text.
package errors

import "errors"

type Kind int

const (
	KindInternal Kind = iota
	KindConflict
	KindUnauthorized
	KindNotFound
	KindTooManyRequests
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

var (
	ErrEmailAlreadyInUse       = New(KindConflict, "email already in use")
	ErrInvalidCredentials      = New(KindUnauthorized, "invalid email or password")
	ErrInvalidRefreshToken     = New(KindUnauthorized, "invalid refresh token")
	ErrSessionExpired          = New(KindUnauthorized, "session expired or does not exist")
	ErrAccessTokenExpired      = New(KindUnauthorized, "token expired")
	ErrInvalidAccessToken      = New(KindUnauthorized, "invalid token")
	ErrNotAuthorized           = New(KindUnauthorized, "not authorized")
	ErrInvalidVerificationCode = New(KindNotFound, "invalid or expired verification code")
	ErrAccountNotFound         = New(KindNotFound, "this account does not exist")
	ErrSessionNotFound         = New(KindNotFound, "session not found")
	ErrTooManyResetRequests    = New(KindTooManyRequests, "you have exceeded the attempt limit, please try again later")
	ErrEmailSendFailed         = New(KindInternal, "failed to send email")
)

// KindOf extracts the Kind from err, defaulting to KindInternal for
// anything outside the taxonomy.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
