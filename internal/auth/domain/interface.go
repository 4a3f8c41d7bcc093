package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/JosephOluOlofinte/sleat-backend/internal/auth/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_session_repository.go -package=mocks github.com/JosephOluOlofinte/sleat-backend/internal/auth/domain SessionRepository
//go:generate mockgen -destination=../../mocks/mock_verification_code_repository.go -package=mocks github.com/JosephOluOlofinte/sleat-backend/internal/auth/domain VerificationCodeRepository

type UserRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	SetVerified(ctx context.Context, id string) (*User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) (*User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error
	ListByUserID(ctx context.Context, userID string) ([]Session, error)
	Delete(ctx context.Context, id string) error
	DeleteAllByUserID(ctx context.Context, userID string) error
}

type VerificationCodeRepository interface {
	Create(ctx context.Context, code *VerificationCode) error
	// FindValid matches id AND type AND expiresAt > now. Every kind of
	// miss (absent, expired, wrong type) comes back as (nil, nil) so
	// callers cannot leak which check failed.
	FindValid(ctx context.Context, id string, codeType VerificationCodeType, now time.Time) (*VerificationCode, error)
	CountRecent(ctx context.Context, userID string, codeType VerificationCodeType, since time.Time) (int, error)
	// Delete consumes a code. The boolean reports whether this call
	// removed the row; a raced consumer sees false.
	Delete(ctx context.Context, id string) (bool, error)
}
