package domain_test

import (
	"testing"
	"time"

	"github.com/JosephOluOlofinte/sleat-backend/internal/auth/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := domain.HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	user := &domain.User{PasswordHash: hash}

	assert.True(t, user.ComparePassword("s3cret"))
	assert.False(t, user.ComparePassword("wrong"))
}

func TestOmitPassword(t *testing.T) {
	now := time.Now()
	user := &domain.User{
		ID:           "user-1",
		Email:        "a@x.com",
		Name:         "A",
		PasswordHash: "hash",
		Verified:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	public := user.OmitPassword()

	assert.Equal(t, user.ID, public.ID)
	assert.Equal(t, user.Email, public.Email)
	assert.Equal(t, user.Name, public.Name)
	assert.True(t, public.Verified)
}

func TestSessionValid(t *testing.T) {
	now := time.Now()
	session := &domain.Session{ExpiresAt: now.Add(time.Minute)}

	assert.True(t, session.Valid(now))
	assert.False(t, session.Valid(now.Add(time.Minute)))
	assert.False(t, session.Valid(now.Add(2*time.Minute)))
}
