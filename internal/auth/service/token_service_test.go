package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/JosephOluOlofinte/sleat-backend/internal/auth/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenService() *service.TokenService {
	return service.NewTokenService("access-secret", "refresh-secret", 15*time.Minute, 30*24*time.Hour)
}

func TestTokenService_AccessTokenRoundTrip(t *testing.T) {
	ts := newTokenService()

	tokenString, err := ts.SignAccessToken("user-1", "session-1")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ts.VerifyAccessToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenService_RefreshTokenRoundTrip(t *testing.T) {
	ts := newTokenService()

	tokenString, err := ts.SignRefreshToken("session-1")
	require.NoError(t, err)

	claims, err := ts.VerifyRefreshToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenService_SecretsAreIsolated(t *testing.T) {
	ts := newTokenService()

	accessToken, err := ts.SignAccessToken("user-1", "session-1")
	require.NoError(t, err)

	refreshToken, err := ts.SignRefreshToken("session-1")
	require.NoError(t, err)

	// A token signed on one path never validates on the other: the two
	// classes use distinct secrets.
	_, err = ts.VerifyRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = ts.VerifyAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	ts := service.NewTokenService("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	tokenString, err := ts.SignAccessToken("user-1", "session-1")
	require.NoError(t, err)

	_, err = ts.VerifyAccessToken(tokenString)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestTokenService_TamperedToken(t *testing.T) {
	ts := newTokenService()

	tokenString, err := ts.SignAccessToken("user-1", "session-1")
	require.NoError(t, err)

	_, err = ts.VerifyAccessToken(tokenString + "x")
	assert.Error(t, err)
}

func TestTokenService_RejectsWrongSigningMethod(t *testing.T) {
	ts := newTokenService()

	// alg=none tokens must never pass.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": "user-1"})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ts.VerifyAccessToken(tokenString)
	assert.Error(t, err)
}

func TestTokenService_Expiries(t *testing.T) {
	ts := newTokenService()

	assert.Equal(t, 15*time.Minute, ts.GetAccessTokenExpiry())
	assert.Equal(t, 30*24*time.Hour, ts.GetRefreshTokenExpiry())
}
