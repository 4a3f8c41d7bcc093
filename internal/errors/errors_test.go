package errors_test

import (
	"errors"
	"fmt"
	"testing"

	autherror "github.com/JosephOluOlofinte/sleat-backend/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, autherror.KindConflict, autherror.KindOf(autherror.ErrEmailAlreadyInUse))
	assert.Equal(t, autherror.KindUnauthorized, autherror.KindOf(autherror.ErrInvalidCredentials))
	assert.Equal(t, autherror.KindNotFound, autherror.KindOf(autherror.ErrInvalidVerificationCode))
	assert.Equal(t, autherror.KindTooManyRequests, autherror.KindOf(autherror.ErrTooManyResetRequests))
	assert.Equal(t, autherror.KindInternal, autherror.KindOf(errors.New("anything else")))
}

func TestKindOfWrapped(t *testing.T) {
	wrapped := fmt.Errorf("refresh: %w", autherror.ErrSessionExpired)

	assert.Equal(t, autherror.KindUnauthorized, autherror.KindOf(wrapped))
	assert.True(t, errors.Is(wrapped, autherror.ErrSessionExpired))
}
