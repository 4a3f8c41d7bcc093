package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/JosephOluOlofinte/sleat-backend/internal/auth/domain"
	repo "github.com/JosephOluOlofinte/sleat-backend/internal/auth/repository/postgres"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "email", "name", "password_hash", "verified", "created_at", "updated_at"}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	t.Run("exists", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("a@x.com").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := r.ExistsByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("absent", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("b@x.com").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := r.ExistsByEmail(ctx, "b@x.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, name, password_hash").
			WithArgs("a@x.com").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow("user-123", "a@x.com", "A", "hash", false, now, now))

		user, err := r.GetByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "user-123", user.ID)
		assert.Equal(t, "a@x.com", user.Email)
		assert.False(t, user.Verified)
	})

	t.Run("no rows yields nil user and nil error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, name, password_hash").
			WithArgs("missing@x.com").
			WillReturnRows(pgxmock.NewRows(userColumns))

		user, err := r.GetByEmail(ctx, "missing@x.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	now := time.Now()

	user := &domain.User{
		ID:           "user-123",
		Email:        "a@x.com",
		Name:         "A",
		PasswordHash: "hash",
		Verified:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.Email, user.Name, user.PasswordHash, user.Verified, user.CreatedAt, user.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, r.Create(context.Background(), user))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_SetVerified(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	now := time.Now()

	mock.ExpectQuery("UPDATE users").
		WithArgs("user-123").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow("user-123", "a@x.com", "A", "hash", true, now, now))

	user, err := r.SetVerified(context.Background(), "user-123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.Verified)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewSessionRepository(mock)
	ctx := context.Background()
	now := time.Now()
	columns := []string{"id", "user_id", "user_agent", "expires_at", "created_at"}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, user_agent").
			WithArgs("session-1").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("session-1", "user-123", "agent", now.Add(time.Hour), now))

		session, err := r.GetByID(ctx, "session-1")
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "user-123", session.UserID)
	})

	t.Run("missing session is nil, nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, user_agent").
			WithArgs("missing").
			WillReturnRows(pgxmock.NewRows(columns))

		session, err := r.GetByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_UpdateExpiry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewSessionRepository(mock)
	newExpiry := time.Now().Add(30 * 24 * time.Hour)

	mock.ExpectExec("UPDATE sessions SET expires_at").
		WithArgs("session-1", newExpiry).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, r.UpdateExpiry(context.Background(), "session-1", newExpiry))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_DeleteAllByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewSessionRepository(mock)

	mock.ExpectExec("DELETE FROM sessions WHERE user_id").
		WithArgs("user-123").
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	require.NoError(t, r.DeleteAllByUserID(context.Background(), "user-123"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVerificationCodeRepository_FindValid(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewVerificationCodeRepository(mock)
	ctx := context.Background()
	now := time.Now()
	columns := []string{"id", "user_id", "type", "expires_at", "created_at"}

	t.Run("matches id, type and expiry together", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, type, expires_at").
			WithArgs("code-1", string(domain.EmailVerification), now).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("code-1", "user-123", domain.EmailVerification, now.Add(time.Hour), now))

		code, err := r.FindValid(ctx, "code-1", domain.EmailVerification, now)
		require.NoError(t, err)
		require.NotNil(t, code)
		assert.Equal(t, domain.EmailVerification, code.Type)
	})

	t.Run("any miss collapses to nil, nil", func(t *testing.T) {
		// Wrong type, expired or absent all produce zero rows; the
		// caller cannot tell which.
		mock.ExpectQuery("SELECT id, user_id, type, expires_at").
			WithArgs("code-1", string(domain.PasswordReset), now).
			WillReturnRows(pgxmock.NewRows(columns))

		code, err := r.FindValid(ctx, "code-1", domain.PasswordReset, now)
		require.NoError(t, err)
		assert.Nil(t, code)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVerificationCodeRepository_CountRecent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewVerificationCodeRepository(mock)
	since := time.Now().Add(-5 * time.Minute)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("user-123", string(domain.PasswordReset), since).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	count, err := r.CountRecent(context.Background(), "user-123", domain.PasswordReset, since)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVerificationCodeRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewVerificationCodeRepository(mock)
	ctx := context.Background()

	t.Run("first consume wins", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM verification_codes").
			WithArgs("code-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		deleted, err := r.Delete(ctx, "code-1")
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("second consume sees the row already gone", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM verification_codes").
			WithArgs("code-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		deleted, err := r.Delete(ctx, "code-1")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
