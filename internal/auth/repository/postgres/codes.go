package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JosephOluOlofinte/sleat-backend/internal/auth/domain"
	"github.com/jackc/pgx/v5"
)

type VerificationCodeRepository struct {
	db DB
}

func NewVerificationCodeRepository(db DB) *VerificationCodeRepository {
	return &VerificationCodeRepository{db: db}
}

func (r *VerificationCodeRepository) Create(ctx context.Context, code *domain.VerificationCode) error {
	query := `INSERT INTO verification_codes (id, user_id, type, expires_at, created_at)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query,
		code.ID, code.UserID, string(code.Type), code.ExpiresAt, code.CreatedAt)
	return err
}

// FindValid matches on id, type and expiry in one query. An absent,
// expired or wrong-type code all come back as (nil, nil).
func (r *VerificationCodeRepository) FindValid(ctx context.Context, id string, codeType domain.VerificationCodeType, now time.Time) (*domain.VerificationCode, error) {
	query := `
		SELECT id, user_id, type, expires_at, created_at
		FROM verification_codes
		WHERE id = $1 AND type = $2 AND expires_at > $3
		LIMIT 1;
	`
	var c domain.VerificationCode
	err := r.db.QueryRow(ctx, query, id, string(codeType), now).
		Scan(&c.ID, &c.UserID, &c.Type, &c.ExpiresAt, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find verification code: %w", err)
	}

	return &c, nil
}

func (r *VerificationCodeRepository) CountRecent(ctx context.Context, userID string, codeType domain.VerificationCodeType, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM verification_codes
		WHERE user_id = $1 AND type = $2 AND created_at > $3;
	`
	var count int
	if err := r.db.QueryRow(ctx, query, userID, string(codeType), since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count verification codes: %w", err)
	}

	return count, nil
}

// Delete consumes the code. The row count decides a consume race: only
// the caller that actually removed the row gets true.
func (r *VerificationCodeRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM verification_codes WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
