package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/JosephOluOlofinte/sleat-backend/internal/auth/domain"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1);`

	var exists bool
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, email, name, password_hash, verified, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, user.ID, user.Email, user.Name, user.PasswordHash, user.Verified, user.CreatedAt, user.UpdatedAt)

	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, name, password_hash, verified, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, email, name, password_hash, verified, created_at, updated_at
		FROM users
		WHERE id = $1
		LIMIT 1;
	`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) SetVerified(ctx context.Context, id string) (*domain.User, error) {
	query := `
		UPDATE users
		SET verified = TRUE, updated_at = now()
		WHERE id = $1
		RETURNING id, email, name, password_hash, verified, created_at, updated_at;
	`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) (*domain.User, error) {
	query := `
		UPDATE users
		SET password_hash = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, email, name, password_hash, verified, created_at, updated_at;
	`
	return scanUser(r.db.QueryRow(ctx, query, id, passwordHash))
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash,
		&user.Verified, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	return &user, nil
}
