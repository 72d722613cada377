package repository

import (
	"context"
	"errors"

	"space-booking-api/internal/infra"
	"space-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const findUserByEmailQuery = `
SELECT id, email, role, display_name, is_active, password_hash
FROM users
WHERE email = $1
`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUserRM, string, error) {
	var rm readmodel.AuthorizedUserRM
	var passwordHash string

	err := r.db.QueryRow(ctx, findUserByEmailQuery, email).Scan(
		&rm.ID, &rm.Email, &rm.Role, &rm.DisplayName, &rm.IsActive, &passwordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &rm, passwordHash, nil
}

const findUserByIDQuery = `
SELECT id, email, role, display_name, is_active
FROM users
WHERE id = $1
`

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	var rm readmodel.AuthorizedUserRM

	err := r.db.QueryRow(ctx, findUserByIDQuery, id).Scan(
		&rm.ID, &rm.Email, &rm.Role, &rm.DisplayName, &rm.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &rm, nil
}

const updateLastLoginQuery = `
UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1
`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, updateLastLoginQuery, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
