// Package token implements the RefreshToken repository using PostgreSQL.
package token

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/dripdrop-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dripdrop-backend/internal/domain"
)

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new token repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const createSQL = `
INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
VALUES ($1, $2, $3)`

const getByHashSQL = `
SELECT id, user_id, token_hash, expires_at, created_at, revoked_at
FROM refresh_tokens
WHERE token_hash = $1 AND revoked_at IS NULL`

const revokeByIDSQL = `
UPDATE refresh_tokens SET revoked_at = now()
WHERE id = $1 AND revoked_at IS NULL`

const revokeAllByUserSQL = `
UPDATE refresh_tokens SET revoked_at = now()
WHERE user_id = $1 AND revoked_at IS NULL`

const deleteExpiredSQL = `
DELETE FROM refresh_tokens
WHERE expires_at < now() OR revoked_at IS NOT NULL`

type tokenRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, token *domain.RefreshToken) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL, token.UserID, token.TokenHash, token.ExpiresAt)
	if err != nil {
		return postgres.MapError(err, "refresh_token", token.UserID)
	}
	return nil
}

// GetByHash returns a non-revoked refresh token by its hash. Expiry is left
// to the caller. Returns domain.ErrNotFound if the token is unknown or revoked.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	var row tokenRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByHashSQL, tokenHash); err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	return &domain.RefreshToken{
		ID:        row.ID,
		UserID:    row.UserID,
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
		RevokedAt: row.RevokedAt,
	}, nil
}

// RevokeByID revokes a specific refresh token by setting revoked_at.
// Returns domain.ErrNotFound if the token was already revoked, so only one of
// two concurrent rotations of the same token succeeds.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, revokeByIDSQL, id)
	if err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "refresh_token", id)
	}
	return nil
}

// RevokeAllByUser revokes all active refresh tokens for the given user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, revokeAllByUserSQL, userID); err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}
	return nil
}

// DeleteExpired removes all expired or revoked tokens from the database.
// Returns the count of deleted tokens.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteExpiredSQL)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}
