// Package authmethod implements the AuthMethod repository using PostgreSQL.
package authmethod

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/dripdrop-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dripdrop-backend/internal/domain"
)

// Repo provides auth_methods persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new auth method repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const columns = "id, user_id, method, password_hash, created_at, updated_at"

const getByUserAndMethodSQL = `
SELECT ` + columns + `
FROM auth_methods
WHERE user_id = $1 AND method = $2`

const createSQL = `
INSERT INTO auth_methods (user_id, method, password_hash)
VALUES ($1, $2, $3)
RETURNING ` + columns

type authMethodRow struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	Method       string    `db:"method"`
	PasswordHash *string   `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r authMethodRow) toDomain() *domain.AuthMethod {
	return &domain.AuthMethod{
		ID:           r.ID,
		UserID:       r.UserID,
		Method:       domain.AuthMethodType(r.Method),
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// GetByUserAndMethod returns the auth method for a user with the given method type.
func (r *Repo) GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error) {
	var row authMethodRow
	err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByUserAndMethodSQL, userID, string(method))
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", userID)
	}
	return row.toDomain(), nil
}

// Create inserts a new auth method row.
func (r *Repo) Create(ctx context.Context, am *domain.AuthMethod) (*domain.AuthMethod, error) {
	var row authMethodRow
	err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createSQL, am.UserID, string(am.Method), am.PasswordHash)
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", am.UserID)
	}
	return row.toDomain(), nil
}
