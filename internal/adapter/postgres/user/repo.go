// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/dripdrop-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dripdrop-backend/internal/domain"
)

// Unique indexes on lower(username) and lower(email).
const (
	usernameKey = "users_username_lower_key"
	emailKey    = "users_email_lower_key"
)

const userColumns = "id, email, username, display_name, bio, avatar_url, theme, created_at, updated_at"

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID          uuid.UUID `db:"id"`
	Email       string    `db:"email"`
	Username    string    `db:"username"`
	DisplayName string    `db:"display_name"`
	Bio         *string   `db:"bio"`
	AvatarURL   *string   `db:"avatar_url"`
	Theme       string    `db:"theme"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:          r.ID,
		Email:       r.Email,
		Username:    r.Username,
		DisplayName: r.DisplayName,
		Bio:         r.Bio,
		AvatarURL:   r.AvatarURL,
		Theme:       domain.Theme(r.Theme),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, "user", id.String(), squirrel.Eq{"id": id})
}

// GetByEmail returns a user by email address, ignoring case.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "user", email, squirrel.Expr("lower(email) = lower(?)", email))
}

// GetByUsername returns a user by username, ignoring case.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, "user", username, squirrel.Expr("lower(username) = lower(?)", username))
}

func (r *Repo) getOne(ctx context.Context, entity, key string, where squirrel.Sqlizer) (*domain.User, error) {
	q := postgres.Builder.Select(userColumns).From("users").Where(where)

	var row userRow
	if err := postgres.GetBuilt(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapErrorKey(err, entity, key)
	}
	return row.toDomain(), nil
}

// Create inserts a new user. A clash on the case-insensitive username or
// email index is reported as a *domain.ConflictError naming the field.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.Builder.Insert("users").
		Columns("id", "email", "username", "display_name", "bio", "avatar_url", "theme", "created_at", "updated_at").
		Values(u.ID, u.Email, u.Username, u.DisplayName, u.Bio, u.AvatarURL, string(u.Theme), u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + userColumns)

	var row userRow
	if err := postgres.GetBuilt(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, mapCreateError(err, u.ID)
	}
	return row.toDomain(), nil
}

func mapCreateError(err error, id uuid.UUID) error {
	mapped := postgres.MapError(err, "user", id)
	if !errors.Is(mapped, domain.ErrAlreadyExists) {
		return mapped
	}
	switch postgres.ConstraintName(err) {
	case usernameKey:
		return fmt.Errorf("user %s: %w", id, domain.NewConflictError("username"))
	case emailKey:
		return fmt.Errorf("user %s: %w", id, domain.NewConflictError("email"))
	}
	return mapped
}

// UpdateProfile applies the non-nil fields of changes. An empty string clears
// bio and avatar_url.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, changes domain.ProfileChanges) (*domain.User, error) {
	set := map[string]any{"updated_at": squirrel.Expr("now()")}
	if changes.DisplayName != nil {
		set["display_name"] = *changes.DisplayName
	}
	if changes.Bio != nil {
		set["bio"] = nullIfEmpty(*changes.Bio)
	}
	if changes.AvatarURL != nil {
		set["avatar_url"] = nullIfEmpty(*changes.AvatarURL)
	}
	if changes.Theme != nil {
		set["theme"] = string(*changes.Theme)
	}

	q := postgres.Builder.Update("users").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + userColumns)

	var row userRow
	if err := postgres.GetBuilt(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
