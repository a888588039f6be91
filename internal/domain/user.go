package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account together with its public profile fields.
// Username is stored lowercased and doubles as the public URL slug.
type User struct {
	ID          uuid.UUID
	Email       string
	Username    string
	DisplayName string
	Bio         *string
	AvatarURL   *string
	Theme       Theme
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProfileChanges is a partial update of the profile fields.
// A nil field is left untouched; an empty string clears a nullable field.
type ProfileChanges struct {
	DisplayName *string
	Bio         *string
	AvatarURL   *string
	Theme       *Theme
}

// IsEmpty reports whether no field is set.
func (c ProfileChanges) IsEmpty() bool {
	return c.DisplayName == nil && c.Bio == nil && c.AvatarURL == nil && c.Theme == nil
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
