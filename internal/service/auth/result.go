package auth

import (
	"time"

	"github.com/heartmarshall/dripdrop-backend/internal/domain"
)

// AuthResult is returned by Register, LoginWithPassword and Refresh.
type AuthResult struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string // raw token, NOT hash
	RefreshExpiresAt time.Time
	User             *domain.User
}
