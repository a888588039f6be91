package auth

import (
	"github.com/heartmarshall/dripdrop-backend/internal/domain"
)

// bcrypt ignores everything past 72 bytes.
const maxPasswordBytes = 72

// RegisterInput holds parameters for sign-up.
type RegisterInput struct {
	Email    string `json:"email"    validate:"required,email,max=254"`
	Username string `json:"username" validate:"username"`
	Password string `json:"password" validate:"required,min=8"`
}

// normalize lowercases email and username. Usernames are unique regardless of
// case, and lowercasing here is what makes the DB index authoritative.
func (i *RegisterInput) normalize() {
	i.Email = domain.NormalizeEmail(i.Email)
	i.Username = domain.NormalizeUsername(i.Username)
}

func (i RegisterInput) checkPasswordLength() error {
	if len(i.Password) > maxPasswordBytes {
		return domain.NewValidationError("password", "must not exceed 72 bytes")
	}
	return nil
}

// LoginPasswordInput holds parameters for sign-in.
type LoginPasswordInput struct {
	Email    string `json:"email"    validate:"required,max=254"`
	Password string `json:"password" validate:"required,max=1024"`
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required,max=512"`
}
