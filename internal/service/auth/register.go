package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/dripdrop-backend/internal/domain"
)

// Register creates a new user with email + password authentication.
// Username and email uniqueness are enforced by the database alone; a clash
// comes back as a *domain.ConflictError naming the field.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.normalize()

	// Step 1: Validate input
	if err := s.validate.Validate(input); err != nil {
		return nil, err
	}
	if err := input.checkPasswordLength(); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}
	hashStr := string(hash)

	// Step 3: Create user + password credential in a transaction.
	var createdUser *domain.User

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now()
		newUser := &domain.User{
			ID:          uuid.New(),
			Email:       input.Email,
			Username:    input.Username,
			DisplayName: input.Username,
			Theme:       domain.DefaultTheme,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		user, err := s.users.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		am := &domain.AuthMethod{
			UserID:       user.ID,
			Method:       domain.AuthMethodPassword,
			PasswordHash: &hashStr,
		}
		if _, err := s.authMethods.Create(txCtx, am); err != nil {
			return fmt.Errorf("create auth method: %w", err)
		}

		createdUser = user
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Step 4: Issue tokens
	result, err := s.issueTokens(ctx, createdUser)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user registered via password",
		slog.String("user_id", createdUser.ID.String()),
		slog.String("username", createdUser.Username))

	return result, nil
}
