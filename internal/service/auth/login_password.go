package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/dripdrop-backend/internal/domain"
)

// LoginWithPassword signs a creator in with email and password. Every
// credential failure is ErrUnauthorized; only store errors pass through.
func (s *Service) LoginWithPassword(ctx context.Context, input LoginPasswordInput) (*AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	if err := s.validate.Validate(input); err != nil {
		return nil, err
	}

	user, reason, err := s.checkPassword(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithPassword: %w", err)
	}
	if reason != "" {
		attrs := []any{slog.String("reason", reason)}
		if user != nil {
			attrs = append(attrs, slog.String("user_id", user.ID.String()))
		}
		s.log.InfoContext(ctx, "login rejected", attrs...)
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithPassword issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "creator signed in",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))

	return result, nil
}

// checkPassword returns the user and an empty reason on success. A non-empty
// reason is a rejected credential; err is reserved for store failures.
func (s *Service) checkPassword(ctx context.Context, input LoginPasswordInput) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		_ = bcrypt.CompareHashAndPassword(s.decoyHash(), []byte(input.Password))
		return nil, "unknown_email", nil
	case err != nil:
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	hash, err := s.passwordHash(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	if hash == nil {
		return user, "no_password", nil
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(input.Password)) != nil {
		return user, "wrong_password", nil
	}
	return user, "", nil
}

func (s *Service) passwordHash(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	am, err := s.authMethods.GetByUserAndMethod(ctx, userID, domain.AuthMethodPassword)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("get auth method: %w", err)
	case am.PasswordHash == nil:
		return nil, nil
	}
	return []byte(*am.PasswordHash), nil
}
