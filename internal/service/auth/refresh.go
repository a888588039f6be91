package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dripdrop-backend/internal/auth"
	"github.com/heartmarshall/dripdrop-backend/internal/domain"
)

// Refresh performs token rotation and returns new access/refresh tokens.
// The old token is revoked and the new one stored in the same transaction.
// An unknown, revoked or concurrently rotated token returns ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	// Step 1: Validate input
	if err := s.validate.Validate(input); err != nil {
		return nil, err
	}

	// Step 2: Hash the refresh token
	hash := auth.HashToken(input.RefreshToken)

	// Step 3: Get token from DB
	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh token reuse attempted")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	// Step 4: Check if token is expired
	if token.IsExpired(s.now()) {
		return nil, domain.ErrUnauthorized
	}

	// Step 5: Get user
	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	// Step 6: Revoke old token and issue a new pair
	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tokens.RevokeByID(txCtx, token.ID); err != nil {
			return err
		}
		var err error
		result, err = s.issueTokens(txCtx, user)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh token rotated concurrently",
				slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh rotate: %w", err)
	}

	return result, nil
}
