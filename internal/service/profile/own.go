package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dripdrop-backend/internal/domain"
	"github.com/heartmarshall/dripdrop-backend/pkg/ctxutil"
)

// GetOwnProfile returns the authenticated user's profile.
func (s *Service) GetOwnProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile.GetOwnProfile: %w", err)
	}
	return user, nil
}

// UpdateProfile applies a partial update to the caller's profile and drops
// the cached public page.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := s.validate.Validate(input); err != nil {
		return nil, err
	}
	changes := input.changes()
	if changes.IsEmpty() {
		return nil, domain.NewValidationError("body", "at least one field is required")
	}

	user, err := s.users.UpdateProfile(ctx, userID, changes)
	if err != nil {
		return nil, fmt.Errorf("profile.UpdateProfile: %w", err)
	}

	s.cache.Delete(ctx, user.Username)

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", userID.String()))
	return user, nil
}

// Dashboard returns the caller's profile, all of their items and their share link.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile.Dashboard: %w", err)
	}

	items, err := s.items.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile.Dashboard list items: %w", err)
	}

	return &Dashboard{
		User:     user,
		Items:    items,
		ShareURL: domain.ShareURL(s.baseURL, user.Username),
	}, nil
}

// Invalidate drops the cached public page of a user. Failures are logged;
// the cache entry then expires on its own.
func (s *Service) Invalidate(ctx context.Context, userID uuid.UUID) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "profile cache invalidation skipped",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	s.cache.Delete(ctx, user.Username)
}
