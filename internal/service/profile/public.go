package profile

import (
	"context"
	"fmt"

	"github.com/heartmarshall/dripdrop-backend/internal/domain"
)

// GetPublicProfile returns the public page of username with its active items
// in display order. Usernames are matched without regard to case.
// Returns ErrNotFound for unknown users.
func (s *Service) GetPublicProfile(ctx context.Context, username string) (*PublicPage, error) {
	username = domain.NormalizeUsername(username)
	if domain.CheckUsername(username) != "" {
		return nil, fmt.Errorf("profile %q: %w", username, domain.ErrNotFound)
	}

	if p, ok := s.cache.Get(ctx, username); ok {
		return s.page(p), nil
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("profile.GetPublicProfile: %w", err)
	}

	items, err := s.items.ListActiveByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("profile.GetPublicProfile list items: %w", err)
	}

	p := domain.NewPublicProfile(*user, items)
	s.cache.Set(ctx, &p)

	return s.page(&p), nil
}
