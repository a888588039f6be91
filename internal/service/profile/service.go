// Package profile serves public profile pages and the owner's profile and
// dashboard views.
package profile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dripdrop-backend/internal/config"
	"github.com/heartmarshall/dripdrop-backend/internal/domain"
	"github.com/heartmarshall/dripdrop-backend/internal/validation"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, changes domain.ProfileChanges) (*domain.User, error)
}

type itemRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Item, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.Item, error)
}

// profileCache is best-effort: misses and failures look the same.
type profileCache interface {
	Get(ctx context.Context, username string) (*domain.PublicProfile, bool)
	Set(ctx context.Context, p *domain.PublicProfile)
	Delete(ctx context.Context, username string)
}

// Service implements profile reads and updates.
type Service struct {
	users    userRepo
	items    itemRepo
	cache    profileCache
	validate *validation.Validator
	baseURL  string
	siteName string
	log      *slog.Logger
}

// NewService creates a new profile service.
func NewService(
	log *slog.Logger,
	users userRepo,
	items itemRepo,
	cache profileCache,
	cfg config.ServerConfig,
) *Service {
	return &Service{
		users:    users,
		items:    items,
		cache:    cache,
		validate: validation.New(),
		baseURL:  cfg.PublicBaseURL,
		siteName: cfg.SiteName,
		log:      log.With("service", "profile"),
	}
}

// page attaches share metadata to a profile.
func (s *Service) page(p *domain.PublicProfile) *PublicPage {
	return &PublicPage{
		Profile:     p,
		Title:       p.PageTitle(s.siteName),
		Description: p.PageDescription(s.siteName),
		ShareURL:    domain.ShareURL(s.baseURL, p.Username),
	}
}
