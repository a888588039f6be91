package item

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dripdrop-backend/internal/domain"
	"github.com/heartmarshall/dripdrop-backend/internal/validation"
)

type itemRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Item, error)
	Create(ctx context.Context, n domain.NewItem) (*domain.Item, error)
	Update(ctx context.Context, userID, itemID uuid.UUID, changes domain.ItemChanges) (*domain.Item, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) (bool, error)
	ToggleActive(ctx context.Context, userID, itemID uuid.UUID) (*domain.Item, error)
	Reorder(ctx context.Context, userID uuid.UUID, orderedIDs []uuid.UUID) (int, error)
}

// profileInvalidator drops the cached public profile of a user.
type profileInvalidator interface {
	Invalidate(ctx context.Context, userID uuid.UUID)
}

// Service manages the clothing items of the authenticated user.
type Service struct {
	items    itemRepo
	profiles profileInvalidator
	validate *validation.Validator
	log      *slog.Logger
}

// NewService creates a new item service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	profiles profileInvalidator,
) *Service {
	return &Service{
		items:    items,
		profiles: profiles,
		validate: validation.New(),
		log:      log.With("service", "item"),
	}
}
