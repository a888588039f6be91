package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dripdrop-backend/internal/domain"
	"github.com/heartmarshall/dripdrop-backend/pkg/ctxutil"
)

// List returns all items of the caller, inactive included, in display order.
func (s *Service) List(ctx context.Context) ([]domain.Item, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.items.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("item.List: %w", err)
	}
	return items, nil
}

// Create appends a new active item to the end of the caller's list.
func (s *Service) Create(ctx context.Context, input CreateItemInput) (*domain.Item, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	price, err := input.check(s.validate)
	if err != nil {
		return nil, err
	}

	item, err := s.items.Create(ctx, input.toNewItem(userID, price))
	if err != nil {
		return nil, fmt.Errorf("item.Create: %w", err)
	}

	s.log.InfoContext(ctx, "item created",
		slog.String("user_id", userID.String()),
		slog.String("item_id", item.ID.String()),
		slog.Int("position", item.Position),
	)

	s.profiles.Invalidate(ctx, userID)
	return item, nil
}

// Update applies a partial update to one of the caller's items.
// Returns ErrNotFound when the item does not exist or belongs to someone else.
func (s *Service) Update(ctx context.Context, itemID uuid.UUID, input UpdateItemInput) (*domain.Item, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	changes, err := input.check(s.validate)
	if err != nil {
		return nil, err
	}

	item, err := s.items.Update(ctx, userID, itemID, changes)
	if err != nil {
		return nil, fmt.Errorf("item.Update: %w", err)
	}

	s.profiles.Invalidate(ctx, userID)
	return item, nil
}

// Delete removes one of the caller's items. Deleting an item that does not
// exist, or is not the caller's, succeeds without changing anything.
func (s *Service) Delete(ctx context.Context, itemID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	deleted, err := s.items.Delete(ctx, userID, itemID)
	if err != nil {
		return fmt.Errorf("item.Delete: %w", err)
	}
	if !deleted {
		return nil
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID.String()),
	)

	s.profiles.Invalidate(ctx, userID)
	return nil
}

// ToggleActive shows or hides one of the caller's items on the public profile.
func (s *Service) ToggleActive(ctx context.Context, itemID uuid.UUID) (*domain.Item, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	item, err := s.items.ToggleActive(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("item.ToggleActive: %w", err)
	}

	s.profiles.Invalidate(ctx, userID)
	return item, nil
}
