package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dripdrop-backend/internal/domain"
	"github.com/heartmarshall/dripdrop-backend/pkg/ctxutil"
)

// Reorder sets the display order of the caller's items to the order of
// input.ItemIDs. Ids the caller does not own are ignored; if none are owned the
// call fails with ErrNotFound and nothing changes.
func (s *Service) Reorder(ctx context.Context, input ReorderInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.validate.Validate(input); err != nil {
		return err
	}

	moved, err := s.items.Reorder(ctx, userID, input.ItemIDs)
	if err != nil {
		return fmt.Errorf("item.Reorder: %w", err)
	}

	if moved < len(input.ItemIDs) {
		s.log.WarnContext(ctx, "reorder skipped ids not owned by user",
			slog.String("user_id", userID.String()),
			slog.Int("requested", len(input.ItemIDs)),
			slog.Int("moved", moved),
		)
	}

	s.profiles.Invalidate(ctx, userID)
	return nil
}
