// Package click records anonymous clicks on item purchase links.
package click

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dripdrop-backend/internal/domain"
	"github.com/heartmarshall/dripdrop-backend/internal/observability"
)

type clickRepo interface {
	IncrementClicks(ctx context.Context, itemID uuid.UUID) error
}

// Service counts clicks. It is the only mutation open to anonymous callers.
type Service struct {
	items   clickRepo
	timeout time.Duration
	log     *slog.Logger
}

// NewService creates a click service. Each increment gets at most timeout.
func NewService(log *slog.Logger, items clickRepo, timeout time.Duration) *Service {
	return &Service{
		items:   items,
		timeout: timeout,
		log:     log.With("service", "click"),
	}
}

// Track increments the click counter of itemID. It never fails: a click that
// cannot be stored is logged and counted as dropped. The increment outlives
// the caller's cancellation so a visitor navigating away still counts.
func (s *Service) Track(ctx context.Context, itemID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	err := s.items.IncrementClicks(ctx, itemID)
	switch {
	case err == nil:
		observability.ItemClicksTotal.WithLabelValues("recorded").Inc()
	case errors.Is(err, domain.ErrNotFound):
		observability.ItemClicksTotal.WithLabelValues("unknown_item").Inc()
		s.log.DebugContext(ctx, "click on unknown item", slog.String("item_id", itemID.String()))
	default:
		observability.ItemClicksTotal.WithLabelValues("dropped").Inc()
		s.log.WarnContext(ctx, "click not recorded",
			slog.String("item_id", itemID.String()),
			slog.String("error", err.Error()),
		)
	}
}
