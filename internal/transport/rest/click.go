package rest

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type clickTracker interface {
	Track(ctx context.Context, itemID uuid.UUID)
}

// ClickHandler serves POST /api/items/{id}/click.
//
// The response is always 204 so the visitor's navigation never waits on or
// learns anything from click accounting.
type ClickHandler struct {
	clicks clickTracker
}

// NewClickHandler creates a ClickHandler.
func NewClickHandler(clicks clickTracker) *ClickHandler {
	return &ClickHandler{clicks: clicks}
}

// Track records one click on the item named by the path.
func (h *ClickHandler) Track(w http.ResponseWriter, r *http.Request) {
	if id, err := uuid.Parse(r.PathValue("id")); err == nil {
		h.clicks.Track(r.Context(), id)
	}
	w.WriteHeader(http.StatusNoContent)
}
