package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/dripdrop-backend/internal/domain"
	"github.com/heartmarshall/dripdrop-backend/internal/service/item"
)

type itemService interface {
	List(ctx context.Context) ([]domain.Item, error)
	Create(ctx context.Context, input item.CreateItemInput) (*domain.Item, error)
	Update(ctx context.Context, itemID uuid.UUID, input item.UpdateItemInput) (*domain.Item, error)
	Delete(ctx context.Context, itemID uuid.UUID) error
	ToggleActive(ctx context.Context, itemID uuid.UUID) (*domain.Item, error)
	Reorder(ctx context.Context, input item.ReorderInput) error
}

// ItemHandler serves the owner's item management endpoints under /api/items.
type ItemHandler struct {
	svc itemService
	log *slog.Logger
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(svc itemService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, log: logger.With("handler", "items")}
}

// List handles GET /api/items.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": toItemsResponse(items)})
}

// Create handles POST /api/items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input item.CreateItemInput
	if err := decodeJSON(w, r, &input, false); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	it, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemResponse(it))
}

// Update handles PATCH /api/items/{id}.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var input item.UpdateItemInput
	if err := decodeJSON(w, r, &input, false); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	it, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(it))
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Toggle handles POST /api/items/{id}/toggle.
func (h *ItemHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	it, err := h.svc.ToggleActive(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(it))
}

// Reorder handles PUT /api/items/order with {"item_ids": [...]}.
func (h *ItemHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var input item.ReorderInput
	if err := decodeJSON(w, r, &input, false); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.Reorder(r.Context(), input); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} wildcard. A malformed id cannot name an item, so it
// answers 404 like any other unknown item.
func (h *ItemHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}
