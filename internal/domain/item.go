package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is applied when an item is created without a currency.
const DefaultCurrency = "USD"

// Item is a clothing item listed on a user's profile.
type Item struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Brand     *string
	Price     *decimal.Decimal
	Currency  string
	ImageURL  *string
	LinkURL   string
	Category  *string
	Position  int
	IsActive  bool
	Clicks    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewItem carries the fields of an item to be inserted. Position, IsActive and
// Clicks are assigned by the store.
type NewItem struct {
	UserID   uuid.UUID
	Title    string
	Brand    *string
	Price    *decimal.Decimal
	Currency string
	ImageURL *string
	LinkURL  string
	Category *string
}

// ItemChanges is a partial update of an item.
// A nil field is left untouched. ClearPrice sets the price to NULL.
type ItemChanges struct {
	Title      *string
	Brand      *string
	Price      *decimal.Decimal
	ClearPrice bool
	Currency   *string
	ImageURL   *string
	LinkURL    *string
	Category   *string
	IsActive   *bool
}

// IsEmpty reports whether the change set touches no column.
func (c ItemChanges) IsEmpty() bool {
	return c.Title == nil && c.Brand == nil && c.Price == nil && !c.ClearPrice &&
		c.Currency == nil && c.ImageURL == nil && c.LinkURL == nil &&
		c.Category == nil && c.IsActive == nil
}
