// Package item implements the clothing item repository using PostgreSQL.
// Position allocation and reordering serialize on the owner's users row so
// that concurrent writers for the same profile never interleave.
package item

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/dripdrop-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dripdrop-backend/internal/domain"
)

// Repo provides clothing item persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.DB
	txm *postgres.TxManager
}

// New creates a new item repository.
func New(db postgres.DB, txm *postgres.TxManager) *Repo {
	return &Repo{db: db, txm: txm}
}

const itemColumns = "id, user_id, title, brand, price, currency, image_url, link_url, category, position, is_active, clicks, created_at, updated_at"

// Ties on position are broken by creation order, then id, so that listing is
// deterministic even after a concurrent write produced duplicates.
const itemOrder = "position, created_at, id"

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const lockOwnerSQL = `SELECT id FROM users WHERE id = $1 FOR UPDATE`

const createSQL = `
INSERT INTO clothing_items (user_id, title, brand, price, currency, image_url, link_url, category, position)
SELECT $1::uuid, $2::text, $3::text, $4::numeric, $5::text, $6::text, $7::text, $8::text,
       COALESCE(MAX(position) + 1, 0)
FROM clothing_items
WHERE user_id = $1::uuid
RETURNING ` + itemColumns

const deleteSQL = `DELETE FROM clothing_items WHERE id = $1 AND user_id = $2`

const toggleActiveSQL = `
UPDATE clothing_items
SET is_active = NOT is_active, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + itemColumns

const reorderSQL = `
UPDATE clothing_items AS ci
SET position = o.ord - 1, updated_at = now()
FROM unnest($2::uuid[]) WITH ORDINALITY AS o(id, ord)
WHERE ci.id = o.id AND ci.user_id = $1`

const incrementClicksSQL = `UPDATE clothing_items SET clicks = clicks + 1 WHERE id = $1`

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type itemRow struct {
	ID        uuid.UUID      `db:"id"`
	UserID    uuid.UUID      `db:"user_id"`
	Title     string         `db:"title"`
	Brand     *string        `db:"brand"`
	Price     pgtype.Numeric `db:"price"`
	Currency  string         `db:"currency"`
	ImageURL  *string        `db:"image_url"`
	LinkURL   string         `db:"link_url"`
	Category  *string        `db:"category"`
	Position  int            `db:"position"`
	IsActive  bool           `db:"is_active"`
	Clicks    int64          `db:"clicks"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r itemRow) toDomain() domain.Item {
	return domain.Item{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Brand:     r.Brand,
		Price:     numericToDecimal(r.Price),
		Currency:  r.Currency,
		ImageURL:  r.ImageURL,
		LinkURL:   r.LinkURL,
		Category:  r.Category,
		Position:  r.Position,
		IsActive:  r.IsActive,
		Clicks:    r.Clicks,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toDomainItems(rows []itemRow) []domain.Item {
	items := make([]domain.Item, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}
	return items
}

func numericToDecimal(n pgtype.Numeric) *decimal.Decimal {
	if !n.Valid || n.Int == nil || n.NaN || n.InfinityModifier != pgtype.Finite {
		return nil
	}
	d := decimal.NewFromBigInt(n.Int, n.Exp)
	return &d
}

func decimalToNumeric(d *decimal.Decimal) pgtype.Numeric {
	if d == nil {
		return pgtype.Numeric{}
	}
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByUser returns all items of a user ordered by position.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Item, error) {
	return r.list(ctx, userID, squirrel.Eq{"user_id": userID})
}

// ListActiveByUser returns the active items of a user ordered by position.
func (r *Repo) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.Item, error) {
	return r.list(ctx, userID, squirrel.Eq{"user_id": userID, "is_active": true})
}

func (r *Repo) list(ctx context.Context, userID uuid.UUID, where squirrel.Eq) ([]domain.Item, error) {
	q := postgres.Builder.Select(itemColumns).
		From("clothing_items").
		Where(where).
		OrderBy(itemOrder)

	var rows []itemRow
	if err := postgres.SelectBuilt(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "items of user", userID)
	}
	return toDomainItems(rows), nil
}

// GetByID returns an item owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.Item, error) {
	q := postgres.Builder.Select(itemColumns).
		From("clothing_items").
		Where(squirrel.Eq{"id": itemID, "user_id": userID})

	var row itemRow
	if err := postgres.GetBuilt(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}
	it := row.toDomain()
	return &it, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an item at the end of the owner's list. The position is
// computed inside the INSERT while holding the owner's row lock, so two
// concurrent creates for the same user get distinct positions.
// Returns domain.ErrNotFound if the owner does not exist.
func (r *Repo) Create(ctx context.Context, n domain.NewItem) (*domain.Item, error) {
	var created domain.Item

	err := r.txm.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)

		if err := lockOwner(ctx, q, n.UserID); err != nil {
			return err
		}

		var row itemRow
		err := postgres.Get(ctx, q, &row, createSQL,
			n.UserID, n.Title, n.Brand, decimalToNumeric(n.Price), n.Currency,
			n.ImageURL, n.LinkURL, n.Category,
		)
		if err != nil {
			return postgres.MapError(err, "item of user", n.UserID)
		}
		created = row.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// Update applies the non-nil fields of changes to an item owned by userID.
// Returns domain.ErrNotFound when no row matched, which covers both a missing
// item and an item owned by someone else.
func (r *Repo) Update(ctx context.Context, userID, itemID uuid.UUID, changes domain.ItemChanges) (*domain.Item, error) {
	set := map[string]any{"updated_at": squirrel.Expr("now()")}
	if changes.Title != nil {
		set["title"] = *changes.Title
	}
	if changes.Brand != nil {
		set["brand"] = nullIfEmpty(*changes.Brand)
	}
	if changes.ClearPrice {
		set["price"] = nil
	} else if changes.Price != nil {
		set["price"] = decimalToNumeric(changes.Price)
	}
	if changes.Currency != nil {
		set["currency"] = *changes.Currency
	}
	if changes.ImageURL != nil {
		set["image_url"] = nullIfEmpty(*changes.ImageURL)
	}
	if changes.LinkURL != nil {
		set["link_url"] = *changes.LinkURL
	}
	if changes.Category != nil {
		set["category"] = nullIfEmpty(*changes.Category)
	}
	if changes.IsActive != nil {
		set["is_active"] = *changes.IsActive
	}

	q := postgres.Builder.Update("clothing_items").
		SetMap(set).
		Where(squirrel.Eq{"id": itemID, "user_id": userID}).
		Suffix("RETURNING " + itemColumns)

	var row itemRow
	if err := postgres.GetBuilt(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}
	it := row.toDomain()
	return &it, nil
}

// Delete removes an item owned by userID and reports whether a row was
// removed. Deleting a missing or foreign item is not an error.
func (r *Repo) Delete(ctx context.Context, userID, itemID uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, itemID, userID)
	if err != nil {
		return false, postgres.MapError(err, "item", itemID)
	}
	return tag.RowsAffected() > 0, nil
}

// ToggleActive flips is_active of an item owned by userID.
func (r *Repo) ToggleActive(ctx context.Context, userID, itemID uuid.UUID) (*domain.Item, error) {
	var row itemRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, toggleActiveSQL, itemID, userID); err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}
	it := row.toDomain()
	return &it, nil
}

// Reorder assigns position i to orderedIDs[i] for every id owned by userID in
// a single statement. Ids that are unknown or owned by someone else are
// skipped. Returns the number of items moved; when none of the ids belong to
// the user nothing changes and domain.ErrNotFound is returned.
func (r *Repo) Reorder(ctx context.Context, userID uuid.UUID, orderedIDs []uuid.UUID) (int, error) {
	var moved int

	err := r.txm.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)

		if err := lockOwner(ctx, q, userID); err != nil {
			return err
		}

		tag, err := q.Exec(ctx, reorderSQL, userID, orderedIDs)
		if err != nil {
			return postgres.MapError(err, "items of user", userID)
		}
		moved = int(tag.RowsAffected())
		if moved == 0 {
			return fmt.Errorf("items of user %s: %w", userID, domain.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return moved, nil
}

// IncrementClicks adds one to the click counter of an item. The increment is
// done by the database so concurrent clicks are never lost. Returns
// domain.ErrNotFound if the item does not exist.
func (r *Repo) IncrementClicks(ctx context.Context, itemID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, incrementClicksSQL, itemID)
	if err != nil {
		return postgres.MapError(err, "item", itemID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// lockOwner takes a row lock on the owner, serializing position writes per user.
func lockOwner(ctx context.Context, q postgres.Querier, userID uuid.UUID) error {
	tag, err := q.Exec(ctx, lockOwnerSQL, userID)
	if err != nil {
		return postgres.MapError(err, "user", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
