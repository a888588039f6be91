package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/dripdrop-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email and username.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserNamed(t, pool, "user_"+uniqueSuffix())
}

// SeedUserNamed creates a user with the given (already lowercased) username.
func SeedUserNamed(t *testing.T, pool *pgxpool.Pool, username string) domain.User {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:          uuid.New(),
		Email:       username + "-" + uniqueSuffix() + "@example.com",
		Username:    username,
		DisplayName: "Test " + username,
		Theme:       domain.DefaultTheme,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, display_name, theme, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Username, user.DisplayName, string(user.Theme), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedItem inserts an item at the given position directly, bypassing the
// position allocator.
func SeedItem(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string, position int, active bool) domain.Item {
	t.Helper()
	ctx := context.Background()

	item := domain.Item{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    title,
		Currency: domain.DefaultCurrency,
		LinkURL:  "https://shop.example/" + uniqueSuffix(),
		Position: position,
		IsActive: active,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO clothing_items (id, user_id, title, currency, link_url, position, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		item.ID, item.UserID, item.Title, item.Currency, item.LinkURL, item.Position, item.IsActive,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert: %v", err)
	}

	return item
}
