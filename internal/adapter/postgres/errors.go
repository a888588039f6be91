package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/dripdrop-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors and prefixes them with
// the entity and its identifier.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity string, id fmt.Stringer) error {
	return mapError(err, entity, id.String())
}

// MapErrorKey is MapError for lookups by a natural key such as a username.
func MapErrorKey(err error, entity, key string) error {
	return mapError(err, entity, key)
}

// ConstraintName returns the violated constraint of a PgError, or "".
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func mapError(err error, entity string, id string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		case "57P01", "57P03": // admin_shutdown, cannot_connect_now
			return fmt.Errorf("%s %s: %w: %w", entity, id, domain.ErrUnavailable, err)
		}
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// Connection-level failures: the server was never reached or the
	// statement was never sent.
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.SafeToRetry(err) {
		return fmt.Errorf("%s %s: %w: %w", entity, id, domain.ErrUnavailable, err)
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
