package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

// Builder is the squirrel statement builder configured for PostgreSQL
// placeholders.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Get scans a single row into dst. A missing row is reported as pgx.ErrNoRows
// so that MapError turns it into domain.ErrNotFound.
func Get(ctx context.Context, q Querier, dst any, sql string, args ...any) error {
	err := pgxscan.Get(ctx, q, dst, sql, args...)
	if pgxscan.NotFound(err) {
		return pgx.ErrNoRows
	}
	return err
}

// Select scans all rows into the slice pointed to by dst.
func Select(ctx context.Context, q Querier, dst any, sql string, args ...any) error {
	return pgxscan.Select(ctx, q, dst, sql, args...)
}

// GetBuilt renders b and scans a single row into dst.
func GetBuilt(ctx context.Context, q Querier, dst any, b squirrel.Sqlizer) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return err
	}
	return Get(ctx, q, dst, sql, args...)
}

// SelectBuilt renders b and scans all rows into dst.
func SelectBuilt(ctx context.Context, q Querier, dst any, b squirrel.Sqlizer) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return err
	}
	return Select(ctx, q, dst, sql, args...)
}
