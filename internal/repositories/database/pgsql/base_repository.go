package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/money_records_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// exec runs a statement and translates driver errors.
func (r *BaseRepository) exec(ctx context.Context, op string, sql string, args ...any) (pgconn.CommandTag, error) {
	tag, err := r.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return tag, translateError(op, err)
	}
	return tag, nil
}

// queryAll runs a select and collects every row into T by column name.
func queryAll[T any](ctx context.Context, r *BaseRepository, op string, sql string, args ...any) ([]T, error) {
	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError(op, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, translateError(op, err)
	}
	return items, nil
}

// queryOne runs a select expected to match a single row.
// It returns apperrors.ErrNotFound when nothing matches.
func queryOne[T any](ctx context.Context, r *BaseRepository, op string, sql string, args ...any) (*T, error) {
	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError(op, err)
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, translateError(op, err)
	}
	return &item, nil
}

// translateError maps driver errors onto the apperrors sentinels.
func translateError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", op, apperrors.ErrDuplicate)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s references a record that does not exist", apperrors.ErrValidation, op)
		}
	}

	return fmt.Errorf("%w: %s: %v", apperrors.ErrStoreUnavailable, op, err)
}
