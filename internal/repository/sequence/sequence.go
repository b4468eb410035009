package sequence

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the tx-aware SQL executor shared by all repositories.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Increment bumps the named counter and returns the new value. The
// UPDATE..RETURNING is a single atomic read-modify-write; under the
// serializable tx manager two concurrent increments of the same name can
// never observe the same value.
func (r *Repository) Increment(ctx context.Context, name string) (int64, error) {
	query := `
		UPDATE sequences
		SET value = value + 1
		WHERE name = $1
		RETURNING value
	`

	var value int64
	err := r.querier.QueryRow(ctx, query, name).Scan(&value)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("unexpected sequence repository increment error: %w", err)
	}

	// Counter row does not exist yet: a missing record counts as value 0.
	// ON CONFLICT DO NOTHING keeps concurrent first allocations from
	// erroring; the retried UPDATE then serializes them.
	_, err = r.querier.Exec(ctx, `
		INSERT INTO sequences (name, value)
		VALUES ($1, 0)
		ON CONFLICT (name) DO NOTHING
	`, name)
	if err != nil {
		return 0, fmt.Errorf("unexpected sequence repository seed error: %w", err)
	}

	err = r.querier.QueryRow(ctx, query, name).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("unexpected sequence repository increment error: %w", err)
	}
	return value, nil
}

// Current returns the last issued value without changing it, 0 when the
// counter has never been used.
func (r *Repository) Current(ctx context.Context, name string) (int64, error) {
	query := `
		SELECT value FROM sequences WHERE name = $1
	`

	var value int64
	err := r.querier.QueryRow(ctx, query, name).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("unexpected sequence repository current error: %w", err)
	}
	return value, nil
}
