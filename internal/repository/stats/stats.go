package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yodsaphonh/api-test-delivery/internal/entities"
	"github.com/yodsaphonh/api-test-delivery/internal/service/stats"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) IncrementFinished(ctx context.Context, riderID int64) (*entities.RiderStats, error) {
	return r.increment(ctx, riderID, "finished")
}

func (r *Repository) IncrementCancelled(ctx context.Context, riderID int64) (*entities.RiderStats, error) {
	return r.increment(ctx, riderID, "cancelled")
}

func (r *Repository) increment(ctx context.Context, riderID int64, column string) (*entities.RiderStats, error) {
	// column comes from the two exported wrappers only, never from input.
	query := fmt.Sprintf(`
		INSERT INTO rider_stats (rider_id, %[1]s, updated_at)
		VALUES ($1, 1, NOW())
		ON CONFLICT (rider_id) DO UPDATE
		SET %[1]s = rider_stats.%[1]s + 1,
		    updated_at = NOW()
		RETURNING rider_id, finished, cancelled, updated_at
	`, column)

	var statsModel RiderStatsDB
	err := r.querier.QueryRow(ctx, query, riderID).Scan(
		&statsModel.RiderID,
		&statsModel.Finished,
		&statsModel.Cancelled,
		&statsModel.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected stats repository increment error: %w", err)
	}

	return ToDomain(&statsModel), nil
}

func (r *Repository) Get(ctx context.Context, riderID int64) (*entities.RiderStats, error) {
	query := `
		SELECT rider_id, finished, cancelled, updated_at
		FROM rider_stats
		WHERE rider_id = $1
	`

	var statsModel RiderStatsDB
	err := r.querier.QueryRow(ctx, query, riderID).Scan(
		&statsModel.RiderID,
		&statsModel.Finished,
		&statsModel.Cancelled,
		&statsModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, stats.ErrStatsNotFound
		}
		return nil, fmt.Errorf("unexpected stats repository get error: %w", err)
	}

	return ToDomain(&statsModel), nil
}
