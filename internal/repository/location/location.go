package location

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/yodsaphonh/api-test-delivery/internal/entities"
	"github.com/yodsaphonh/api-test-delivery/internal/repository"
	"github.com/yodsaphonh/api-test-delivery/internal/service/location"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Get(ctx context.Context, riderID int64) (*entities.RiderLocation, error) {
	query := `
		SELECT rider_id, lat, lng, updated_at
		FROM rider_locations
		WHERE rider_id = $1
	`

	var locationModel RiderLocationDB
	err := r.querier.QueryRow(ctx, query, riderID).Scan(
		&locationModel.RiderID,
		&locationModel.Lat,
		&locationModel.Lng,
		&locationModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, location.ErrLocationNotFound
		}
		return nil, fmt.Errorf("unexpected location repository get error: %w", err)
	}

	return ToDomain(&locationModel), nil
}

func (r *Repository) Upsert(ctx context.Context, riderID int64, lat, lng float64) (*entities.RiderLocation, error) {
	query := `
		INSERT INTO rider_locations (rider_id, lat, lng, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (rider_id) DO UPDATE
		SET lat = EXCLUDED.lat,
		    lng = EXCLUDED.lng,
		    updated_at = NOW()
		RETURNING rider_id, lat, lng, updated_at
	`

	var locationModel RiderLocationDB
	err := r.querier.QueryRow(ctx, query, riderID, lat, lng).Scan(
		&locationModel.RiderID,
		&locationModel.Lat,
		&locationModel.Lng,
		&locationModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, location.ErrRiderNotFound
		}
		return nil, fmt.Errorf("unexpected location repository upsert error: %w", err)
	}

	return ToDomain(&locationModel), nil
}

func (r *Repository) DeleteStale(ctx context.Context, olderThan time.Time) ([]int64, error) {
	query := `
		DELETE FROM rider_locations
		WHERE updated_at < $1
		RETURNING rider_id
	`

	rows, err := r.querier.Query(ctx, query, olderThan)
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository delete stale error: %w", err)
	}
	defer rows.Close()

	var riderIDs []int64
	for rows.Next() {
		var riderID int64
		if err := rows.Scan(&riderID); err != nil {
			return nil, fmt.Errorf("unexpected location repository scan error: %w", err)
		}
		riderIDs = append(riderIDs, riderID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected location repository rows error: %w", err)
	}

	return riderIDs, nil
}
