package location

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yodsaphonh/api-test-delivery/internal/entities"
	"github.com/yodsaphonh/api-test-delivery/pkg/geo"
	"github.com/yodsaphonh/api-test-delivery/pkg/logger"
	"github.com/yodsaphonh/api-test-delivery/pkg/tx"
)

// DefaultDedupThresholdMeters is the minimum movement that counts as a new
// position. Consumer GPS jitters within a few meters while standing still.
const DefaultDedupThresholdMeters = 3.0

type Location struct {
	repository      Repository
	geoIndex        GeoIndex
	txManager       TxManager
	logger          logger.Logger
	thresholdMeters float64
}

func New(
	repository Repository,
	geoIndex GeoIndex,
	txManager TxManager,
	log logger.Logger,
	thresholdMeters float64,
) *Location {
	if thresholdMeters <= 0 {
		thresholdMeters = DefaultDedupThresholdMeters
	}
	return &Location{
		repository:      repository,
		geoIndex:        geoIndex,
		txManager:       txManager,
		logger:          log,
		thresholdMeters: thresholdMeters,
	}
}

// Upsert stores the rider's position unless it moved less than the dedup
// threshold from the previous fix. It reports whether a write happened.
func (s *Location) Upsert(ctx context.Context, riderID int64, lat, lng float64) (bool, error) {
	if riderID <= 0 {
		return false, ErrInvalidRiderID
	}
	point := geo.Point{Lat: lat, Lng: lng}
	if !point.Valid() {
		return false, ErrInvalidCoordinates
	}

	updated := false
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.Get(ctx, riderID)
		if err != nil && !errors.Is(err, ErrLocationNotFound) {
			return fmt.Errorf("get rider location: %w", err)
		}

		if current != nil {
			moved := geo.DistanceMeters(geo.Point{Lat: current.Lat, Lng: current.Lng}, point)
			if moved < s.thresholdMeters {
				return nil
			}
		}

		if _, err := s.repository.Upsert(ctx, riderID, lat, lng); err != nil {
			return fmt.Errorf("upsert rider location: %w", err)
		}
		updated = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if updated {
		// When a delivery transition ran Upsert inside its transaction the
		// refresh waits for the commit, so the index never reflects an
		// aborted transition.
		tx.OnCommit(ctx, func() {
			s.refreshIndex(ctx, riderID, lat, lng)
		})
	}

	return updated, nil
}

func (s *Location) Get(ctx context.Context, riderID int64) (*entities.RiderLocation, error) {
	if riderID <= 0 {
		return nil, ErrInvalidRiderID
	}
	return s.repository.Get(ctx, riderID)
}

// NearbyRiders searches the geo index around a point. The index lags the
// table by at most one failed refresh, which is acceptable for dispatch
// tooling.
func (s *Location) NearbyRiders(ctx context.Context, lat, lng, radiusKM float64, limit int) ([]entities.NearbyRider, error) {
	if !(geo.Point{Lat: lat, Lng: lng}).Valid() {
		return nil, ErrInvalidCoordinates
	}
	if radiusKM <= 0 {
		radiusKM = 5
	}
	if limit <= 0 {
		limit = 20
	}

	riders, err := s.geoIndex.Search(ctx, lat, lng, radiusKM, limit)
	if err != nil {
		return nil, fmt.Errorf("search geo index: %w", err)
	}
	return riders, nil
}

// PruneStale drops positions not refreshed within the TTL and evicts them
// from the index.
func (s *Location) PruneStale(ctx context.Context, ttl time.Duration) (int, error) {
	olderThan := time.Now().Add(-ttl)

	riderIDs, err := s.repository.DeleteStale(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("delete stale locations: %w", err)
	}
	if len(riderIDs) == 0 {
		return 0, nil
	}

	if err := s.geoIndex.Remove(ctx, riderIDs...); err != nil {
		s.logger.Warn("removing stale riders from geo index",
			logger.NewField("error", err),
			logger.NewField("riders", len(riderIDs)),
		)
	}

	return len(riderIDs), nil
}

// refreshIndex is best-effort: the table is the source of truth, the index
// only serves proximity reads.
func (s *Location) refreshIndex(ctx context.Context, riderID int64, lat, lng float64) {
	if err := s.geoIndex.Add(ctx, riderID, lat, lng); err != nil {
		s.logger.Warn("refreshing rider geo index",
			logger.NewField("error", err),
			logger.NewField("rider_id", riderID),
		)
	}
}
