//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=location_test
package location

import (
	"context"
	"time"

	"github.com/yodsaphonh/api-test-delivery/internal/entities"
)

type Repository interface {
	Get(ctx context.Context, riderID int64) (*entities.RiderLocation, error)
	Upsert(ctx context.Context, riderID int64, lat, lng float64) (*entities.RiderLocation, error)
	DeleteStale(ctx context.Context, olderThan time.Time) ([]int64, error)
}

type GeoIndex interface {
	Add(ctx context.Context, riderID int64, lat, lng float64) error
	Search(ctx context.Context, lat, lng, radiusKM float64, limit int) ([]entities.NearbyRider, error)
	Remove(ctx context.Context, riderIDs ...int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
