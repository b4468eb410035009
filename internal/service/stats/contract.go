//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stats_test
package stats

import (
	"context"

	"github.com/yodsaphonh/api-test-delivery/internal/entities"
)

type Repository interface {
	IncrementFinished(ctx context.Context, riderID int64) (*entities.RiderStats, error)
	IncrementCancelled(ctx context.Context, riderID int64) (*entities.RiderStats, error)
	Get(ctx context.Context, riderID int64) (*entities.RiderStats, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
