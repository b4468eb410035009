package stats

import (
	"context"
	"fmt"

	"github.com/yodsaphonh/api-test-delivery/internal/entities"
)

type Stats struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Stats {
	return &Stats{
		repository: repository,
		txManager:  txManager,
	}
}

// ApplyStatusChange folds one lifecycle event into the per-rider counters.
// Events without a rider, or for non-terminal statuses, are a no-op: the
// counters only track completed outcomes.
func (s *Stats) ApplyStatusChange(ctx context.Context, event entities.DeliveryStatusChanged) (*entities.RiderStats, error) {
	if event.RiderID == nil || *event.RiderID <= 0 {
		return nil, nil
	}
	if !event.Status.Terminal() {
		return nil, nil
	}

	var statsEntity *entities.RiderStats
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		switch event.Status {
		case entities.DeliveryFinish:
			statsEntity, err = s.repository.IncrementFinished(ctx, *event.RiderID)
		case entities.DeliveryCancel:
			statsEntity, err = s.repository.IncrementCancelled(ctx, *event.RiderID)
		}
		if err != nil {
			return fmt.Errorf("increment rider stats: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return statsEntity, nil
}

func (s *Stats) GetStats(ctx context.Context, riderID int64) (*entities.RiderStats, error) {
	if riderID <= 0 {
		return nil, ErrInvalidRiderID
	}
	return s.repository.Get(ctx, riderID)
}
