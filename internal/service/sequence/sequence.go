package sequence

import (
	"context"
	"fmt"
	"strings"
)

// Sequence names used across the system. Each is an independent counter.
const (
	UserSeq       = "user_seq"
	AddressSeq    = "address_seq"
	RiderSeq      = "rider_seq"
	DeliverySeq   = "delivery_seq"
	AssignmentSeq = "assi_seq"
)

// Allocator mints strictly increasing integer ids per named sequence. It is
// a deliberate single-counter design: all issuance for one name serializes
// on one row. Simple, correct, not horizontally scalable.
type Allocator struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Allocator {
	return &Allocator{
		repository: repository,
		txManager:  txManager,
	}
}

// Next returns the next value for the sequence. When the caller already runs
// inside a transaction the increment joins it, so an allocation commits or
// rolls back together with the record it identifies. Standalone calls get
// their own transaction.
func (a *Allocator) Next(ctx context.Context, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, ErrInvalidSequenceName
	}

	var value int64
	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		next, err := a.repository.Increment(ctx, name)
		if err != nil {
			return fmt.Errorf("increment sequence %s: %w", name, err)
		}
		value = next
		return nil
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}

// Current reports the high-water mark without allocating.
func (a *Allocator) Current(ctx context.Context, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, ErrInvalidSequenceName
	}

	value, err := a.repository.Current(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("current sequence %s: %w", name, err)
	}
	return value, nil
}
