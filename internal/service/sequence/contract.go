//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sequence_test
package sequence

import "context"

type Repository interface {
	Increment(ctx context.Context, name string) (int64, error)
	Current(ctx context.Context, name string) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
