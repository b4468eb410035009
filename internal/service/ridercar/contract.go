//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ridercar_test
package ridercar

import (
	"context"

	"github.com/yodsaphonh/api-test-delivery/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, id int64, riderCarModifyEntity entities.RiderCarModify) (*entities.RiderCar, error)
	GetByUser(ctx context.Context, userID int64) (*entities.RiderCar, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (*entities.User, error)
}

type Allocator interface {
	Next(ctx context.Context, name string) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
