//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"github.com/yodsaphonh/api-test-delivery/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, id int64, userModifyEntity entities.UserModify) (*entities.User, error)
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	GetByPhone(ctx context.Context, phone string) (*entities.User, error)
	GetAll(ctx context.Context) ([]entities.User, error)
	Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error)
}

type Allocator interface {
	Next(ctx context.Context, name string) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
