//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=address_test
package address

import (
	"context"

	"github.com/yodsaphonh/api-test-delivery/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, id int64, addressModifyEntity entities.AddressModify) (*entities.Address, error)
	GetByID(ctx context.Context, id int64) (*entities.Address, error)
	ListByUser(ctx context.Context, userID int64) ([]entities.Address, error)
	Delete(ctx context.Context, id int64) error
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
