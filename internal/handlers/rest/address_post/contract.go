//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=address_post_test
package address_post

import (
	"context"

	"github.com/yodsaphonh/api-test-delivery/internal/entities"
	"github.com/yodsaphonh/api-test-delivery/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateAddress(ctx context.Context, addressModifyEntity entities.AddressModify) (*entities.Address, error)
}
