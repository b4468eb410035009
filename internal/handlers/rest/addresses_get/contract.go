//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=addresses_get_test
package addresses_get

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
	ListAddresses(ctx context.Context, userID int64) ([]entities.Address, error)
}
