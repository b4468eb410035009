//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=address_delete_test
package address_delete

import (
	"context"

	"github.com/yodsaphonh/api-test-delivery/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteAddress(ctx context.Context, id, requesterID int64) error
}
