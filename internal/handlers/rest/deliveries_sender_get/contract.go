//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveries_sender_get_test
package deliveries_sender_get

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
	ListBySender(ctx context.Context, userID int64) ([]entities.Delivery, error)
}
