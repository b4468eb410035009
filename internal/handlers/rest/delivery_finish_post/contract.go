//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_finish_post_test
package delivery_finish_post

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
	FinishDelivery(ctx context.Context, deliveryID int64, deliveryImage string, riderID int64) (*entities.Assignment, *entities.Delivery, error)
}
