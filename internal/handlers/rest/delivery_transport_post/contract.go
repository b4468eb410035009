//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_transport_post_test
package delivery_transport_post

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
	TransportDelivery(ctx context.Context, deliveryID, riderID int64, pickupImage string, lat, lng float64) (*entities.Assignment, *entities.Delivery, error)
}
