package delivery_status_changed

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
	ApplyStatusChange(ctx context.Context, event entities.DeliveryStatusChanged) (*entities.RiderStats, error)
}
