//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_car_post_test
package rider_car_post

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
	CreateCar(ctx context.Context, riderCarModifyEntity entities.RiderCarModify) (*entities.RiderCar, error)
}
