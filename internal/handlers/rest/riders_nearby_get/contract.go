//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=riders_nearby_get_test
package riders_nearby_get

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
	NearbyRiders(ctx context.Context, lat, lng, radiusKM float64, limit int) ([]entities.NearbyRider, error)
}
