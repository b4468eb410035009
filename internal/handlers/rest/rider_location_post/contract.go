//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_location_post_test
package rider_location_post

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
	Upsert(ctx context.Context, riderID int64, lat, lng float64) (bool, error)
}
