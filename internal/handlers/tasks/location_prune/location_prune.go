package location_prune

import (
	"context"
	"time"

	"github.com/yodsaphonh/api-test-delivery/pkg/logger"
)

type Service interface {
	PruneStale(ctx context.Context, ttl time.Duration) (int, error)
}

type LocationPrune struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	ttl      time.Duration
}

func NewLocationPrune(log logger.Logger, service Service, interval, ttl time.Duration) *LocationPrune {
	return &LocationPrune{
		log:      log,
		service:  service,
		interval: interval,
		ttl:      ttl,
	}
}

func (p *LocationPrune) TTL() time.Duration {
	return p.interval
}

func (p *LocationPrune) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	pruned, err := p.service.PruneStale(ctxWithTimeout, p.ttl)

	if pruned > 0 {
		p.log.With(
			logger.NewField("stale_locations", pruned),
		).Info("location prune")
	}

	return err
}

func (p *LocationPrune) Info() string {
	return "location prune"
}
