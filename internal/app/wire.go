//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"github.com/yodsaphonh/api-test-delivery/internal/events"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/address_delete"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/address_post"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/addresses_get"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/deliveries_rider_get"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/deliveries_sender_get"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/delivery_accept_post"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/delivery_cancel_post"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/delivery_finish_post"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/delivery_post"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/delivery_transport_post"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/rider_car_get"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/rider_car_post"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/rider_location_post"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/rider_overview_get"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/riders_nearby_get"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/user_get"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/user_login_post"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/user_phone_get"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/user_post"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/user_put"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/users_get"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/tasks/location_prune"
	"github.com/yodsaphonh/api-test-delivery/internal/pkg/config"

	addressRepo "github.com/yodsaphonh/api-test-delivery/internal/repository/address"
	deliveryRepo "github.com/yodsaphonh/api-test-delivery/internal/repository/delivery"
	"github.com/yodsaphonh/api-test-delivery/internal/repository/geoindex"
	locationRepo "github.com/yodsaphonh/api-test-delivery/internal/repository/location"
	ridercarRepo "github.com/yodsaphonh/api-test-delivery/internal/repository/ridercar"
	sequenceRepo "github.com/yodsaphonh/api-test-delivery/internal/repository/sequence"
	statsRepo "github.com/yodsaphonh/api-test-delivery/internal/repository/stats"
	userRepo "github.com/yodsaphonh/api-test-delivery/internal/repository/user"
	addressService "github.com/yodsaphonh/api-test-delivery/internal/service/address"
	deliveryService "github.com/yodsaphonh/api-test-delivery/internal/service/delivery"
	locationService "github.com/yodsaphonh/api-test-delivery/internal/service/location"
	ridercarService "github.com/yodsaphonh/api-test-delivery/internal/service/ridercar"
	sequenceService "github.com/yodsaphonh/api-test-delivery/internal/service/sequence"
	statsService "github.com/yodsaphonh/api-test-delivery/internal/service/stats"
	userService "github.com/yodsaphonh/api-test-delivery/internal/service/user"

	"github.com/yodsaphonh/api-test-delivery/pkg/background"
	"github.com/yodsaphonh/api-test-delivery/pkg/logger"
	"github.com/yodsaphonh/api-test-delivery/pkg/querier"
	"github.com/yodsaphonh/api-test-delivery/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type (
	PruneInterval   time.Duration
	LocationTTL     time.Duration
	ThresholdMeters float64
)

type Application struct {
	ServiceUser       ServiceUser
	ServiceAddress    ServiceAddress
	ServiceRiderCar   ServiceRiderCar
	ServiceDelivery   ServiceDelivery
	ServiceLocation   ServiceLocation
	BackgroundWorkers *background.Worker
}

type ServiceUser interface {
	user_post.Service
	user_get.Service
	users_get.Service
	user_put.Service
	user_login_post.Service
	user_phone_get.Service
}

type ServiceAddress interface {
	address_post.Service
	addresses_get.Service
	address_delete.Service
}

type ServiceRiderCar interface {
	rider_car_post.Service
	rider_car_get.Service
}

type ServiceDelivery interface {
	delivery_post.Service
	delivery_accept_post.Service
	delivery_transport_post.Service
	delivery_finish_post.Service
	delivery_cancel_post.Service
	deliveries_sender_get.Service
	deliveries_rider_get.Service
	rider_overview_get.Service
}

type ServiceLocation interface {
	rider_location_post.Service
	riders_nearby_get.Service
}

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	saramaProducer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		providePruneInterval,
		provideLocationTTL,
		provideThresholdMeters,

		provideSequenceRepository,
		provideUserRepository,
		provideAddressRepository,
		provideRiderCarRepository,
		provideDeliveryRepository,
		provideLocationRepository,
		provideGeoIndex,

		provideAllocator,
		provideServiceUser,
		provideServiceAddress,
		provideServiceRiderCar,
		provideServiceLocation,
		provideEventsProducer,
		provideServiceDelivery,

		provideLocationPruneTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceAddress), new(*addressService.Address)),
		wire.Bind(new(ServiceRiderCar), new(*ridercarService.RiderCar)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceLocation), new(*locationService.Location)),

		wire.Bind(new(sequenceService.Repository), new(*sequenceRepo.Repository)),
		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(addressService.Repository), new(*addressRepo.Repository)),
		wire.Bind(new(ridercarService.Repository), new(*ridercarRepo.Repository)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(locationService.Repository), new(*locationRepo.Repository)),
		wire.Bind(new(locationService.GeoIndex), new(*geoindex.Index)),

		wire.Bind(new(userService.Allocator), new(*sequenceService.Allocator)),
		wire.Bind(new(addressService.Allocator), new(*sequenceService.Allocator)),
		wire.Bind(new(ridercarService.Allocator), new(*sequenceService.Allocator)),
		wire.Bind(new(deliveryService.Allocator), new(*sequenceService.Allocator)),

		wire.Bind(new(addressService.UserService), new(*userService.User)),
		wire.Bind(new(ridercarService.UserService), new(*userService.User)),
		wire.Bind(new(deliveryService.UserService), new(*userService.User)),
		wire.Bind(new(deliveryService.AddressService), new(*addressService.Address)),
		wire.Bind(new(deliveryService.LocationService), new(*locationService.Location)),
		wire.Bind(new(deliveryService.Publisher), new(*events.Producer)),

		wire.Bind(new(sequenceService.TxManager), new(*tx.Manager)),
		wire.Bind(new(userService.TxManager), new(*tx.Manager)),
		wire.Bind(new(addressService.TxManager), new(*tx.Manager)),
		wire.Bind(new(ridercarService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(locationService.TxManager), new(*tx.Manager)),

		wire.Bind(new(location_prune.Service), new(*locationService.Location)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	StatsService *statsService.Stats
}

// InitializeKafkaWorkerApp wires the Kafka worker (cmd/worker-delivery-status-changed).
func InitializeKafkaWorkerApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideStatsRepository,
		provideServiceStats,

		wire.Bind(new(statsService.Repository), new(*statsRepo.Repository)),
		wire.Bind(new(statsService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideSequenceRepository(querier *querier.Querier) *sequenceRepo.Repository {
	return sequenceRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideAddressRepository(querier *querier.Querier) *addressRepo.Repository {
	return addressRepo.New(querier)
}

func provideRiderCarRepository(querier *querier.Querier) *ridercarRepo.Repository {
	return ridercarRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideLocationRepository(querier *querier.Querier) *locationRepo.Repository {
	return locationRepo.New(querier)
}

func provideStatsRepository(querier *querier.Querier) *statsRepo.Repository {
	return statsRepo.New(querier)
}

func provideGeoIndex(redisClient *redis.Client) *geoindex.Index {
	return geoindex.New(redisClient)
}

func provideAllocator(
	repository sequenceService.Repository,
	txManager sequenceService.TxManager,
) *sequenceService.Allocator {
	return sequenceService.New(repository, txManager)
}

func provideServiceUser(
	repository userService.Repository,
	allocator userService.Allocator,
	txManager userService.TxManager,
) *userService.User {
	return userService.New(repository, allocator, txManager)
}

func provideServiceAddress(
	repository addressService.Repository,
	users addressService.UserService,
	allocator addressService.Allocator,
	txManager addressService.TxManager,
) *addressService.Address {
	return addressService.New(repository, users, allocator, txManager)
}

func provideServiceRiderCar(
	repository ridercarService.Repository,
	users ridercarService.UserService,
	allocator ridercarService.Allocator,
	txManager ridercarService.TxManager,
) *ridercarService.RiderCar {
	return ridercarService.New(repository, users, allocator, txManager)
}

func provideServiceLocation(
	repository locationService.Repository,
	geoIndex locationService.GeoIndex,
	txManager locationService.TxManager,
	log logger.Logger,
	threshold ThresholdMeters,
) *locationService.Location {
	return locationService.New(repository, geoIndex, txManager, log, float64(threshold))
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	users deliveryService.UserService,
	addresses deliveryService.AddressService,
	locations deliveryService.LocationService,
	allocator deliveryService.Allocator,
	publisher deliveryService.Publisher,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(
		repository,
		users,
		addresses,
		locations,
		allocator,
		publisher,
		txManager,
	)
}

func provideServiceStats(
	repository statsService.Repository,
	txManager statsService.TxManager,
) *statsService.Stats {
	return statsService.New(repository, txManager)
}

func provideEventsProducer(
	saramaProducer sarama.SyncProducer,
	log logger.Logger,
	cfg *config.Config,
) *events.Producer {
	return events.New(saramaProducer, log, cfg.Kafka.Topic)
}

func providePruneInterval(cfg *config.Config) PruneInterval {
	return PruneInterval(cfg.Tasks.LocationPruneInterval)
}

func provideLocationTTL(cfg *config.Config) LocationTTL {
	return LocationTTL(cfg.Tasks.LocationTTL)
}

func provideThresholdMeters(cfg *config.Config) ThresholdMeters {
	return ThresholdMeters(cfg.Location.DedupThresholdMeters)
}

func provideLocationPruneTask(
	log logger.Logger,
	locations location_prune.Service,
	interval PruneInterval,
	ttl LocationTTL,
) *location_prune.LocationPrune {
	return location_prune.NewLocationPrune(log, locations, time.Duration(interval), time.Duration(ttl))
}

func provideTaskList(
	locationPruneTask *location_prune.LocationPrune,
) []background.Task {
	return []background.Task{
		locationPruneTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
