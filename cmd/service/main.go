package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "github.com/yodsaphonh/api-test-delivery/internal/app"
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
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/healthcheck_head"
	"github.com/yodsaphonh/api-test-delivery/internal/handlers/rest/ping_get"
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
	"github.com/yodsaphonh/api-test-delivery/internal/pkg/config"
	"github.com/yodsaphonh/api-test-delivery/internal/pkg/dotenv"
	"github.com/yodsaphonh/api-test-delivery/internal/pkg/kafka"
	metrics_system "github.com/yodsaphonh/api-test-delivery/internal/pkg/metrics"
	"github.com/yodsaphonh/api-test-delivery/internal/pkg/middlewares/graceful_shutdown"
	"github.com/yodsaphonh/api-test-delivery/internal/pkg/middlewares/metrics"
	"github.com/yodsaphonh/api-test-delivery/internal/pkg/middlewares/rate_limiter"
	"github.com/yodsaphonh/api-test-delivery/internal/pkg/middlewares/timeout"
	"github.com/yodsaphonh/api-test-delivery/internal/pkg/postgres"
	"github.com/yodsaphonh/api-test-delivery/internal/pkg/redisconn"
	"github.com/yodsaphonh/api-test-delivery/pkg/logger"
	"github.com/yodsaphonh/api-test-delivery/pkg/logger/zap_adapter"
	"github.com/yodsaphonh/api-test-delivery/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting delivery-service application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // deliberate context.Background() descendants as part of graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	redisClient, err := redisconn.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		err := redisClient.Close()
		if err != nil {
			runLog.Error("failed to close Redis connection",
				logger.NewField("error", err),
			)
		}
	}()

	saramaProducer, err := kafka.NewSyncProducer(cfg.Kafka.Sarama.Version, strings.Split(cfg.Kafka.Brokers, ","))
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := saramaProducer.Close()
		if err != nil {
			runLog.Error("failed to close Kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, saramaProducer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx backs BaseContext and must survive SIGTERM. It is cancelled
	// only after server.Shutdown() so in-flight requests can finish.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled, so the case never fires
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must be independent of ctx, which is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/user", user_post.New(log, app.ServiceUser)).Methods("POST")
	router.Handle("/user", user_put.New(log, app.ServiceUser)).Methods("PUT")
	router.Handle("/user/login", user_login_post.New(log, app.ServiceUser)).Methods("POST")
	router.Handle("/user/phone/{phone}", user_phone_get.New(log, app.ServiceUser)).Methods("GET")
	router.Handle("/user/{id}", user_get.New(log, app.ServiceUser)).Methods("GET")
	router.Handle("/users", users_get.New(log, app.ServiceUser)).Methods("GET")

	router.Handle("/address", address_post.New(log, app.ServiceAddress)).Methods("POST")
	router.Handle("/addresses/{userID}", addresses_get.New(log, app.ServiceAddress)).Methods("GET")
	router.Handle("/address/{id}", address_delete.New(log, app.ServiceAddress)).Methods("DELETE")

	router.Handle("/rider/car", rider_car_post.New(log, app.ServiceRiderCar)).Methods("POST")
	router.Handle("/rider/car/{userID}", rider_car_get.New(log, app.ServiceRiderCar)).Methods("GET")

	router.Handle("/delivery", delivery_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/delivery/accept", delivery_accept_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/delivery/transport", delivery_transport_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/delivery/finish", delivery_finish_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/delivery/cancel", delivery_cancel_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/deliveries/sender/{userID}", deliveries_sender_get.New(log, app.ServiceDelivery)).Methods("GET")
	router.Handle("/deliveries/rider/{riderID}", deliveries_rider_get.New(log, app.ServiceDelivery)).Methods("GET")

	router.Handle("/rider/location", rider_location_post.New(log, app.ServiceLocation)).Methods("POST")
	router.Handle("/rider/location/nearby", riders_nearby_get.New(log, app.ServiceLocation)).Methods("GET")
	router.Handle("/rider/overview/{riderID}", rider_overview_get.New(log, app.ServiceDelivery)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
