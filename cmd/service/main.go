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
	application "marketplace/internal/app"
	"marketplace/internal/entities"
	"marketplace/internal/gateway/kafka/orderevents"
	"marketplace/internal/handlers/rest/couriers_get"
	"marketplace/internal/handlers/rest/deliveries_get"
	"marketplace/internal/handlers/rest/delivery_complete_post"
	"marketplace/internal/handlers/rest/healthcheck_head"
	"marketplace/internal/handlers/rest/order_get"
	"marketplace/internal/handlers/rest/order_payment_proof_post"
	"marketplace/internal/handlers/rest/order_post"
	"marketplace/internal/handlers/rest/order_status_put"
	"marketplace/internal/handlers/rest/orders_get"
	"marketplace/internal/handlers/rest/ping_get"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/dotenv"
	"marketplace/internal/pkg/kafka"
	metrics_system "marketplace/internal/pkg/metrics"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/pkg/middlewares/graceful_shutdown"
	"marketplace/internal/pkg/middlewares/metrics"
	"marketplace/internal/pkg/middlewares/rate_limiter"
	"marketplace/internal/pkg/middlewares/timeout"
	"marketplace/internal/pkg/postgres"
	orderService "marketplace/internal/service/order"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
	"marketplace/pkg/token_bucket"
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

	mainLog.Info("starting marketplace order service")

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

	// Kafka is optional: without it status events are simply not published.
	var events orderService.EventPublisher
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka, strings.Split(cfg.Kafka.Brokers, ","))
		if err != nil {
			return fmt.Errorf("kafka producer: %w", err)
		}
		defer func() {
			err := producer.Close()
			if err != nil {
				runLog.Error("failed to close kafka producer",
					logger.NewField("error", err),
				)
			}
		}()

		events = orderevents.New(producer, cfg.Kafka.Topic)
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, events, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx backs BaseContext and must survive SIGTERM; it is cancelled
	// only after server.Shutdown() so in-flight requests can finish.
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
	case err := <-pprofServerErr: // nil channel when pprof is disabled, never selected
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must not inherit ctx, which is already cancelled here.
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

	identified := auth.Middleware()
	adminOnly := auth.RequireRole(entities.RoleAdmin)
	customerOnly := auth.RequireRole(entities.RoleCustomer)
	courierOnly := auth.RequireRole(entities.RoleCourier)

	router.Handle("/orders", identified(customerOnly(order_post.New(log, app.ServiceOrder)))).Methods("POST")
	router.Handle("/orders", identified(orders_get.New(log, app.ServiceOrder))).Methods("GET")
	router.Handle("/orders/{id}", identified(order_get.New(log, app.ServiceOrder))).Methods("GET")
	router.Handle("/orders/{id}/status", identified(adminOnly(order_status_put.New(log, app.ServiceOrder)))).Methods("PUT")
	router.Handle("/orders/{id}/payment-proof", identified(customerOnly(order_payment_proof_post.New(log, app.ServiceOrder)))).Methods("POST")

	router.Handle("/deliveries", identified(courierOnly(deliveries_get.New(log, app.ServiceOrder)))).Methods("GET")
	router.Handle("/deliveries/{id}/complete", identified(courierOnly(delivery_complete_post.New(log, app.ServiceOrder)))).Methods("POST")

	router.Handle("/couriers", identified(adminOnly(couriers_get.New(log, app.ServiceCourier)))).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
