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
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "fooddelivery/internal/app"
	"fooddelivery/internal/handlers/rest/courier_get"
	"fooddelivery/internal/handlers/rest/courier_post"
	"fooddelivery/internal/handlers/rest/courier_put"
	"fooddelivery/internal/handlers/rest/couriers_get"
	"fooddelivery/internal/handlers/rest/deliveryorder_accept_post"
	"fooddelivery/internal/handlers/rest/deliveryorder_complete_post"
	"fooddelivery/internal/handlers/rest/deliveryorder_create_post"
	"fooddelivery/internal/handlers/rest/deliveryorder_pickup_post"
	"fooddelivery/internal/handlers/rest/deliveryorder_reject_post"
	"fooddelivery/internal/handlers/rest/deliveryorder_transit_post"
	"fooddelivery/internal/handlers/rest/deliveryorders_available_get"
	"fooddelivery/internal/handlers/rest/healthcheck_head"
	"fooddelivery/internal/handlers/rest/ping_get"
	"fooddelivery/internal/handlers/ws"
	"fooddelivery/internal/pkg/config"
	"fooddelivery/internal/pkg/dotenv"
	"fooddelivery/internal/pkg/httpclient"
	metrics_system "fooddelivery/internal/pkg/metrics"
	"fooddelivery/internal/pkg/middlewares/graceful_shutdown"
	"fooddelivery/internal/pkg/middlewares/metrics"
	"fooddelivery/internal/pkg/middlewares/rate_limiter"
	"fooddelivery/internal/pkg/middlewares/timeout"
	"fooddelivery/internal/pkg/postgres"
	"fooddelivery/migrations"
	"fooddelivery/pkg/logger"
	"fooddelivery/pkg/logger/zap_adapter"
	"fooddelivery/pkg/token_bucket"
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
	if err := cfg.ValidateCleanup(); err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // inheriting from context.Background() is part of graceful shutdown
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

	if err := migrations.UpDelivery(ctx, postgres.Dsn(&cfg.Database)); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	httpClient := httpclient.New(cfg.Services.RequestTimeout)

	businessApp, err := application.InitializeDeliveryApp(ctx, log, pool, pgxv5.DefaultCtxGetter, httpClient, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx feeds BaseContext and must survive SIGTERM. It is cancelled
	// only after server.Shutdown() so in-flight requests can finish.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	go businessApp.Hub.Run(ongoingCtx)

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

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.DeliveryApp, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/api/couriers/{id}", courier_get.New(log, app.ServiceCourier)).Methods("GET")
	router.Handle("/api/couriers", couriers_get.New(log, app.ServiceCourier)).Methods("GET")
	router.Handle("/api/couriers", courier_post.New(log, app.ServiceCourier)).Methods("POST")
	router.Handle("/api/couriers", courier_put.New(log, app.ServiceCourier)).Methods("PUT")

	router.Handle("/api/delivery/orders/create", deliveryorder_create_post.New(log, app.ServiceDeliveryOrder)).Methods("POST")
	router.Handle("/api/delivery/orders/available", deliveryorders_available_get.New(log, app.ServiceDeliveryOrder)).Methods("GET")
	router.Handle("/api/delivery/orders/{id}/accept", deliveryorder_accept_post.New(log, app.ServiceDeliveryOrder)).Methods("POST")
	router.Handle("/api/delivery/orders/{id}/pickup", deliveryorder_pickup_post.New(log, app.ServiceDeliveryOrder)).Methods("POST")
	router.Handle("/api/delivery/orders/{id}/transit", deliveryorder_transit_post.New(log, app.ServiceDeliveryOrder)).Methods("POST")
	router.Handle("/api/delivery/orders/{id}/complete", deliveryorder_complete_post.New(log, app.ServiceDeliveryOrder)).Methods("POST")
	router.Handle("/api/delivery/orders/{id}/reject", deliveryorder_reject_post.New(log, app.ServiceDeliveryOrder)).Methods("POST")

	router.Handle("/ws/couriers", ws.NewCourierFeed(log, app.Hub)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
