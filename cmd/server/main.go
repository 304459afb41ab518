package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/diewo77/go-interventions/httpx"
	"github.com/diewo77/go-interventions/i18n"
	"github.com/diewo77/go-interventions/internal/app"
	"github.com/diewo77/go-interventions/internal/config"
	"github.com/diewo77/go-interventions/internal/db"
	"github.com/diewo77/go-interventions/internal/kvstore"
	"github.com/diewo77/go-interventions/internal/logging"
	"github.com/diewo77/go-interventions/internal/metrics"
	"github.com/diewo77/go-interventions/internal/syncer"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, "interventions")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open local store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer closeStore()

	reg := metrics.NewRegistry()
	remote := app.RESTRemote(logger.Named("remote"))
	if cfg.RemoteDriver == config.RemotePostgres {
		remote = app.PostgresRemote(ctx, logger.Named("remote"))
	}

	state := app.New(store,
		app.WithLogger(logger),
		app.WithLanguage(i18n.DetectLanguage(cfg.Lang)),
		app.WithRemote(remote),
		app.WithRegistry(reg),
		app.WithSyncTimeout(cfg.SyncTimeout),
		app.WithDefaultCredentials(syncer.Credentials{URL: cfg.RemoteURL, Key: cfg.RemoteKey}),
	)
	// Requests are served while loading; mutations answer 503 until then.
	go state.Load(ctx)

	httpMetrics := metrics.NewHTTPMetrics(reg)
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      withLogging(logger, httpMetrics.Middleware(NewApp(state, reg))),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port), zap.Bool("dev", cfg.Dev()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during shutdown", zap.Error(err))
	}
	state.Flush()
	logger.Info("server stopped gracefully")
}

// openStore connects the device-local store selected by STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (kvstore.Store, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverRedis:
		s, err := kvstore.OpenRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case config.DriverSQLite, config.DriverPostgres:
		conn, err := db.Open(ctx, cfg.StoreDriver, cfg.StoreDSN, logger.Named("db"))
		if err != nil {
			return nil, nil, err
		}
		s, err := kvstore.NewGormStore(conn)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if sqlDB, err := conn.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return s, closeDB, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

// withLogging adds request logging middleware.
func withLogging(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := httpx.NewStatusRecorder(w)
		next.ServeHTTP(rec, r)
		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.Status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
