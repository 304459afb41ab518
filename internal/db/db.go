// Package db opens the SQL databases behind the local store and the direct remote.
package db

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	openAttempts = 5
	retryDelay   = 2 * time.Second
)

// Open connects to a "sqlite" or "postgres" database. Postgres connections
// are retried a few times to let the server start.
func Open(ctx context.Context, driver, dsn string, logger *zap.Logger) (*gorm.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(NormalizeDSN(dsn))
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	cfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
	var conn *gorm.DB
	var err error
	for i := range openAttempts {
		conn, err = gorm.Open(dialector, cfg)
		if err == nil {
			return conn, nil
		}
		logger.Warn("database connection failed",
			zap.String("driver", driver),
			zap.Int("attempt", i+1),
			zap.Error(err),
		)
		if i == openAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}
	return nil, fmt.Errorf("database connection failed: %w", err)
}
