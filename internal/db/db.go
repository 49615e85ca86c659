package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"reddy-infra/internal/config"
	"reddy-infra/internal/logger"
)

const pingTimeout = 5 * time.Second

// NewDatabase opens a postgres pool for cfg and pings it.
func NewDatabase(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	return newDatabaseWithDriver(ctx, "postgres", cfg.DSN())
}

func newDatabaseWithDriver(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	logger.FromCtx(ctx).Info("database connection established", zap.String("driver", driver))
	return conn, nil
}
