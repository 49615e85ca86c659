package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"reddy-infra/internal/config"
	"reddy-infra/internal/db"
	"reddy-infra/internal/logger"
)

const redisKeyPrefix = "reddy-infra:"

// Open builds the repository selected by cfg.Storage.Driver. The returned
// close func releases any connection the driver holds.
func Open(ctx context.Context, cfg *config.Config) (Repository, func() error, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "storage"),
		zap.String("method", "Open"),
		zap.String("driver", cfg.Storage.Driver),
	)
	noop := func() error { return nil }

	switch cfg.Storage.Driver {
	case config.DriverFile:
		log.Debug("using file storage", zap.String("dir", cfg.Storage.Dir))
		return NewFile(cfg.Storage.Dir), noop, nil

	case config.DriverMemory:
		return NewMemory(), noop, nil

	case config.DriverPostgres:
		conn, err := db.NewDatabase(ctx, cfg.DB)
		if err != nil {
			log.Error("failed to open postgres", zap.Error(err))
			return nil, nil, err
		}
		return NewPostgres(conn), conn.Close, nil

	case config.DriverRedis:
		rdb, err := NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Error("failed to open redis", zap.Error(err))
			return nil, nil, err
		}
		return NewRedis(rdb, redisKeyPrefix, 0), rdb.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Storage.Driver)
	}
}
