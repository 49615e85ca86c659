package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"reddy-infra/internal/logger"
)

// redisCmdable is the slice of the go-redis client the driver uses.
type redisCmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisRepository struct {
	rdb    redisCmdable
	prefix string
	ttl    time.Duration
}

// NewRedis stores each snapshot as one string value under prefix+key.
// A zero ttl keeps values until they are deleted.
func NewRedis(rdb redisCmdable, prefix string, ttl time.Duration) Repository {
	return &redisRepository{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (r *redisRepository) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	data, err := r.rdb.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load snapshot",
			zap.String("layer", "storage"),
			zap.String("method", "Load"),
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrFailedLoad, err)
	}
	return data, nil
}

func (r *redisRepository) Save(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := r.rdb.Set(ctx, r.prefix+key, data, r.ttl).Err(); err != nil {
		logger.FromCtx(ctx).Error("failed to save snapshot",
			zap.String("layer", "storage"),
			zap.String("method", "Save"),
			zap.String("key", key),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrFailedSave, err)
	}
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := r.rdb.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedDelete, err)
	}
	return nil
}

// NewRedisClient connects and pings the server before returning.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}
