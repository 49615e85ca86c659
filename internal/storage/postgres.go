package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"reddy-infra/internal/logger"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgres keeps snapshots in the app_snapshots table.
func NewPostgres(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	query := `SELECT payload FROM app_snapshots WHERE key = $1`

	var payload []byte
	err := r.db.QueryRowContext(ctx, query, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load snapshot",
			zap.String("layer", "repository"),
			zap.String("method", "Load"),
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrFailedLoad, err)
	}
	return payload, nil
}

func (r *postgresRepository) Save(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	query := `
		INSERT INTO app_snapshots (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = NOW()
	`

	// jsonb columns take text; lib/pq would send []byte as bytea.
	if _, err := r.db.ExecContext(ctx, query, key, string(data)); err != nil {
		logger.FromCtx(ctx).Error("failed to save snapshot",
			zap.String("layer", "repository"),
			zap.String("method", "Save"),
			zap.String("key", key),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrFailedSave, err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query := `DELETE FROM app_snapshots WHERE key = $1`
	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedDelete, err)
	}
	return nil
}
