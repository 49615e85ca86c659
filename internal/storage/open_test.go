package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reddy-infra/internal/apperr"
	"reddy-infra/internal/config"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("File", func(t *testing.T) {
		cfg := &config.Config{Storage: config.StorageConfig{Driver: config.DriverFile, Dir: t.TempDir()}}
		repo, closeFn, err := Open(ctx, cfg)
		require.NoError(t, err)
		defer closeFn()

		require.NoError(t, repo.Save(ctx, "k", []byte("v")))
	})

	t.Run("Memory", func(t *testing.T) {
		cfg := &config.Config{Storage: config.StorageConfig{Driver: config.DriverMemory}}
		repo, closeFn, err := Open(ctx, cfg)
		require.NoError(t, err)
		assert.NoError(t, closeFn())
		assert.NotNil(t, repo)
	})

	t.Run("Unknown", func(t *testing.T) {
		cfg := &config.Config{Storage: config.StorageConfig{Driver: "s3"}}
		_, _, err := Open(ctx, cfg)
		assert.ErrorIs(t, err, ErrUnknownDriver)
		assert.True(t, apperr.IsInvalidArgument(err))
	})
}
