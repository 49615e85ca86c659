package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"reddy-infra/internal/logger"
)

const (
	fileExt  = ".json"
	dirPerm  = 0o700
	filePerm = 0o600
)

type fileRepository struct {
	dir string
}

// NewFile stores each key as <dir>/<key>.json. Writes go to a temp file in
// the same directory, are synced and then renamed over the old file, so a
// crash leaves either the old or the new snapshot.
func NewFile(dir string) Repository {
	return &fileRepository{dir: dir}
}

func (r *fileRepository) path(key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", ErrEmptyKey.WithDetails(map[string]string{"key": key})
	}
	return filepath.Join(r.dir, key+fileExt), nil
}

func (r *fileRepository) Load(ctx context.Context, key string) ([]byte, error) {
	p, err := r.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to read snapshot file",
			zap.String("layer", "storage"),
			zap.String("method", "Load"),
			zap.String("path", p),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrFailedLoad, err)
	}
	return data, nil
}

func (r *fileRepository) Save(ctx context.Context, key string, data []byte) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "storage"),
		zap.String("method", "Save"),
	)

	p, err := r.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, dirPerm); err != nil {
		log.Error("failed to create storage dir", zap.String("dir", r.dir), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedSave, err)
	}
	if err := writeAtomic(r.dir, p, data); err != nil {
		log.Error("failed to write snapshot file", zap.String("path", p), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedSave, err)
	}
	return nil
}

func (r *fileRepository) Delete(ctx context.Context, key string) error {
	p, err := r.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrFailedDelete, err)
	}
	return nil
}

func writeAtomic(dir, path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), filePerm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
