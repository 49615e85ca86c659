// Package storage persists opaque snapshots under string keys.
package storage

import "context"

// Repository stores one byte payload per key. Load returns ErrNotFound for
// keys that were never saved or have been deleted.
type Repository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
