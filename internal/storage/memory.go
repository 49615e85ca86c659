package storage

import (
	"context"
	"slices"
	"sync"
)

type memoryRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns a process-local repository. Nothing survives a restart.
func NewMemory() Repository {
	return &memoryRepository{data: make(map[string][]byte)}
}

func (r *memoryRepository) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(v), nil
}

func (r *memoryRepository) Save(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = slices.Clone(data)
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, key)
	return nil
}
