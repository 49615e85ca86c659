package storage

import (
	"context"
	"time"

	"reddy-infra/internal/metrics"
)

// SaveObserver receives the duration and outcome of every save.
type SaveObserver interface {
	ObserveSave(driver string, d time.Duration, err error)
}

type observedRepository struct {
	Repository
	driver   string
	observer SaveObserver
}

// WithObserver reports Save timings of repo to observer under the driver label.
func WithObserver(repo Repository, driver string, observer SaveObserver) Repository {
	if observer == nil {
		return repo
	}
	return &observedRepository{Repository: repo, driver: driver, observer: observer}
}

func (r *observedRepository) Save(ctx context.Context, key string, data []byte) error {
	timer := metrics.StartTimer()
	err := r.Repository.Save(ctx, key, data)
	r.observer.ObserveSave(r.driver, timer.Duration(), err)
	return err
}
