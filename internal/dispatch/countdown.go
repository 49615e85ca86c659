package dispatch

import (
	"context"
	"time"

	"go.uber.org/zap"

	"reddy-infra/internal/logger"
)

const defaultInterval = time.Minute

type CountdownParams struct {
	Schedule Schedule
	Interval time.Duration
	Now      func() time.Time
	OnTick   func(Reading)
}

// Countdown recomputes the time left until dispatch on a fixed cadence.
// It only refreshes display values; a missed tick has no other effect.
type Countdown struct {
	schedule Schedule
	interval time.Duration
	now      func() time.Time
	onTick   func(Reading)
}

func NewCountdown(params CountdownParams) *Countdown {
	interval := params.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	onTick := params.OnTick
	if onTick == nil {
		onTick = func(Reading) {}
	}
	return &Countdown{
		schedule: params.Schedule,
		interval: interval,
		now:      now,
		onTick:   onTick,
	}
}

// Run emits a reading immediately and then once per interval until ctx is
// canceled, at which point the ticker is released and ctx.Err() returned.
func (c *Countdown) Run(ctx context.Context) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "dispatch"),
		zap.String("method", "Countdown.Run"),
		zap.Duration("interval", c.interval),
	)
	log.Debug("countdown started")

	c.onTick(c.schedule.Read(c.now()))

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("countdown stopped")
			return ctx.Err()
		case <-ticker.C:
			c.onTick(c.schedule.Read(c.now()))
		}
	}
}
