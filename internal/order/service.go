package order

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"reddy-infra/internal/catalog"
	"reddy-infra/internal/dispatch"
	"reddy-infra/internal/logger"
)

type Service interface {
	List(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id string) (Order, error)
	TotalPoolSavings(ctx context.Context) (decimal.Decimal, error)
}

type service struct {
	repo     Repository
	products catalog.Repository
	schedule dispatch.Schedule
	now      func() time.Time
}

func NewService(repo Repository, products catalog.Repository, schedule dispatch.Schedule, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{repo: repo, products: products, schedule: schedule, now: now}
}

// List returns the placed orders newest first, followed by the sample history.
func (s *service) List(ctx context.Context) ([]Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "List"),
	)

	placed := slices.Clone(s.repo.PlacedOrders(ctx))
	slices.SortStableFunc(placed, func(a, b Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	samples, err := Samples(s.now().In(s.schedule.Location()), s.products)
	if err != nil {
		log.Error("failed to build sample orders", zap.Error(err))
		return nil, fmt.Errorf("build sample orders: %w", err)
	}

	log.Debug("orders listed",
		zap.Int("placed", len(placed)),
		zap.Int("samples", len(samples)),
	)
	return append(placed, samples...), nil
}

func (s *service) Get(ctx context.Context, id string) (Order, error) {
	orders, err := s.List(ctx)
	if err != nil {
		return Order{}, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	logger.FromCtx(ctx).Warn("order not found",
		zap.String("layer", "service"),
		zap.String("method", "Get"),
		zap.String("order_id", id),
	)
	return Order{}, fmt.Errorf("%w: %q", ErrOrderNotFound, id)
}

// TotalPoolSavings sums PoolSavings over every listed order.
func (s *service) TotalPoolSavings(ctx context.Context) (decimal.Decimal, error) {
	orders, err := s.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for _, o := range orders {
		sum = sum.Add(o.PoolSavings)
	}
	return sum, nil
}
