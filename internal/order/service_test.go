package order

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"reddy-infra/internal/apperr"
	"reddy-infra/internal/catalog"
	"reddy-infra/internal/dispatch"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) PlacedOrders(ctx context.Context) []Order {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]Order)
}

func newTestService(repo Repository, now time.Time) Service {
	return NewService(repo, catalog.Default(), dispatch.NewSchedule(ist), func() time.Time { return now })
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 12, 15, 0, 0, 0, ist)

	t.Run("NoPlacedOrders", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("PlacedOrders", ctx).Return(nil)

		orders, err := newTestService(repo, now).List(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 3)
		assert.Equal(t, "ORD-2024-001", orders[0].ID)
		repo.AssertExpectations(t)
	})

	t.Run("PlacedNewestFirst", func(t *testing.T) {
		older := Order{ID: "ORD-A", CreatedAt: now.Add(-time.Hour)}
		newer := Order{ID: "ORD-B", CreatedAt: now}

		repo := new(MockRepository)
		repo.On("PlacedOrders", ctx).Return([]Order{older, newer})

		orders, err := newTestService(repo, now).List(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 5)
		assert.Equal(t, "ORD-B", orders[0].ID)
		assert.Equal(t, "ORD-A", orders[1].ID)
		assert.Equal(t, "ORD-2024-001", orders[2].ID)
	})
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 12, 15, 0, 0, 0, ist)

	repo := new(MockRepository)
	repo.On("PlacedOrders", ctx).Return([]Order{{ID: "ORD-X", CreatedAt: now}})
	svc := newTestService(repo, now)

	t.Run("Placed", func(t *testing.T) {
		o, err := svc.Get(ctx, "ORD-X")
		require.NoError(t, err)
		assert.Equal(t, "ORD-X", o.ID)
	})

	t.Run("Sample", func(t *testing.T) {
		o, err := svc.Get(ctx, "ORD-2024-003")
		require.NoError(t, err)
		assert.Equal(t, StatusDelivered, o.Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := svc.Get(ctx, "ORD-404")
		assert.ErrorIs(t, err, ErrOrderNotFound)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestService_TotalPoolSavings(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 12, 15, 0, 0, 0, ist)

	repo := new(MockRepository)
	repo.On("PlacedOrders", ctx).Return([]Order{{ID: "ORD-X", CreatedAt: now, PoolSavings: decimal.NewFromInt(1000)}})

	total, err := newTestService(repo, now).TotalPoolSavings(ctx)
	require.NoError(t, err)
	// 85000 + 8550 + 35900 + 1000
	assert.True(t, decimal.NewFromInt(130450).Equal(total), total.String())
}
