// Package store owns the persisted storefront state: the buyer profile, the
// cart and the orders placed from it.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"reddy-infra/internal/apperr"
	"reddy-infra/internal/cart"
	"reddy-infra/internal/catalog"
	"reddy-infra/internal/dispatch"
	"reddy-infra/internal/logger"
	"reddy-infra/internal/metrics"
	"reddy-infra/internal/order"
	"reddy-infra/internal/storage"
	"reddy-infra/internal/tracing"
	"reddy-infra/internal/user"
)

const DefaultKey = "reddy-infra-storage"

type Params struct {
	Repository storage.Repository
	Key        string
	Schedule   dispatch.Schedule
	Now        func() time.Time
	Metrics    *metrics.StoreMetrics
	Tracer     trace.TracerProvider
}

// Store serializes every operation behind one mutex. Mutations are
// write-through: the next state is saved before it replaces the current one,
// so a failed save leaves the store exactly as it was.
type Store struct {
	mu       sync.Mutex
	state    AppState
	repo     storage.Repository
	key      string
	schedule dispatch.Schedule
	now      func() time.Time
	metrics  *metrics.StoreMetrics
	tracer   trace.Tracer
}

func newStore(p Params) *Store {
	if p.Key == "" {
		p.Key = DefaultKey
	}
	if p.Now == nil {
		p.Now = time.Now
	}
	return &Store{
		state:    DefaultState(),
		repo:     p.Repository,
		key:      p.Key,
		schedule: p.Schedule,
		now:      p.Now,
		metrics:  p.Metrics,
		tracer:   tracing.Tracer(p.Tracer),
	}
}

// Open restores the snapshot under p.Key. A missing or unreadable snapshot
// starts from DefaultState; only a storage failure is returned.
func Open(ctx context.Context, p Params) (*Store, error) {
	s := newStore(p)
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "store"),
		zap.String("method", "Open"),
		zap.String("key", s.key),
	)

	data, err := s.repo.Load(ctx, s.key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		log.Info("no saved state, starting fresh")
		return s, nil
	case err != nil:
		log.Error("failed to load state", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedRestore, err)
	}

	state, err := Unmarshal(data)
	if err != nil {
		log.Warn("discarding unreadable state snapshot", zap.Error(err))
		return s, nil
	}

	s.state = state
	s.metrics.SetCartItems(cart.Count(state.Cart))
	log.Info("state restored",
		zap.Int("cart_items", len(state.Cart)),
		zap.Int("orders", len(state.Orders)),
	)
	return s, nil
}

// mutate computes the next state with fn, persists it and only then commits it.
func (s *Store) mutate(ctx context.Context, op string, fn func(AppState) (AppState, error), attrs ...attribute.KeyValue) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, span := s.tracer.Start(ctx, "store."+op, trace.WithAttributes(attrs...))
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "store"),
		zap.String("method", op),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		s.metrics.ObserveOperation(op, err)
	}()

	next, err := fn(s.state.clone())
	if err != nil {
		log.Warn("operation rejected", zap.Error(err))
		return err
	}

	data, err := Marshal(next)
	if err != nil {
		log.Error("failed to encode state", zap.Error(err))
		return apperr.Wrap(apperr.CodeInternal, err, "encode state")
	}
	if err := s.repo.Save(ctx, s.key, data); err != nil {
		log.Error("failed to persist state", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedPersist, err)
	}

	s.state = next
	s.metrics.SetCartItems(cart.Count(next.Cart))
	log.Debug("state saved", zap.Int("bytes", len(data)))
	return nil
}

// SetUser merges patch into the profile. The merged profile must pass user.Validate.
func (s *Store) SetUser(ctx context.Context, patch user.Patch) error {
	return s.mutate(ctx, "SetUser", func(st AppState) (AppState, error) {
		merged := user.Apply(st.User, patch)
		if err := user.Validate(merged); err != nil {
			return st, err
		}
		st.User = merged
		return st, nil
	})
}

// Logout resets the profile to its signed-out default. The cart is kept.
func (s *Store) Logout(ctx context.Context) error {
	return s.mutate(ctx, "Logout", func(st AppState) (AppState, error) {
		st.User = user.Default()
		return st, nil
	})
}

// AddToCart adds quantity of product, summing with an existing line.
func (s *Store) AddToCart(ctx context.Context, product catalog.Product, quantity int) error {
	return s.mutate(ctx, "AddToCart", func(st AppState) (AppState, error) {
		items, err := cart.Add(st.Cart, product, quantity)
		if err != nil {
			return st, err
		}
		st.Cart = items
		return st, nil
	}, attribute.String("product.id", product.ID), attribute.Int("quantity", quantity))
}

// RemoveFromCart drops the line for productID; unknown ids are a no-op.
func (s *Store) RemoveFromCart(ctx context.Context, productID string) error {
	return s.mutate(ctx, "RemoveFromCart", func(st AppState) (AppState, error) {
		st.Cart = cart.Remove(st.Cart, productID)
		return st, nil
	}, attribute.String("product.id", productID))
}

// UpdateCartQuantity sets the quantity of an existing line; unknown ids are a no-op.
func (s *Store) UpdateCartQuantity(ctx context.Context, productID string, quantity int) error {
	return s.mutate(ctx, "UpdateCartQuantity", func(st AppState) (AppState, error) {
		items, err := cart.SetQuantity(st.Cart, productID, quantity)
		if err != nil {
			return st, err
		}
		st.Cart = items
		return st, nil
	}, attribute.String("product.id", productID), attribute.Int("quantity", quantity))
}

func (s *Store) ClearCart(ctx context.Context) error {
	return s.mutate(ctx, "ClearCart", func(st AppState) (AppState, error) {
		st.Cart = []cart.Item{}
		return st, nil
	})
}

// Checkout turns the cart into a pooled order, records it and empties the cart.
func (s *Store) Checkout(ctx context.Context) (order.Order, error) {
	var placed order.Order
	err := s.mutate(ctx, "Checkout", func(st AppState) (AppState, error) {
		now := s.now().In(s.schedule.Location())
		o, err := order.FromCart(st.Cart, now, uniqueID(st.Orders, now))
		if err != nil {
			return st, err
		}
		o = o.UTC()
		st.Orders = append(st.Orders, o)
		st.Cart = []cart.Item{}
		placed = o.Clone()
		return st, nil
	})
	if err != nil {
		return order.Order{}, err
	}

	logger.FromCtx(ctx).Info("order placed",
		zap.String("layer", "store"),
		zap.String("method", "Checkout"),
		zap.String("order_id", placed.ID),
		zap.String("total", placed.Total.String()),
	)
	return placed, nil
}

// uniqueID derives an order id from now, stepping forward a millisecond at a
// time past ids already used on this device.
func uniqueID(existing []order.Order, now time.Time) string {
	id := order.NewID(now)
	for slices.ContainsFunc(existing, func(o order.Order) bool { return o.ID == id }) {
		now = now.Add(time.Millisecond)
		id = order.NewID(now)
	}
	return id
}

// State returns a copy of the current state.
func (s *Store) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

func (s *Store) User() user.Profile {
	return s.State().User
}

func (s *Store) Cart() []cart.Item {
	return s.State().Cart
}

func (s *Store) CartItem(productID string) (cart.Item, error) {
	return cart.Find(s.Cart(), productID)
}

func (s *Store) CartTotal() decimal.Decimal {
	return cart.Total(s.Cart())
}

func (s *Store) CartSavings() decimal.Decimal {
	return cart.Savings(s.Cart())
}

func (s *Store) CartCount() int {
	return cart.Count(s.Cart())
}

// Orders returns the orders placed on this device, oldest first.
func (s *Store) Orders() []order.Order {
	return s.State().Orders
}

// PlacedOrders lets the store back an order.Service.
func (s *Store) PlacedOrders(ctx context.Context) []order.Order {
	return s.Orders()
}
