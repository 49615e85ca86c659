package order

import (
	"time"

	"github.com/shopspring/decimal"

	"reddy-infra/internal/cart"
	"reddy-infra/internal/catalog"
	"reddy-infra/internal/dispatch"
)

const day = 24 * time.Hour

// FromCart materializes a pooled order from the cart lines. The order ships
// on the next dispatch slot after now.
func FromCart(items []cart.Item, now time.Time, id string) (Order, error) {
	if len(items) == 0 {
		return Order{}, ErrEmptyCart
	}
	if id == "" {
		return Order{}, ErrMissingID
	}

	lines := make([]Item, len(items))
	copy(lines, items)

	dispatchAt := dispatch.NextDate(now)
	o := Order{
		ID:           id,
		Items:        lines,
		Status:       StatusPooled,
		CreatedAt:    now,
		DispatchDate: dispatchAt,
		DeliveryDate: dispatch.ExpectedDelivery(dispatchAt),
		Total:        cart.Total(items),
		PoolSavings:  cart.Savings(items),
	}
	return o, o.Validate()
}

type sampleLine struct {
	productID string
	quantity  int
}

type sampleOrder struct {
	id       string
	status   Status
	lines    []sampleLine
	created  time.Duration
	dispatch func(now time.Time) time.Time
	delivery func(now time.Time) time.Time
	total    int64
	savings  int64
}

func relative(d time.Duration) func(time.Time) time.Time {
	return func(now time.Time) time.Time { return now.Add(d) }
}

// Sample totals are editorial figures and are not recomputed from the lines.
var sampleOrders = []sampleOrder{
	{
		id:     "ORD-2024-001",
		status: StatusDispatched,
		lines: []sampleLine{
			{"cement-001", 200},
			{"steel-001", 10},
		},
		created:  -7 * day,
		dispatch: relative(-2 * day),
		delivery: relative(3 * day),
		total:    730000,
		savings:  85000,
	},
	{
		id:     "ORD-2024-002",
		status: StatusPooled,
		lines: []sampleLine{
			{"cement-002", 150},
		},
		created:  -1 * day,
		dispatch: dispatch.NextDate,
		delivery: func(now time.Time) time.Time {
			return dispatch.ExpectedDelivery(dispatch.NextDate(now))
		},
		total:   56700,
		savings: 8550,
	},
	{
		id:     "ORD-2024-003",
		status: StatusDelivered,
		lines: []sampleLine{
			{"electrical-001", 50},
			{"plumbing-001", 200},
		},
		created:  -21 * day,
		dispatch: relative(-14 * day),
		delivery: relative(-7 * day),
		total:    263600,
		savings:  35900,
	},
}

// Samples builds the demo order history with dates relative to now.
func Samples(now time.Time, products catalog.Repository) ([]Order, error) {
	out := make([]Order, 0, len(sampleOrders))
	for _, s := range sampleOrders {
		items := make([]Item, 0, len(s.lines))
		for _, l := range s.lines {
			p, err := products.ProductByID(l.productID)
			if err != nil {
				return nil, err
			}
			items = append(items, Item{Product: p, Quantity: l.quantity})
		}
		out = append(out, Order{
			ID:           s.id,
			Items:        items,
			Status:       s.status,
			CreatedAt:    now.Add(s.created),
			DispatchDate: s.dispatch(now),
			DeliveryDate: s.delivery(now),
			Total:        decimal.NewFromInt(s.total),
			PoolSavings:  decimal.NewFromInt(s.savings),
		})
	}
	return out, nil
}
