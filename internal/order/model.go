package order

import (
	"time"

	"github.com/shopspring/decimal"

	"reddy-infra/internal/cart"
)

type Status string

const (
	StatusPooled     Status = "pooled"
	StatusConfirmed  Status = "confirmed"
	StatusDispatched Status = "dispatched"
	StatusDelivered  Status = "delivered"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{StatusPooled, StatusConfirmed, StatusDispatched, StatusDelivered}

// Rank is the 1-based position of s in the lifecycle, or 0 when unknown.
func (s Status) Rank() int {
	for i, st := range Statuses {
		if st == s {
			return i + 1
		}
	}
	return 0
}

func (s Status) Valid() bool {
	return s.Rank() > 0
}

// Label is the display name of the status.
func (s Status) Label() string {
	switch s {
	case StatusPooled:
		return "Pooled"
	case StatusConfirmed:
		return "Confirmed"
	case StatusDispatched:
		return "Dispatched"
	case StatusDelivered:
		return "Delivered"
	default:
		return string(s)
	}
}

// Progress is the width of the dispatch to delivery bar, in percent.
func (s Status) Progress() int {
	return s.Rank() * 25
}

// Item is an order line. It reuses the cart line shape, product snapshot included.
type Item = cart.Item

type Order struct {
	ID           string          `json:"id"`
	Items        []Item          `json:"items"`
	Status       Status          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	DispatchDate time.Time       `json:"dispatchDate"`
	DeliveryDate time.Time       `json:"deliveryDate"`
	Total        decimal.Decimal `json:"total"`
	PoolSavings  decimal.Decimal `json:"poolSavings"`
}

func (o Order) Validate() error {
	if o.ID == "" {
		return ErrMissingID
	}
	if !o.Status.Valid() {
		return ErrUnknownStatus.WithDetails(map[string]string{"status": string(o.Status)})
	}
	if o.DispatchDate.Before(o.CreatedAt) || o.DeliveryDate.Before(o.DispatchDate) {
		return ErrInvalidDates
	}
	return nil
}

// Clone returns a copy of o whose lines share no memory with it.
func (o Order) Clone() Order {
	o.Items = cart.Clone(o.Items)
	return o
}

// UTC returns o with its timestamps in UTC and without monotonic readings,
// the form it takes after a JSON round trip.
func (o Order) UTC() Order {
	o.CreatedAt = o.CreatedAt.UTC()
	o.DispatchDate = o.DispatchDate.UTC()
	o.DeliveryDate = o.DeliveryDate.UTC()
	return o
}

// ItemCount is the number of distinct lines in the order.
func (o Order) ItemCount() int {
	return len(o.Items)
}
