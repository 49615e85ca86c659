package order

import "context"

// Repository exposes the orders placed on this device, oldest first.
type Repository interface {
	PlacedOrders(ctx context.Context) []Order
}
