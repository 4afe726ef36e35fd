package orders

import "context"

// Store persists orders. The SQLite implementation lives in the storage
// package; tests use in-memory fakes.
type Store interface {
	// SaveOrder persists a new order.
	SaveOrder(ctx context.Context, order *Order) error

	// ListOrders retrieves all orders, newest first.
	ListOrders(ctx context.Context) ([]*Order, error)
}
