// Package orders implements the demonstration order service guarded by
// the action pipeline.
package orders

import (
	"time"

	"github.com/google/uuid"
)

// User is the principal an order service acts on behalf of.
type User struct {
	// Name identifies the user.
	Name string `json:"name"`
	// CanCreateOrders gates order creation.
	CanCreateOrders bool `json:"can_create_orders"`
}

// OrderItem is a single line item on an order.
type OrderItem struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// Order is a customer order with a requested shipping date.
type Order struct {
	// ID is assigned on creation.
	ID uuid.UUID `json:"id"`
	// ShippingDate is the requested shipping day; time-of-day is ignored.
	ShippingDate time.Time `json:"shipping_date"`
	// Items are the order line items.
	Items []OrderItem `json:"items"`
	// CreatedAt is set on creation (UTC).
	CreatedAt time.Time `json:"created_at"`
}
