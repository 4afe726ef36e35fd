package tui

import (
	"time"

	"github.com/safedep/coeur/core/audit"
	"github.com/safedep/coeur/orders"
)

// OrderView represents an order for display.
type OrderView struct {
	ID           string          `json:"id" yaml:"id"`
	ShortID      string          `json:"short_id" yaml:"short_id"`
	ShippingDate time.Time       `json:"shipping_date" yaml:"shipping_date"`
	CreatedAt    time.Time       `json:"created_at" yaml:"created_at"`
	Items        []OrderItemView `json:"items" yaml:"items"`
}

// OrderItemView represents a single order item for display.
type OrderItemView struct {
	Product  string `json:"product" yaml:"product"`
	Quantity int    `json:"quantity" yaml:"quantity"`
	Unit     string `json:"unit" yaml:"unit"`
}

// InvocationView represents an audit trail entry for display.
type InvocationView struct {
	ID        string    `json:"id" yaml:"id"`
	ShortID   string    `json:"short_id" yaml:"short_id"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Action    string    `json:"action" yaml:"action"`
	Caller    string    `json:"caller" yaml:"caller"`
	Outcome   string    `json:"outcome" yaml:"outcome"`
	Detail    string    `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// ConfigView represents configuration for display.
type ConfigView struct {
	Location string                 `json:"location" yaml:"location"`
	Values   map[string]interface{} `json:"values" yaml:"values"`
}

// StatusView represents the status output data.
type StatusView struct {
	Version  string       `json:"version" yaml:"version"`
	Database DatabaseView `json:"database" yaml:"database"`
	Config   string       `json:"config" yaml:"config"`
}

// DatabaseView represents database information.
type DatabaseView struct {
	Location        string    `json:"location" yaml:"location"`
	SizeBytes       int64     `json:"size_bytes" yaml:"size_bytes"`
	SizeHuman       string    `json:"size_human" yaml:"size_human"`
	OrderCount      int       `json:"order_count" yaml:"order_count"`
	InvocationCount int       `json:"invocation_count" yaml:"invocation_count"`
	OldestRecord    time.Time `json:"oldest_record,omitempty" yaml:"oldest_record,omitempty"`
	NewestRecord    time.Time `json:"newest_record,omitempty" yaml:"newest_record,omitempty"`
}

// NewOrderView builds an OrderView from a domain order, rendering
// timestamps in the given location.
func NewOrderView(order *orders.Order, loc *time.Location) *OrderView {
	items := make([]OrderItemView, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemView{
			Product:  item.Product,
			Quantity: item.Quantity,
			Unit:     item.Unit,
		}
	}

	id := order.ID.String()
	return &OrderView{
		ID:           id,
		ShortID:      FormatShortID(id),
		ShippingDate: order.ShippingDate.In(loc),
		CreatedAt:    order.CreatedAt.In(loc),
		Items:        items,
	}
}

// NewOrderViews builds views for a list of orders.
func NewOrderViews(list []*orders.Order, loc *time.Location) []*OrderView {
	views := make([]*OrderView, len(list))
	for i, order := range list {
		views[i] = NewOrderView(order, loc)
	}
	return views
}

// NewInvocationView builds an InvocationView from an audit record.
func NewInvocationView(rec *audit.Record, loc *time.Location) *InvocationView {
	id := rec.ID.String()
	return &InvocationView{
		ID:        id,
		ShortID:   FormatShortID(id),
		Timestamp: rec.Timestamp.In(loc),
		Action:    rec.Action,
		Caller:    rec.Caller,
		Outcome:   string(rec.Outcome),
		Detail:    rec.Detail,
	}
}

// NewInvocationViews builds views for a list of audit records.
func NewInvocationViews(records []*audit.Record, loc *time.Location) []*InvocationView {
	views := make([]*InvocationView, len(records))
	for i, rec := range records {
		views[i] = NewInvocationView(rec, loc)
	}
	return views
}
