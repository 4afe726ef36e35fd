// Package tui provides the presentation layer for terminal output.
package tui

import (
	"io"
	"os"
)

// Format represents the output format.
type Format string

const (
	// FormatTable is the default table format.
	FormatTable Format = "table"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// Presenter defines the interface for output rendering.
type Presenter interface {
	// RenderOrders renders a list of orders.
	RenderOrders(orders []*OrderView) error

	// RenderOrder renders a single created order.
	RenderOrder(order *OrderView) error

	// RenderInvocations renders the invocation audit trail.
	RenderInvocations(invocations []*InvocationView) error

	// RenderConfig renders the configuration.
	RenderConfig(config *ConfigView) error

	// RenderStatus renders the tool status.
	RenderStatus(status *StatusView) error

	// RenderError renders an error message.
	RenderError(err error) error

	// RenderMessage renders a simple message.
	RenderMessage(message string) error
}

// PresenterOptions configures presenter behavior.
type PresenterOptions struct {
	// Writer is the output destination.
	Writer io.Writer
	// UseColors indicates if colors should be used.
	UseColors bool
	// TerminalWidth is the width of the terminal for table rendering.
	// If 0, the width will be auto-detected.
	TerminalWidth int
}

// NewPresenter creates a new presenter for the given format.
func NewPresenter(format Format, opts PresenterOptions) Presenter {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch format {
	case FormatJSON:
		return NewJSONPresenter(opts)
	case FormatYAML:
		return NewYAMLPresenter(opts)
	default:
		return NewTablePresenter(opts)
	}
}
