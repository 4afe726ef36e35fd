package tui

import (
	"fmt"
	"io"
)

// TablePresenter renders output in table format.
type TablePresenter struct {
	w         io.Writer
	color     *Colorizer
	termWidth int
}

// NewTablePresenter creates a new table presenter.
func NewTablePresenter(opts PresenterOptions) *TablePresenter {
	termWidth := opts.TerminalWidth
	if termWidth == 0 {
		termWidth = terminalWidth(opts.Writer)
	}
	return &TablePresenter{
		w:         opts.Writer,
		color:     NewColorizer(opts.UseColors),
		termWidth: termWidth,
	}
}

// RenderOrders renders a list of orders.
func (p *TablePresenter) RenderOrders(orders []*OrderView) error {
	rw := newRenderWriter(p.w)

	if len(orders) == 0 {
		rw.line("No orders found.")
		return rw.finish()
	}

	rw.linef("Orders (%d)", len(orders))
	rw.line(HorizontalLine(p.termWidth))

	for _, o := range orders {
		rw.linef("%s  order %s  ships %s",
			FormatTime(o.CreatedAt),
			p.color.Dim(o.ShortID),
			p.color.Number(FormatDate(o.ShippingDate)))

		for _, item := range o.Items {
			rw.linef("   %d %s %s", item.Quantity, item.Unit, item.Product)
		}
		rw.blank()
	}

	return rw.finish()
}

// RenderOrder renders a single created order.
func (p *TablePresenter) RenderOrder(order *OrderView) error {
	rw := newRenderWriter(p.w)

	rw.linef("%s %s", p.color.Success("Order created:"), order.ID)
	rw.linef("%-16s %s", "Shipping date", FormatDate(order.ShippingDate))
	rw.linef("%-16s %s", "Created", FormatTime(order.CreatedAt))
	rw.linef("%-16s %d", "Items", len(order.Items))
	for _, item := range order.Items {
		rw.linef("   %d %s %s", item.Quantity, item.Unit, item.Product)
	}

	return rw.finish()
}

// RenderInvocations renders the invocation audit trail.
func (p *TablePresenter) RenderInvocations(invocations []*InvocationView) error {
	rw := newRenderWriter(p.w)

	if len(invocations) == 0 {
		rw.line("No invocations recorded.")
		return rw.finish()
	}

	rw.linef("Invocations (%d)", len(invocations))
	rw.line(HorizontalLine(p.termWidth))

	for _, inv := range invocations {
		rw.linef("%s  %-20s %-12s %s",
			FormatTime(inv.Timestamp),
			inv.Action,
			p.color.Caller(inv.Caller),
			p.outcome(inv.Outcome))

		if inv.Detail != "" {
			rw.linef("    %s", p.color.Dim(inv.Detail))
		}
	}

	return rw.finish()
}

func (p *TablePresenter) outcome(outcome string) string {
	switch outcome {
	case "ok":
		return p.color.Success(outcome)
	case "permission_denied", "error":
		return p.color.Error(outcome)
	case "validation_failed":
		return p.color.Warning(outcome)
	default:
		return outcome
	}
}

// RenderConfig renders the configuration.
func (p *TablePresenter) RenderConfig(config *ConfigView) error {
	rw := newRenderWriter(p.w)

	rw.line(p.color.Header("Configuration"))
	rw.linef("Location: %s", p.color.Path(config.Location))
	rw.line(HorizontalLine(p.termWidth))
	rw.blank()

	p.renderConfigMap(rw, config.Values, "")

	return rw.finish()
}

func (p *TablePresenter) renderConfigMap(rw *renderWriter, m map[string]interface{}, prefix string) {
	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]interface{}:
			p.renderConfigMap(rw, v, fullKey)
		default:
			rw.linef("  %-30s %v", fullKey, value)
		}
	}
}

// RenderStatus renders the tool status.
func (p *TablePresenter) RenderStatus(status *StatusView) error {
	rw := newRenderWriter(p.w)

	rw.line(p.color.Header("coeur " + status.Version))
	rw.blank()

	rw.line(p.color.Header("Database"))
	rw.linef("  %-14s %s", "Location", p.color.Path(status.Database.Location))
	rw.linef("  %-14s %s", "Size", status.Database.SizeHuman)
	rw.linef("  %-14s %s", "Orders", p.color.Number(FormatNumber(status.Database.OrderCount)))
	rw.linef("  %-14s %s", "Invocations", p.color.Number(FormatNumber(status.Database.InvocationCount)))
	if !status.Database.OldestRecord.IsZero() {
		rw.linef("  %-14s %s", "Oldest", FormatTime(status.Database.OldestRecord))
		rw.linef("  %-14s %s", "Latest", FormatTime(status.Database.NewestRecord))
	}
	rw.blank()

	rw.line(p.color.Header("Config"))
	rw.linef("  %-14s %s", "Location", p.color.Path(status.Config))

	return rw.finish()
}

// RenderError renders an error message.
func (p *TablePresenter) RenderError(err error) error {
	_, werr := fmt.Fprintf(p.w, "%s %s\n", p.color.Error("Error:"), err.Error())
	return werr
}

// RenderMessage renders a simple message.
func (p *TablePresenter) RenderMessage(message string) error {
	_, err := fmt.Fprintln(p.w, message)
	return err
}

// Ensure TablePresenter implements Presenter
var _ Presenter = (*TablePresenter)(nil)
