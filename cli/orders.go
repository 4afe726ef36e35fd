package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"

	"github.com/safedep/coeur/core/action"
	"github.com/safedep/coeur/orders"
	"github.com/safedep/coeur/tui"
)

// callerFlags holds the acting-user flags shared by order commands.
type callerFlags struct {
	User      string
	CanCreate bool
}

func (f *callerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.User, "as", "", "acting user name (empty for anonymous)")
	cmd.Flags().BoolVar(&f.CanCreate, "can-create-orders", false, "grant the acting user order creation rights")
}

func (f *callerFlags) options() []orders.Option {
	if f.User == "" {
		return nil
	}
	return []orders.Option{
		orders.WithUser(&orders.User{
			Name:            f.User,
			CanCreateOrders: f.CanCreate,
		}),
	}
}

// NewOrdersCmd creates the orders command.
func NewOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Create and list orders",
	}

	cmd.AddCommand(
		newOrdersCreateCmd(),
		newOrdersListCmd(),
	)

	return cmd
}

func newOrdersCreateCmd() *cobra.Command {
	var (
		caller       callerFlags
		items        []string
		shippingDate string
		format       string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new order",
		Long: `Create a new order.

The order runs through the guarded creation action: the caller must be
authenticated and allowed to create orders, and the order must carry
items and a shipping date that is not in the past.`,
		Example: `  coeur orders create --as tom --can-create-orders \
    --item "mayonnaise:2:litre" --shipping-date 2026-03-11`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, presenter, err := loadOrdersApp(cmd, format)
			if err != nil {
				return err
			}
			defer closeApp(app)

			order := &orders.Order{}
			for _, raw := range items {
				item, err := parseOrderItem(raw)
				if err != nil {
					return err
				}
				order.Items = append(order.Items, item)
			}

			if shippingDate != "" {
				parsed, err := time.Parse("2006-01-02", shippingDate)
				if err != nil {
					return fmt.Errorf("invalid shipping date %q (expected YYYY-MM-DD)", shippingDate)
				}
				order.ShippingDate = parsed
			}

			svc := newOrderService(app, caller)
			created, err := svc.CreateOrder(ctx, order)
			if err != nil {
				return actionError(err)
			}

			return presenter.RenderOrder(tui.NewOrderView(created, app.Config.Location()))
		},
	}

	caller.register(cmd)
	cmd.Flags().StringArrayVar(&items, "item", nil, `order item as "product:quantity:unit" (repeatable)`)
	cmd.Flags().StringVar(&shippingDate, "shipping-date", "", "shipping date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, yaml")

	return cmd
}

func newOrdersListCmd() *cobra.Command {
	var (
		caller callerFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Long: `List orders.

Listing is guarded by the service-level permissions: the caller must
be authenticated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, presenter, err := loadOrdersApp(cmd, format)
			if err != nil {
				return err
			}
			defer closeApp(app)

			svc := newOrderService(app, caller)
			list, err := svc.ListOrders(ctx)
			if err != nil {
				return actionError(err)
			}

			return presenter.RenderOrders(tui.NewOrderViews(list, app.Config.Location()))
		},
	}

	caller.register(cmd)
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, yaml")

	return cmd
}

// loadOrdersApp loads the app with an open store and a presenter for the
// requested format.
func loadOrdersApp(cmd *cobra.Command, format string) (*App, tui.Presenter, error) {
	app, err := loadApp()
	if err != nil {
		return nil, nil, err
	}

	presenter := tui.NewPresenter(getFormat(format), tui.PresenterOptions{
		Writer:    cmd.OutOrStdout(),
		UseColors: app.Config.ShouldUseColors(),
	})
	app.Presenter = presenter

	if err := app.InitStore(context.Background()); err != nil {
		return nil, nil, ErrDatabase("failed to open database", err)
	}

	return app, presenter, nil
}

func closeApp(app *App) {
	if err := app.Close(); err != nil {
		log.Errorf("failed to close app: %v", err)
	}
}

func newOrderService(app *App, caller callerFlags) *orders.Service {
	opts := append(caller.options(), orders.WithAuditTrail(app.Store))
	return orders.NewService(app.Store, orders.Config{
		MaxItemsPerOrder: app.Config.Orders.MaxItemsPerOrder,
	}, opts...)
}

// parseOrderItem parses "product:quantity:unit" into an OrderItem.
func parseOrderItem(raw string) (orders.OrderItem, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return orders.OrderItem{}, fmt.Errorf("invalid item %q (expected product:quantity:unit)", raw)
	}

	qty, err := strconv.Atoi(parts[1])
	if err != nil || qty <= 0 {
		return orders.OrderItem{}, fmt.Errorf("invalid item quantity in %q", raw)
	}

	return orders.OrderItem{
		Product:  strings.TrimSpace(parts[0]),
		Quantity: qty,
		Unit:     strings.TrimSpace(parts[2]),
	}, nil
}

// actionError maps a guarded action failure to a typed exit code.
func actionError(err error) error {
	var permErr *action.PermissionError
	if errors.As(err, &permErr) {
		return NewCLIError(ExitPermission, err.Error())
	}

	var valErr *action.ValidationError
	if errors.As(err, &valErr) {
		return NewCLIError(ExitValidation, err.Error())
	}

	return err
}
