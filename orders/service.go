package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/safedep/coeur/core/action"
	"github.com/safedep/coeur/core/audit"
)

// Config is the typed service configuration. Invalid shapes are a compile
// error, not a runtime check.
type Config struct {
	// MaxItemsPerOrder caps line items per order; zero disables the cap.
	MaxItemsPerOrder int
}

// Service executes order actions on behalf of an optional authenticated
// user. Every guarded call is recorded to the audit trail when one is
// attached.
type Service struct {
	user  *User
	store Store
	trail audit.Recorder
	cfg   Config
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithUser sets the acting user.
func WithUser(user *User) Option {
	return func(s *Service) { s.user = user }
}

// WithAuditTrail attaches an invocation audit trail.
func WithAuditTrail(trail audit.Recorder) Option {
	return func(s *Service) { s.trail = trail }
}

// WithClock overrides the service clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates an order service backed by the given store.
func NewService(store Store, cfg Config, opts ...Option) *Service {
	s := &Service{
		store: store,
		cfg:   cfg,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// User returns the acting user, or nil.
func (s *Service) User() *User {
	return s.user
}

// ShippingCalendar is the validator context for order creation: the
// service clock is read once per invocation and shared by every validator.
type ShippingCalendar struct {
	Today time.Time
}

// serviceActions groups the guarded actions shared by every Service
// instance.
type serviceActions struct {
	create *action.Action[*Service, ShippingCalendar, *Order, *Order]
	list   *action.Action[*Service, struct{}, struct{}, []*Order]
	digest *action.Action[*Service, struct{}, struct{}, int]
}

// actions is defined once at package load. Definition conflicts are
// programming mistakes, fatal to the defining code.
var actions = newServiceActions()

func newServiceActions() *serviceActions {
	create := action.New[*Service, ShippingCalendar, *Order, *Order]("orders.create")
	mustDefine(create.Register(func(ctx context.Context, s *Service, order *Order) (*Order, error) {
		return s.createOrder(ctx, order)
	}))
	mustDefine(create.SetPermissionResolver(orderCreationPermissions))
	mustDefine(create.SetContextFactory(func(ctx context.Context, s *Service, order *Order) (ShippingCalendar, error) {
		return ShippingCalendar{Today: s.today()}, nil
	}))
	create.AddValidator(action.NewValidator("require_items", requireItems))
	create.AddValidator(action.NewValidator("require_future_date", requireFutureDate))
	create.AddValidator(action.NewValidator("limit_items", limitItems))

	list := action.New[*Service, struct{}, struct{}, []*Order]("orders.list")
	mustDefine(list.Register(func(ctx context.Context, s *Service, _ struct{}) ([]*Order, error) {
		return s.store.ListOrders(ctx)
	}))

	// The digest runs without an acting user, e.g. from a scheduler.
	digest := action.New[*Service, struct{}, struct{}, int]("orders.daily_digest")
	digest.SetUseCallerPermissions(false)
	mustDefine(digest.Register(func(ctx context.Context, s *Service, _ struct{}) (int, error) {
		return s.countShippingToday(ctx)
	}))

	return &serviceActions{create: create, list: list, digest: digest}
}

func mustDefine(err error) {
	if err != nil {
		panic(err)
	}
}

// CreateOrderAction returns the shared create descriptor, for introspection
// and test-time override scopes.
func CreateOrderAction() *action.Action[*Service, ShippingCalendar, *Order, *Order] {
	return actions.create
}

// ListOrdersAction returns the shared list descriptor.
func ListOrdersAction() *action.Action[*Service, struct{}, struct{}, []*Order] {
	return actions.list
}

// CreateOrder persists an order after permission and validation checks.
func (s *Service) CreateOrder(ctx context.Context, order *Order) (*Order, error) {
	created, err := actions.create.Bind(s).Call(ctx, order)
	s.record(ctx, actions.create.Name(), err)
	return created, err
}

// ListOrders retrieves all orders, newest first.
func (s *Service) ListOrders(ctx context.Context) ([]*Order, error) {
	listed, err := actions.list.Bind(s).Call(ctx, struct{}{})
	s.record(ctx, actions.list.Name(), err)
	return listed, err
}

// SendDailyDigest reports how many orders ship today. It runs without the
// service-level permission set.
func (s *Service) SendDailyDigest(ctx context.Context) (int, error) {
	count, err := actions.digest.Bind(s).Call(ctx, struct{}{})
	s.record(ctx, actions.digest.Name(), err)
	return count, err
}

func (s *Service) createOrder(ctx context.Context, order *Order) (*Order, error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = s.now().UTC()

	if err := s.store.SaveOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	return order, nil
}

func (s *Service) countShippingToday(ctx context.Context) (int, error) {
	all, err := s.store.ListOrders(ctx)
	if err != nil {
		return 0, err
	}

	today := s.today()
	count := 0
	for _, order := range all {
		if sameDay(order.ShippingDate, today) {
			count++
		}
	}
	return count, nil
}

// today truncates the service clock to a UTC day.
func (s *Service) today() time.Time {
	year, month, day := s.now().UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// record appends the invocation to the audit trail. Audit failures never
// fail the action.
func (s *Service) record(ctx context.Context, actionName string, err error) {
	if s.trail == nil {
		return
	}
	_ = s.trail.SaveRecord(ctx, audit.NewRecord(actionName, s.callerName(), err))
}

func (s *Service) callerName() string {
	if s.user == nil {
		return "anonymous"
	}
	return s.user.Name
}

func requireItems(ctx context.Context, s *Service, cal ShippingCalendar, order *Order) error {
	if len(order.Items) == 0 {
		return &action.ValidationError{Message: "order requires order items"}
	}
	return nil
}

func requireFutureDate(ctx context.Context, s *Service, cal ShippingCalendar, order *Order) error {
	if order.ShippingDate.Before(cal.Today) {
		return &action.ValidationError{
			Message: "order shipping date is in the past",
			Details: map[string]any{
				"shipping_date": order.ShippingDate.Format("2006-01-02"),
			},
		}
	}
	return nil
}

func limitItems(ctx context.Context, s *Service, cal ShippingCalendar, order *Order) error {
	if s.cfg.MaxItemsPerOrder > 0 && len(order.Items) > s.cfg.MaxItemsPerOrder {
		return &action.ValidationError{
			Message: "order has too many items",
			Details: map[string]any{
				"items": len(order.Items),
				"limit": s.cfg.MaxItemsPerOrder,
			},
		}
	}
	return nil
}
