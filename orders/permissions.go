package orders

import (
	"context"

	"github.com/safedep/coeur/core/action"
)

// Authenticated passes when the service acts on behalf of a user. Whoever
// constructed the service with a user is assumed to have authenticated them.
type Authenticated struct{}

// Check implements action.Permission.
func (Authenticated) Check(ctx context.Context, s *Service, args any) error {
	if s.user == nil {
		return &action.PermissionError{
			Permission: "authenticated",
			Reason:     "authenticated user required",
		}
	}
	return nil
}

// CanCreateOrders passes when the acting user carries the order-creation
// flag.
type CanCreateOrders struct{}

// Check implements action.Permission.
func (CanCreateOrders) Check(ctx context.Context, s *Service, args any) error {
	if s.user == nil || !s.user.CanCreateOrders {
		return &action.PermissionError{
			Permission: "can_create_orders",
			Reason:     "user cannot create orders",
		}
	}
	return nil
}

// DefaultPermissions exposes the service-level permission set, applied to
// every action without its own resolver.
func (s *Service) DefaultPermissions() []action.PermissionFactory[*Service] {
	return []action.PermissionFactory[*Service]{
		action.StaticPermission[*Service](Authenticated{}),
	}
}

// orderCreationPermissions is the resolver for the create action: any
// authenticated user is not enough, the creation flag is also required.
func orderCreationPermissions(ctx context.Context, s *Service, order *Order) []action.PermissionFactory[*Service] {
	return []action.PermissionFactory[*Service]{
		action.StaticPermission[*Service](Authenticated{}),
		action.StaticPermission[*Service](CanCreateOrders{}),
	}
}
