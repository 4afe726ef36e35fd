package action

import "context"

// Permission is an authorization predicate over a caller and call arguments.
// The arguments are untyped so a single permission can guard actions with
// different argument types; most permissions only inspect the caller.
type Permission[C any] interface {
	// Check returns a non-nil error, conventionally a *PermissionError,
	// when the caller is not authorized.
	Check(ctx context.Context, caller C, args any) error
}

// PermissionFactory constructs a Permission. Actions resolve factories, not
// instances: each invocation instantiates its own permission values.
type PermissionFactory[C any] func() Permission[C]

// PermissionResolver computes the ordered permission set for one invocation.
// When a resolver is set it takes precedence over the caller's default
// permissions.
type PermissionResolver[C, A any] func(ctx context.Context, caller C, args A) []PermissionFactory[C]

// CheckFunc is a mandatory permission check registered directly on an
// action, independent of the resolved permission set.
type CheckFunc[C, A any] func(ctx context.Context, caller C, args A) error

// PermissionCarrier is implemented by callers exposing a default permission
// set. The defaults apply to every action without an explicit resolver,
// unless the action opted out via SetUseCallerPermissions(false).
type PermissionCarrier[C any] interface {
	DefaultPermissions() []PermissionFactory[C]
}

// StaticPermission adapts an existing permission value into a factory that
// always returns it. Useful for stateless permissions.
func StaticPermission[C any](p Permission[C]) PermissionFactory[C] {
	return func() Permission[C] { return p }
}
