// Package action implements a guarded action pipeline: a single registered
// method wrapped with an ordered sequence of permission checks and
// business-rule validators, with an optional context value shared by all
// validators within one invocation.
//
// An Action is configured once at definition time and is read-only
// afterwards. Test-time substitution of the validator list goes through
// derived scopes (Using, Only, Excluding) which carry their own list and
// never touch the action, so concurrent invocations of the same action are
// unaffected by any live scope.
package action

import "context"

// MethodFunc is the unit-of-work guarded by an action.
type MethodFunc[C, A, R any] func(ctx context.Context, caller C, args A) (R, error)

// ContextFactory computes a value shared by every validator within a single
// invocation. It runs at most once per invocation, and not at all when the
// effective validator list is empty.
type ContextFactory[C, X, A any] func(ctx context.Context, caller C, args A) (X, error)

// Action wraps one registered method with ordered permission checks and
// validators. The type parameters are the caller, the validator context,
// the call arguments, and the method result.
type Action[C, X, A, R any] struct {
	name                 string
	method               MethodFunc[C, A, R]
	resolver             PermissionResolver[C, A]
	checks               []CheckFunc[C, A]
	validators           []Validator[C, X, A]
	contextFactory       ContextFactory[C, X, A]
	useCallerPermissions bool
}

// New creates an empty action descriptor with the given name.
func New[C, X, A, R any](name string) *Action[C, X, A, R] {
	return &Action[C, X, A, R]{
		name:                 name,
		useCallerPermissions: true,
	}
}

// Name returns the action identifier.
func (a *Action[C, X, A, R]) Name() string {
	return a.name
}

// Register binds the unit-of-work. An action accepts exactly one method;
// registering a second returns ErrAlreadyRegistered regardless of how the
// first registration went.
func (a *Action[C, X, A, R]) Register(method MethodFunc[C, A, R]) error {
	if a.method != nil {
		return ErrAlreadyRegistered
	}
	a.method = method
	return nil
}

// AddValidator appends a validator to the list. Validators run in append
// order. The validator is returned unchanged so call sites can keep a
// handle for later override scopes.
func (a *Action[C, X, A, R]) AddValidator(v Validator[C, X, A]) Validator[C, X, A] {
	a.validators = append(a.validators, v)
	return v
}

// AddPermissionCheck appends a mandatory permission check. Checks run after
// the resolved permission set, in append order, and are not affected by the
// resolver or the caller's default permissions.
func (a *Action[C, X, A, R]) AddPermissionCheck(check CheckFunc[C, A]) {
	a.checks = append(a.checks, check)
}

// SetPermissionResolver installs the function that computes the permission
// set for each invocation. Set-once: a second call returns *AlreadySetError.
func (a *Action[C, X, A, R]) SetPermissionResolver(resolver PermissionResolver[C, A]) error {
	if a.resolver != nil {
		return &AlreadySetError{Concept: "permission resolver"}
	}
	a.resolver = resolver
	return nil
}

// SetContextFactory installs the validator context factory. Set-once: a
// second call returns *AlreadySetError.
func (a *Action[C, X, A, R]) SetContextFactory(factory ContextFactory[C, X, A]) error {
	if a.contextFactory != nil {
		return &AlreadySetError{Concept: "validator context factory"}
	}
	a.contextFactory = factory
	return nil
}

// SetUseCallerPermissions controls whether the caller's default permission
// set applies when no resolver is registered. Defaults to true.
func (a *Action[C, X, A, R]) SetUseCallerPermissions(use bool) {
	a.useCallerPermissions = use
}

// Validators returns a copy of the registered validator list.
func (a *Action[C, X, A, R]) Validators() []Validator[C, X, A] {
	out := make([]Validator[C, X, A], len(a.validators))
	copy(out, a.validators)
	return out
}
