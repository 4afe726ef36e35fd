package action

import "context"

// BoundAction is an action resolved against a specific caller, mimicking a
// method bound to an instance. Binding is explicit: the pipeline has no
// notion of an ambient receiver.
type BoundAction[C, X, A, R any] struct {
	action     *Action[C, X, A, R]
	caller     C
	validators []Validator[C, X, A]
	overridden bool
}

// Bind resolves the action into a callable bound to the caller.
func (a *Action[C, X, A, R]) Bind(caller C) *BoundAction[C, X, A, R] {
	return &BoundAction[C, X, A, R]{action: a, caller: caller}
}

// Call forwards to the invocation protocol with the bound caller.
func (b *BoundAction[C, X, A, R]) Call(ctx context.Context, args A) (R, error) {
	return b.action.invoke(ctx, b.caller, b.effectiveValidators(), args)
}

// Action exposes the underlying descriptor for introspection and for
// building override scopes.
func (b *BoundAction[C, X, A, R]) Action() *Action[C, X, A, R] {
	return b.action
}

// Using returns a bound view with the validator list replaced wholesale.
func (b *BoundAction[C, X, A, R]) Using(validators ...Validator[C, X, A]) *BoundAction[C, X, A, R] {
	return &BoundAction[C, X, A, R]{
		action:     b.action,
		caller:     b.caller,
		validators: validators,
		overridden: true,
	}
}

// Only returns a bound view keeping only the named validators.
func (b *BoundAction[C, X, A, R]) Only(names ...string) *BoundAction[C, X, A, R] {
	return &BoundAction[C, X, A, R]{
		action:     b.action,
		caller:     b.caller,
		validators: filterValidators(b.effectiveValidators(), names, true),
		overridden: true,
	}
}

// Excluding returns a bound view dropping the named validators.
func (b *BoundAction[C, X, A, R]) Excluding(names ...string) *BoundAction[C, X, A, R] {
	return &BoundAction[C, X, A, R]{
		action:     b.action,
		caller:     b.caller,
		validators: filterValidators(b.effectiveValidators(), names, false),
		overridden: true,
	}
}

// effectiveValidators returns the override list when one is set, otherwise
// the action's live list.
func (b *BoundAction[C, X, A, R]) effectiveValidators() []Validator[C, X, A] {
	if b.overridden {
		return b.validators
	}
	return b.action.validators
}
