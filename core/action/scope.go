package action

import "context"

// Scope is a view of an action with a substituted validator list. The
// substituted list lives on the scope value itself and the action is never
// mutated, so the action's own list is intact on every exit path and
// concurrent invocations of the action do not observe the override.
//
// Deriving a scope from a scope nests overrides: each level filters or
// replaces the list of the level it was derived from.
type Scope[C, X, A, R any] struct {
	action     *Action[C, X, A, R]
	validators []Validator[C, X, A]
}

// Using returns a scope with the validator list replaced wholesale.
func (a *Action[C, X, A, R]) Using(validators ...Validator[C, X, A]) *Scope[C, X, A, R] {
	return &Scope[C, X, A, R]{action: a, validators: validators}
}

// Only returns a scope keeping only the validators with the given names,
// preserving relative order.
func (a *Action[C, X, A, R]) Only(names ...string) *Scope[C, X, A, R] {
	return &Scope[C, X, A, R]{action: a, validators: filterValidators(a.validators, names, true)}
}

// Excluding returns a scope dropping the validators with the given names,
// preserving relative order.
func (a *Action[C, X, A, R]) Excluding(names ...string) *Scope[C, X, A, R] {
	return &Scope[C, X, A, R]{action: a, validators: filterValidators(a.validators, names, false)}
}

// Using replaces the scope's validator list wholesale.
func (s *Scope[C, X, A, R]) Using(validators ...Validator[C, X, A]) *Scope[C, X, A, R] {
	return &Scope[C, X, A, R]{action: s.action, validators: validators}
}

// Only keeps only the named validators from this scope's list.
func (s *Scope[C, X, A, R]) Only(names ...string) *Scope[C, X, A, R] {
	return &Scope[C, X, A, R]{action: s.action, validators: filterValidators(s.validators, names, true)}
}

// Excluding drops the named validators from this scope's list.
func (s *Scope[C, X, A, R]) Excluding(names ...string) *Scope[C, X, A, R] {
	return &Scope[C, X, A, R]{action: s.action, validators: filterValidators(s.validators, names, false)}
}

// Validators returns a copy of the scope's validator list.
func (s *Scope[C, X, A, R]) Validators() []Validator[C, X, A] {
	out := make([]Validator[C, X, A], len(s.validators))
	copy(out, s.validators)
	return out
}

// Invoke runs the full invocation protocol with the scope's validator list.
func (s *Scope[C, X, A, R]) Invoke(ctx context.Context, caller C, args A) (R, error) {
	return s.action.invoke(ctx, caller, s.validators, args)
}

// Bind resolves the scope into a callable bound to the caller.
func (s *Scope[C, X, A, R]) Bind(caller C) *BoundAction[C, X, A, R] {
	return &BoundAction[C, X, A, R]{
		action:     s.action,
		caller:     caller,
		validators: s.validators,
		overridden: true,
	}
}
