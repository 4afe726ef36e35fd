package action

import "context"

// Invoke runs the full invocation protocol against the caller:
//
//  1. Compute the validator context, only when the effective validator list
//     is non-empty and a context factory is set.
//  2. Resolve the permission set: the resolver when one is registered,
//     otherwise the caller's default permission factories (unless the
//     action opted out), otherwise none.
//  3. Instantiate each resolved permission, in order, and run its check.
//  4. Run each mandatory permission check, in order.
//  5. Run each validator, in order.
//  6. Invoke the registered method and return its result.
//
// Every stage is fail-fast: the first error aborts the invocation and
// propagates unwrapped. The method runs only when every check passed.
func (a *Action[C, X, A, R]) Invoke(ctx context.Context, caller C, args A) (R, error) {
	return a.invoke(ctx, caller, a.validators, args)
}

func (a *Action[C, X, A, R]) invoke(ctx context.Context, caller C, validators []Validator[C, X, A], args A) (R, error) {
	var zero R
	if a.method == nil {
		return zero, ErrNotRegistered
	}

	// The context factory can be expensive; skip it entirely when nothing
	// will consume its output.
	var vctx X
	if len(validators) > 0 && a.contextFactory != nil {
		computed, err := a.contextFactory(ctx, caller, args)
		if err != nil {
			return zero, err
		}
		vctx = computed
	}

	for _, factory := range a.resolvePermissions(ctx, caller, args) {
		if err := factory().Check(ctx, caller, args); err != nil {
			return zero, err
		}
	}

	for _, check := range a.checks {
		if err := check(ctx, caller, args); err != nil {
			return zero, err
		}
	}

	for _, v := range validators {
		if err := v.check(ctx, caller, vctx, args); err != nil {
			return zero, err
		}
	}

	return a.method(ctx, caller, args)
}

// resolvePermissions returns the ordered permission factories for one
// invocation. The resolver wins over the caller's defaults; mandatory
// checks registered with AddPermissionCheck run afterwards either way.
func (a *Action[C, X, A, R]) resolvePermissions(ctx context.Context, caller C, args A) []PermissionFactory[C] {
	if a.resolver != nil {
		return a.resolver(ctx, caller, args)
	}
	if !a.useCallerPermissions {
		return nil
	}
	if carrier, ok := any(caller).(PermissionCarrier[C]); ok {
		return carrier.DefaultPermissions()
	}
	return nil
}
