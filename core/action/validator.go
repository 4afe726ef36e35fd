package action

import "context"

// Validator is a named business-rule predicate. The name identifies the
// validator for Only and Excluding scopes; two validators sharing a name
// are matched indistinguishably, which is a documented limitation.
type Validator[C, X, A any] struct {
	name     string
	receiver any
	check    func(ctx context.Context, caller C, vctx X, args A) error
}

// NewValidator wraps a plain validation function. The current caller is
// passed explicitly on every invocation, so the same validator value can be
// shared by every caller of a shared action. A method value on some other
// object whose signature accepts the caller also belongs here: its own
// receiver travels in the closure while the caller is still injected.
func NewValidator[C, X, A any](name string, check func(ctx context.Context, caller C, vctx X, args A) error) Validator[C, X, A] {
	return Validator[C, X, A]{name: name, check: check}
}

// BoundValidator wraps a method value already closed over its receiver,
// typically supplied through an override scope from the caller itself. The
// receiver identity is recorded so the pipeline knows the closure already
// supplies the caller and must not inject it a second time.
//
// A bound validator must not be shared across callers: the closure has no
// caller parameter, so when the invoking caller differs from the recorded
// receiver, the check runs without any caller at all. Receiver and BoundTo
// exist for introspection only; the pipeline never consults them to route
// a caller. A validator on one object that needs to see the caller belongs
// in NewValidator instead.
//
// Receivers are compared by interface equality; callers should be
// pointer-shaped.
func BoundValidator[C, X, A any](receiver C, name string, check func(ctx context.Context, vctx X, args A) error) Validator[C, X, A] {
	return Validator[C, X, A]{
		name:     name,
		receiver: receiver,
		check: func(ctx context.Context, _ C, vctx X, args A) error {
			return check(ctx, vctx, args)
		},
	}
}

// Name returns the validator identifier used by Only and Excluding.
func (v Validator[C, X, A]) Name() string {
	return v.name
}

// Receiver returns the identity the validator is bound to, or nil for a
// plain validator.
func (v Validator[C, X, A]) Receiver() any {
	return v.receiver
}

// BoundTo reports whether the validator is bound to the given caller. A
// bound validator invoked for its own receiver takes the caller from its
// closure rather than from the pipeline.
func (v Validator[C, X, A]) BoundTo(caller C) bool {
	return v.receiver != nil && v.receiver == any(caller)
}

func filterValidators[C, X, A any](validators []Validator[C, X, A], names []string, keep bool) []Validator[C, X, A] {
	named := make(map[string]bool, len(names))
	for _, n := range names {
		named[n] = true
	}
	out := make([]Validator[C, X, A], 0, len(validators))
	for _, v := range validators {
		if named[v.name] == keep {
			out = append(out, v)
		}
	}
	return out
}
