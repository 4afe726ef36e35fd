package action

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validatorNames[C, X, A any](validators []Validator[C, X, A]) []string {
	names := make([]string, 0, len(validators))
	for _, v := range validators {
		names = append(names, v.Name())
	}
	return names
}

func TestScope_Using(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)
	a.AddValidator(traceValidator("v1", &trace, true))
	v2 := a.AddValidator(traceValidator("v2", &trace, false))

	scope := a.Using(v2)
	assert.Equal(t, []string{"v2"}, validatorNames(scope.Validators()))

	_, err := scope.Invoke(context.Background(), &testCaller{name: "alice"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"validator:v2:", "method"}, trace)

	// The action's own list is untouched.
	assert.Equal(t, []string{"v1", "v2"}, validatorNames(a.Validators()))
}

func TestScope_UsingRestoresAfterFailure(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)
	a.AddValidator(traceValidator("v1", &trace, false))
	failing := traceValidator("boom", &trace, true)

	_, err := a.Using(failing).Invoke(context.Background(), &testCaller{name: "alice"}, 1)
	require.Error(t, err)

	// A failed scoped invocation leaves the action's list intact.
	assert.Equal(t, []string{"v1"}, validatorNames(a.Validators()))

	trace = nil
	_, err = a.Invoke(context.Background(), &testCaller{name: "alice"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"validator:v1:", "method"}, trace)
}

func TestScope_Only(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)
	a.AddValidator(traceValidator("v1", &trace, false))
	a.AddValidator(traceValidator("v2", &trace, false))
	a.AddValidator(traceValidator("v3", &trace, false))

	scope := a.Only("v3", "v1")
	// Relative order is preserved, not the argument order.
	assert.Equal(t, []string{"v1", "v3"}, validatorNames(scope.Validators()))

	_, err := scope.Invoke(context.Background(), &testCaller{name: "alice"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"validator:v1:", "validator:v3:", "method"}, trace)
}

func TestScope_Excluding(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)
	a.AddValidator(traceValidator("v1", &trace, true))
	a.AddValidator(traceValidator("v2", &trace, false))

	scope := a.Excluding("v1")
	assert.Equal(t, []string{"v2"}, validatorNames(scope.Validators()))

	_, err := scope.Invoke(context.Background(), &testCaller{name: "alice"}, 1)
	require.NoError(t, err)
}

func TestScope_DuplicateNamesMatchedTogether(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)
	a.AddValidator(traceValidator("dup", &trace, false))
	a.AddValidator(traceValidator("other", &trace, false))
	a.AddValidator(traceValidator("dup", &trace, false))

	// Validators sharing a name are matched indistinguishably.
	assert.Equal(t, []string{"dup", "dup"}, validatorNames(a.Only("dup").Validators()))
	assert.Equal(t, []string{"other"}, validatorNames(a.Excluding("dup").Validators()))
}

func TestScope_Nesting(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)
	a.AddValidator(traceValidator("v1", &trace, false))
	a.AddValidator(traceValidator("v2", &trace, false))
	a.AddValidator(traceValidator("v3", &trace, false))

	outer := a.Excluding("v1")
	inner := outer.Only("v2")

	// Each level filters the level it was derived from.
	assert.Equal(t, []string{"v2", "v3"}, validatorNames(outer.Validators()))
	assert.Equal(t, []string{"v2"}, validatorNames(inner.Validators()))

	// Leaving the inner scope means simply using the outer value again;
	// nothing was mutated anywhere.
	assert.Equal(t, []string{"v2", "v3"}, validatorNames(outer.Validators()))
	assert.Equal(t, []string{"v1", "v2", "v3"}, validatorNames(a.Validators()))
}

func TestScope_BindCallsWithOverride(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)
	a.AddValidator(traceValidator("v1", &trace, true))
	v2 := a.AddValidator(traceValidator("v2", &trace, false))

	caller := &testCaller{name: "alice"}
	got, err := a.Using(v2).Bind(caller).Call(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
	assert.Equal(t, []string{"validator:v2:", "method"}, trace)
}

func TestBoundAction_CallUsesLiveList(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)

	caller := &testCaller{name: "alice"}
	bound := a.Bind(caller)

	// A validator registered after binding is still observed.
	a.AddValidator(traceValidator("late", &trace, false))

	_, err := bound.Call(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"validator:late:", "method"}, trace)
}

func TestBoundAction_OverridesAndIntrospection(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)
	a.AddValidator(traceValidator("v1", &trace, true))
	a.AddValidator(traceValidator("v2", &trace, false))

	caller := &testCaller{name: "alice"}
	bound := a.Bind(caller)

	assert.Same(t, a, bound.Action())

	_, err := bound.Excluding("v1").Call(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"validator:v2:", "method"}, trace)

	// The plain bound callable still sees the full list.
	trace = nil
	_, err = bound.Call(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, []string{"validator:v1:"}, trace)
}

func TestBoundAction_UsingEmptyListRunsNoValidators(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)
	a.AddValidator(traceValidator("v1", &trace, true))

	_, err := a.Bind(&testCaller{name: "alice"}).Using().Call(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"method"}, trace)
}
