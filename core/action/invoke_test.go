package action

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticResolver(factories ...PermissionFactory[*testCaller]) PermissionResolver[*testCaller, int] {
	return func(ctx context.Context, caller *testCaller, args int) []PermissionFactory[*testCaller] {
		return factories
	}
}

func TestInvoke_ReturnsMethodResult(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)

	got, err := a.Invoke(context.Background(), &testCaller{name: "alice"}, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, []string{"method"}, trace)
}

func TestInvoke_ExecutionOrder(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)

	require.NoError(t, a.SetPermissionResolver(staticResolver(
		StaticPermission[*testCaller](&testPermission{name: "first", trace: &trace}),
		StaticPermission[*testCaller](&testPermission{name: "second", trace: &trace}),
	)))
	a.AddPermissionCheck(func(ctx context.Context, caller *testCaller, args int) error {
		trace = append(trace, "check:mandatory")
		return nil
	})
	a.AddValidator(traceValidator("v1", &trace, false))
	a.AddValidator(traceValidator("v2", &trace, false))

	_, err := a.Invoke(context.Background(), &testCaller{name: "alice"}, 1)
	require.NoError(t, err)

	// Resolved permissions run first, then mandatory checks, then
	// validators in registration order, then the method.
	assert.Equal(t, []string{
		"perm:first",
		"perm:second",
		"check:mandatory",
		"validator:v1:",
		"validator:v2:",
		"method",
	}, trace)
}

func TestInvoke_PermissionFailureAborts(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)

	require.NoError(t, a.SetPermissionResolver(staticResolver(
		StaticPermission[*testCaller](&testPermission{name: "p1", trace: &trace}),
		StaticPermission[*testCaller](&testPermission{name: "p2", fail: true, trace: &trace}),
		StaticPermission[*testCaller](&testPermission{name: "p3", trace: &trace}),
	)))
	a.AddValidator(traceValidator("v1", &trace, false))

	_, err := a.Invoke(context.Background(), &testCaller{name: "alice"}, 1)

	var permErr *PermissionError
	require.ErrorAs(t, err, &permErr)
	assert.Equal(t, "p2", permErr.Permission)

	// p1 ran exactly once, p3 and everything after never ran.
	assert.Equal(t, []string{"perm:p1", "perm:p2"}, trace)
}

func TestInvoke_ValidatorFailureAborts(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)
	a.AddValidator(traceValidator("v1", &trace, false))
	a.AddValidator(traceValidator("v2", &trace, true))
	a.AddValidator(traceValidator("v3", &trace, false))

	_, err := a.Invoke(context.Background(), &testCaller{name: "alice"}, 1)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "v2 failed", valErr.Message)
	assert.Equal(t, []string{"validator:v1:", "validator:v2:"}, trace)
}

func TestInvoke_ContextFactoryOncePerInvocation(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)

	calls := 0
	require.NoError(t, a.SetContextFactory(func(ctx context.Context, caller *testCaller, args int) (string, error) {
		calls++
		return "ctx", nil
	}))
	a.AddValidator(traceValidator("v1", &trace, false))
	a.AddValidator(traceValidator("v2", &trace, false))

	caller := &testCaller{name: "alice"}
	_, err := a.Invoke(context.Background(), caller, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// Never cached across invocations.
	_, err = a.Invoke(context.Background(), caller, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	// Both validators saw the shared context.
	assert.Contains(t, trace, "validator:v1:ctx")
	assert.Contains(t, trace, "validator:v2:ctx")
}

func TestInvoke_ContextFactorySkippedWithoutValidators(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)

	calls := 0
	require.NoError(t, a.SetContextFactory(func(ctx context.Context, caller *testCaller, args int) (string, error) {
		calls++
		return "ctx", nil
	}))

	_, err := a.Invoke(context.Background(), &testCaller{name: "alice"}, 1)
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestInvoke_ContextFactorySkippedWhenScopeEmptiesValidators(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)

	calls := 0
	require.NoError(t, a.SetContextFactory(func(ctx context.Context, caller *testCaller, args int) (string, error) {
		calls++
		return "ctx", nil
	}))
	a.AddValidator(traceValidator("v1", &trace, false))

	_, err := a.Using().Invoke(context.Background(), &testCaller{name: "alice"}, 1)
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestInvoke_ZeroContextWithoutFactory(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)
	a.AddValidator(traceValidator("v1", &trace, false))

	_, err := a.Invoke(context.Background(), &testCaller{name: "alice"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"validator:v1:", "method"}, trace)
}

func TestInvoke_ContextFactoryErrorAborts(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)

	factoryErr := errors.New("context unavailable")
	require.NoError(t, a.SetContextFactory(func(ctx context.Context, caller *testCaller, args int) (string, error) {
		return "", factoryErr
	}))
	require.NoError(t, a.SetPermissionResolver(staticResolver(
		StaticPermission[*testCaller](&testPermission{name: "p1", trace: &trace}),
	)))
	a.AddValidator(traceValidator("v1", &trace, false))

	_, err := a.Invoke(context.Background(), &testCaller{name: "alice"}, 1)
	assert.ErrorIs(t, err, factoryErr)

	// The context is computed before any permission runs.
	assert.Empty(t, trace)
}

func TestInvoke_CallerDefaultPermissions(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)

	caller := &testCaller{
		name: "alice",
		perms: []PermissionFactory[*testCaller]{
			StaticPermission[*testCaller](&testPermission{name: "default", trace: &trace}),
		},
	}

	_, err := a.Invoke(context.Background(), caller, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"perm:default", "method"}, trace)
}

func TestInvoke_ResolverWinsOverCallerDefaults(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)

	require.NoError(t, a.SetPermissionResolver(staticResolver(
		StaticPermission[*testCaller](&testPermission{name: "resolved", trace: &trace}),
	)))

	caller := &testCaller{
		name: "alice",
		perms: []PermissionFactory[*testCaller]{
			StaticPermission[*testCaller](&testPermission{name: "default", trace: &trace}),
		},
	}

	_, err := a.Invoke(context.Background(), caller, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"perm:resolved", "method"}, trace)
}

func TestInvoke_NoDefaultPermissions(t *testing.T) {
	// A caller with an empty default set and no resolver: all permission
	// steps are skipped and the rest of the pipeline runs normally.
	var trace []string
	a := newTestAction(t, &trace)
	a.AddValidator(traceValidator("v1", &trace, false))

	got, err := a.Invoke(context.Background(), &testCaller{name: "alice"}, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, []string{"validator:v1:", "method"}, trace)
}

func TestInvoke_UseCallerPermissionsDisabled(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)
	a.SetUseCallerPermissions(false)

	caller := &testCaller{
		name: "alice",
		perms: []PermissionFactory[*testCaller]{
			StaticPermission[*testCaller](&testPermission{name: "default", fail: true, trace: &trace}),
		},
	}

	_, err := a.Invoke(context.Background(), caller, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"method"}, trace)
}

func TestInvoke_PermissionFactoryInstantiatedPerInvocation(t *testing.T) {
	var trace []string
	a := newTestAction(t, &trace)

	instantiations := 0
	require.NoError(t, a.SetPermissionResolver(staticResolver(
		func() Permission[*testCaller] {
			instantiations++
			return &testPermission{name: "fresh", trace: &trace}
		},
	)))

	caller := &testCaller{name: "alice"}
	_, err := a.Invoke(context.Background(), caller, 1)
	require.NoError(t, err)
	_, err = a.Invoke(context.Background(), caller, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, instantiations)
}

func TestInvoke_MethodErrorPropagatesUnchanged(t *testing.T) {
	domainErr := errors.New("inventory exhausted")

	a := New[*testCaller, string, int, int]("test.action")
	require.NoError(t, a.Register(func(ctx context.Context, caller *testCaller, args int) (int, error) {
		return 0, domainErr
	}))

	_, err := a.Invoke(context.Background(), &testCaller{name: "alice"}, 1)
	assert.Equal(t, domainErr, err)
}
