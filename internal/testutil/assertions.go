package testutil

import (
	"reflect"
	"testing"

	"github.com/stratoframe/forge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertLoadable loads name from c and fails the test if resolution errors
// or returns a nil instance.
func AssertLoadable(t *testing.T, c *forge.Container, name string) any {
	t.Helper()
	instance, err := c.Load(name, false)
	require.NoError(t, err, "failed to load %q", name)
	require.NotNil(t, instance, "loaded %q is nil", name)
	return instance
}

// AssertLoadFails checks that loading name from c fails.
func AssertLoadFails(t *testing.T, c *forge.Container, name string) error {
	t.Helper()
	_, err := c.Load(name, false)
	assert.Error(t, err, "expected loading %q to fail", name)
	return err
}

// AssertSameInstance verifies two resolved components are the same
// instance — the shared-uniqueness invariant (spec.md invariant 1).
func AssertSameInstance(t *testing.T, expected, actual any, msgAndArgs ...any) {
	t.Helper()
	assert.Same(t, expected, actual, msgAndArgs...)
}

// AssertDifferentInstances verifies two resolved components are distinct
// instances.
func AssertDifferentInstances(t *testing.T, first, second any, msgAndArgs ...any) {
	t.Helper()
	assert.NotSame(t, first, second, msgAndArgs...)
}

// AssertImplements checks that implementation implements the interface
// named by a nil pointer to it, e.g. (*Clock)(nil).
func AssertImplements(t *testing.T, interfacePtr, implementation any) {
	t.Helper()
	assert.Implements(t, interfacePtr, implementation)
}

// AssertTypeNotFound checks that err is a *forge.TypeNotFoundError.
func AssertTypeNotFound(t *testing.T, err error) {
	t.Helper()
	assert.True(t, forge.IsTypeNotFound(err), "expected TypeNotFoundError, got: %v", err)
}

// AssertUnresolvableAbstract checks that err is a
// *forge.UnresolvableAbstractError.
func AssertUnresolvableAbstract(t *testing.T, err error) {
	t.Helper()
	assert.True(t, forge.IsUnresolvableAbstract(err), "expected UnresolvableAbstractError, got: %v", err)
}

// AssertInjectionFailure checks that err is a
// *forge.InjectionFailureError.
func AssertInjectionFailure(t *testing.T, err error) {
	t.Helper()
	assert.True(t, forge.IsInjectionFailure(err), "expected InjectionFailureError, got: %v", err)
}

// AssertConfigParseError checks that err is a *forge.ConfigParseError.
func AssertConfigParseError(t *testing.T, err error) {
	t.Helper()
	assert.True(t, forge.IsConfigParseError(err), "expected ConfigParseError, got: %v", err)
}

// AssertOverrideCycle checks that err is a *forge.OverrideCycleError.
func AssertOverrideCycle(t *testing.T, err error) {
	t.Helper()
	var target *forge.OverrideCycleError
	require.ErrorAs(t, err, &target, "expected OverrideCycleError, got: %v", err)
}

// CapabilityOf returns the reflect.Type of the interface T, for passing to
// Container.SetOverride / RegisterInitializer in tests.
func CapabilityOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ConcreteOf returns the reflect.Type of *T, the pointer shape components
// are allocated as.
func ConcreteOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil))
}
