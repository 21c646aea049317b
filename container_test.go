package forge_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/stratoframe/forge"
	"github.com/stratoframe/forge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 1 — shared uniqueness (spec.md §8).
func TestContainer_SharedUniqueness(t *testing.T) {
	c := testutil.NewContainerBuilder(t).Build()

	first, err := c.Load("Bus", false)
	require.NoError(t, err)

	second, err := c.Load("Bus", false)
	require.NoError(t, err)

	testutil.AssertSameInstance(t, first, second)
}

func TestContainer_Unshared_DistinctInstances(t *testing.T) {
	c := testutil.NewContainerBuilder(t).Build()

	first, err := c.Load("RealPlaces", false)
	require.NoError(t, err)
	second, err := c.Load("RealPlaces", false)
	require.NoError(t, err)

	testutil.AssertDifferentInstances(t, first, second)
}

// Scenario 2 — default implementation, overridden.
func TestContainer_DefaultImplementation_AndOverride(t *testing.T) {
	c := testutil.NewContainerBuilder(t).Build()

	clockCapability := testutil.CapabilityOf[testutil.Clock]()
	require.NoError(t, forge.RegisterDefault[testutil.Clock](c, "SystemClock"))

	instance, err := c.LoadType(clockCapability, false)
	require.NoError(t, err)
	assert.IsType(t, &testutil.SystemClock{}, instance)

	fixed := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, c.SetOverride(clockCapability, reflect.TypeOf(&testutil.FakeClock{})))

	instance, err = c.LoadType(clockCapability, false)
	require.NoError(t, err)
	fake, ok := instance.(*testutil.FakeClock)
	require.True(t, ok, "expected *FakeClock, got %T", instance)
	fake.Fixed = fixed
	assert.Equal(t, fixed, fake.Now())
}

func TestContainer_AbstractWithoutDefault_Fails(t *testing.T) {
	c := testutil.NewContainerBuilder(t).Build()

	placesCapability := testutil.CapabilityOf[testutil.Places]()
	_, err := c.LoadType(placesCapability, false)
	testutil.AssertUnresolvableAbstract(t, err)
}

// Scenario 3 — ancestor-slot ordering.
func TestContainer_AncestorSlotOrdering(t *testing.T) {
	c := testutil.NewContainerBuilder(t).Build()

	instance, err := c.Load("Child", false)
	require.NoError(t, err)

	child, ok := instance.(*testutil.Child)
	require.True(t, ok)
	require.NotNil(t, child.A, "ancestor slot A was not injected")
	require.NotNil(t, child.B, "descendant slot B was not injected")
	assert.Equal(t, []string{"a", "b"}, child.Order)
}

// Scenario 4 — hook fan-out, once per instance.
func TestContainer_HookFanOut(t *testing.T) {
	var started []any
	hookCapability := testutil.CapabilityOf[testutil.HasActivity]()

	c := testutil.NewContainerBuilder(t).
		WithInitializer(hookCapability, func(instance any) {
			started = append(started, instance)
			instance.(testutil.HasActivity).Start()
		}).
		Build()

	p1, err := c.Load("P1", false)
	require.NoError(t, err)
	p2, err := c.Load("P2", false)
	require.NoError(t, err)

	require.Len(t, started, 2)
	assert.Same(t, p1, started[0])
	assert.Same(t, p2, started[1])
	assert.True(t, p1.(*testutil.P1).Started)
	assert.True(t, p2.(*testutil.P2).Started)
}

// Scenario 5 — a cycle between two Shared components terminates instead
// of recursing forever. The second time resolution reaches CyclicA (via
// CyclicB's own injection), the publish-before-construct step has already
// placed CyclicA's not-yet-injected instance in the cache, so that same
// instance is returned rather than allocating a second one.
func TestContainer_SharedCycleTerminates(t *testing.T) {
	c := testutil.NewContainerBuilder(t).Build()

	instance, err := c.Load("CyclicA", false)
	require.NoError(t, err)

	a, ok := instance.(*testutil.CyclicA)
	require.True(t, ok, "expected *CyclicA, got %T", instance)
	require.NotNil(t, a.B, "CyclicA.B was not injected")
	require.NotNil(t, a.B.A, "CyclicB.A was not injected")
	assert.Same(t, a, a.B.A, "the cycle must terminate on the same shared CyclicA instance")
}

func TestContainer_ResolveInto_NoHooks(t *testing.T) {
	var hookFired bool
	hookCapability := testutil.CapabilityOf[testutil.HasActivity]()

	c := testutil.NewContainerBuilder(t).
		WithInitializer(hookCapability, func(any) { hookFired = true }).
		Build()

	existing := &testutil.P1{}
	require.NoError(t, c.ResolveInto(existing))
	assert.False(t, hookFired, "ResolveInto must not fire hooks")
}

// TestContainer_OverrideCycle exercises the transitive-override decision
// (spec.md §9, SPEC_FULL.md §4.C): an override target may itself be the
// capability of a further override, so a chain of concrete-to-concrete
// substitutions can loop back on itself. SetOverride only requires that
// each individual target be concrete, so two concrete types can legally
// override one another and form a two-node cycle.
func TestContainer_OverrideCycle(t *testing.T) {
	c := testutil.NewContainerBuilder(t).Build()

	fakeClockType := reflect.TypeOf(&testutil.FakeClock{})
	systemClockType := reflect.TypeOf(&testutil.SystemClock{})

	require.NoError(t, c.SetOverride(fakeClockType, systemClockType))
	require.NoError(t, c.SetOverride(systemClockType, fakeClockType))

	_, err := c.LoadType(fakeClockType, false)
	testutil.AssertOverrideCycle(t, err)
}

func TestContainer_RetainedRoots(t *testing.T) {
	c := testutil.NewContainerBuilder(t).Build()

	_, err := c.Load("Bus", true)
	require.NoError(t, err)
	_, err = c.Load("RealPlaces", true)
	require.NoError(t, err)

	roots := c.RetainedRoots()
	require.Len(t, roots, 2)
}

func TestContainer_LoadUnknownName(t *testing.T) {
	c := testutil.NewContainerBuilder(t).Build()

	_, err := c.Load("DoesNotExist", false)
	testutil.AssertTypeNotFound(t, err)
}
