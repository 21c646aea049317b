package probe

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixtureShared struct {
	SharedSentinel
}

type fixtureAncestor struct {
	AncestorSlot string `forge:"inject"`
}

type fixtureChild struct {
	fixtureAncestor
	ChildSlot string `forge:"inject"`
	Untagged  string
}

type fixtureSharedViaAncestor struct {
	fixtureShared
}

func TestDescribe_CollectsSlotsInAncestorFirstOrder(t *testing.T) {
	p := New()
	d := p.Describe(reflect.TypeOf(fixtureChild{}))

	require.Len(t, d.Slots, 2)
	assert.Equal(t, "AncestorSlot", d.Slots[0].Name)
	assert.Equal(t, "ChildSlot", d.Slots[1].Name)
}

func TestDescribe_AncestorChain(t *testing.T) {
	p := New()
	d := p.Describe(reflect.TypeOf(fixtureChild{}))

	require.Len(t, d.Ancestors, 1)
	assert.Equal(t, reflect.TypeOf(fixtureAncestor{}), d.Ancestors[0])
}

func TestDescribe_SharedDirect(t *testing.T) {
	p := New()
	d := p.Describe(reflect.TypeOf(fixtureShared{}))
	assert.True(t, d.Shared)
}

func TestDescribe_SharedInherited(t *testing.T) {
	p := New()
	d := p.Describe(reflect.TypeOf(fixtureSharedViaAncestor{}))
	assert.True(t, d.Shared, "sharing must be inherited through an embedded ancestor")
}

func TestDescribe_Unshared(t *testing.T) {
	p := New()
	d := p.Describe(reflect.TypeOf(fixtureChild{}))
	assert.False(t, d.Shared)
}

func TestDescribe_Memoized(t *testing.T) {
	p := New()
	first := p.Describe(reflect.TypeOf(fixtureChild{}))
	second := p.Describe(reflect.TypeOf(fixtureChild{}))
	assert.Same(t, first, second)
}

type fixtureCapability interface {
	DoThing()
}

type fixtureConcrete struct{}

func (fixtureConcrete) DoThing() {}

func TestDescribe_AbstractWithoutDefault(t *testing.T) {
	p := New()
	capability := reflect.TypeOf((*fixtureCapability)(nil)).Elem()

	d := p.Describe(capability)
	assert.True(t, d.Abstract)
	assert.Nil(t, d.Default)
}

func TestDescribe_AbstractDefaultImplementation(t *testing.T) {
	p := New()
	capability := reflect.TypeOf((*fixtureCapability)(nil)).Elem()
	concrete := reflect.TypeOf(fixtureConcrete{})

	// SetDefault must run before the capability's first Describe: the
	// resulting Descriptor is memoized for the Prober's lifetime, matching
	// the usual registration order (defaults are set up before load is
	// ever called).
	p.SetDefault(capability, concrete)

	d := p.Describe(capability)
	assert.True(t, d.Abstract)
	assert.Equal(t, concrete, d.Default)
}

func TestFormatType(t *testing.T) {
	out := FormatType(reflect.TypeOf(fixtureChild{}))
	assert.Contains(t, out, "fixtureChild")
}
