package testutil

import (
	"reflect"
	"testing"

	"github.com/stratoframe/forge"
	"github.com/stretchr/testify/require"
)

// ContainerBuilder provides a fluent interface for building a test
// Container pre-wired with this package's fixtures.
type ContainerBuilder struct {
	t        *testing.T
	opts     []forge.ContainerOption
	deferred []func(*forge.Container)
}

// NewContainerBuilder creates a ContainerBuilder whose Container will be
// rooted at Root, matching the fixtures registered by this package's
// init().
func NewContainerBuilder(t *testing.T) *ContainerBuilder {
	return &ContainerBuilder{
		t:    t,
		opts: []forge.ContainerOption{forge.WithComponentRoot(Root), forge.WithOverrideRoot(Root)},
	}
}

// WithOption appends an arbitrary forge.ContainerOption, for tests that
// need a logger or a private registry in addition to the fixture roots.
func (b *ContainerBuilder) WithOption(opt forge.ContainerOption) *ContainerBuilder {
	b.opts = append(b.opts, opt)
	return b
}

// WithOverride registers an override from capability to concrete once the
// Container is built. concrete must itself be instantiable.
func (b *ContainerBuilder) WithOverride(capability, concrete reflect.Type) *ContainerBuilder {
	b.t.Helper()
	b.deferred = append(b.deferred, func(c *forge.Container) {
		require.NoError(b.t, c.SetOverride(capability, concrete))
	})
	return b
}

// WithInitializer registers hook against capability once the Container is
// built.
func (b *ContainerBuilder) WithInitializer(capability reflect.Type, hook forge.Hook) *ContainerBuilder {
	b.deferred = append(b.deferred, func(c *forge.Container) {
		c.RegisterInitializer(capability, hook)
	})
	return b
}

// Build constructs the Container and applies every deferred registration
// in the order it was requested.
func (b *ContainerBuilder) Build() *forge.Container {
	c := forge.NewContainer(b.opts...)
	for _, fn := range b.deferred {
		fn(c)
	}
	return c
}
