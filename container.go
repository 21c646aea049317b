package forge

import (
	"log"
	"os"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"github.com/stratoframe/forge/internal/probe"
	"github.com/stratoframe/forge/internal/registry"
)

// defaultRegistry is the process-wide Type Registry every Container uses
// unless WithRegistry supplies a private one. Component registration is
// global — the same pattern database/sql uses for drivers — because
// components typically register themselves from an init() function, long
// before any particular Container exists to own them.
var defaultRegistry = registry.New()

// RegisterComponent binds fullName to factory in the process-wide
// registry. fullName must already be root-qualified: the component root
// prefix a Container is configured with, plus the bare name a
// configuration document will use to request it. factory must return a
// fresh, zero-valued pointer each call and must not run the component's
// own construction logic.
func RegisterComponent(fullName string, factory func() any) {
	defaultRegistry.Register(fullName, factory)
}

// Container is the Container / Retention component (spec.md §4.F): it
// holds the shared-instance cache, the override table, the initializer
// index, the retained-root list, and acts as the ambient assembly target.
//
// A Container is not safe for concurrent use during assembly — resolve,
// Load, and registration calls must be serialized by the caller (spec.md
// §5). Once components are built, Forge makes no further claims about
// their own concurrency safety.
type Container struct {
	id uuid.UUID

	registry     *registry.Registry
	prober       *probe.Prober
	overrides    *overrideTable
	initializers *initializerIndex
	cache        *instanceCache
	engine       *engine

	componentRoot string
	overrideRoot  string

	retainedRoots []any

	logger *log.Logger
}

// ContainerOption configures a Container at construction time.
type ContainerOption func(*Container)

// WithComponentRoot fixes the prefix prepended to names in Service/Plugin
// directives and to names passed to Load.
func WithComponentRoot(prefix string) ContainerOption {
	return func(c *Container) { c.componentRoot = prefix }
}

// WithOverrideRoot fixes the prefix prepended to both the capability and
// target names in Override directives.
func WithOverrideRoot(prefix string) ContainerOption {
	return func(c *Container) { c.overrideRoot = prefix }
}

// WithRegistry supplies a private Type Registry instead of the process-wide
// default — useful for tests that register their own fixture components
// without polluting the global namespace other tests share.
func WithRegistry(r *registry.Registry) ContainerOption {
	return func(c *Container) { c.registry = r }
}

// WithLogger supplies the logger used for the loader's "skipped malformed
// directive" diagnostics. Defaults to a logger writing to os.Stderr.
func WithLogger(l *log.Logger) ContainerOption {
	return func(c *Container) { c.logger = l }
}

// NewContainer builds a Container and makes it the ambient "current"
// container (see Current).
func NewContainer(opts ...ContainerOption) *Container {
	c := &Container{
		id:           uuid.New(),
		registry:     defaultRegistry,
		prober:       probe.New(),
		overrides:    newOverrideTable(),
		initializers: nil,
		cache:        newInstanceCache(),
		logger:       log.New(os.Stderr, "forge: ", log.LstdFlags),
	}
	c.initializers = newInitializerIndex(c.overrides)

	for _, opt := range opts {
		opt(c)
	}

	c.engine = &engine{
		id:           c.id.String(),
		registry:     c.registry,
		prober:       c.prober,
		overrides:    c.overrides,
		initializers: c.initializers,
		cache:        c.cache,
	}

	setCurrent(c)
	return c
}

// ID returns this container's identity — minted once at construction so
// that multiple coexisting containers (the ambient-container design note
// anticipates this for test isolation) can be told apart in logs and
// error messages.
func (c *Container) ID() uuid.UUID { return c.id }

// Load resolves name under the component root and builds it, optionally
// retaining it as a root (spec.md §4.F, §4.G).
func (c *Container) Load(name string, retain bool) (any, error) {
	entry, err := c.registry.Lookup(c.componentRoot + name)
	if err != nil {
		return nil, &TypeNotFoundError{
			Name:        name,
			FullName:    c.componentRoot + name,
			Root:        "component",
			ContainerID: c.id.String(),
			Cause:       err,
		}
	}

	return c.LoadType(entry.Type, retain)
}

// LoadType resolves t directly — the entry point for callers that already
// hold a reflect.Type (capability or concrete), bypassing name lookup.
func (c *Container) LoadType(t reflect.Type, retain bool) (any, error) {
	instance, err := c.engine.resolve(t)
	if err != nil {
		return nil, err
	}

	if retain {
		c.retainedRoots = append(c.retainedRoots, instance)
	}

	return instance, nil
}

// ResolveInto injects dependencies into an externally-owned instance the
// container did not allocate — no sharing gate, no own-construction call,
// no hooks (spec.md §4.F).
func (c *Container) ResolveInto(existing any) error {
	return c.engine.resolveInto(existing)
}

// SetOverride registers concrete as the substitute for capability.
// concrete must be instantiable (not itself abstract).
func (c *Container) SetOverride(capability, concrete reflect.Type) error {
	if concrete.Kind() == reflect.Interface {
		return ErrOverrideConcreteRequired
	}
	c.overrides.set(capability, concrete)
	return nil
}

// RemoveOverride removes any override registered for capability. A no-op
// if none was registered.
func (c *Container) RemoveOverride(capability reflect.Type) {
	c.overrides.remove(capability)
}

// RegisterInitializer registers hook against capability, firing once per
// resolved instance whose capability chain includes it. Registering twice
// replaces the prior hook.
func (c *Container) RegisterInitializer(capability reflect.Type, hook Hook) {
	c.initializers.register(capability, hook)
}

// IsShared reports whether t (or an ancestor of t) is marked shared.
func (c *Container) IsShared(t reflect.Type) bool {
	return c.prober.Describe(t).Shared
}

// RetainedRoots returns the components retained via Load(..., true) or
// LoadType(..., true), in first-insertion order.
func (c *Container) RetainedRoots() []any {
	out := make([]any, len(c.retainedRoots))
	copy(out, c.retainedRoots)
	return out
}

// MakeCurrent promotes c back to the ambient "current" container — useful
// after constructing several containers for test isolation, to return the
// ambient handle to one of them explicitly.
func (c *Container) MakeCurrent() { setCurrent(c) }

var (
	currentMu sync.RWMutex
	current   *Container
)

func setCurrent(c *Container) {
	currentMu.Lock()
	defer currentMu.Unlock()
	current = c
}

// Current returns the most-recently-constructed Container — the ambient
// handle host code can discover if it wants to self-wire without being
// handed a Container explicitly. Tests that need isolation should
// construct their own Container and address it directly instead.
func Current() *Container {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}
