package forge

import (
	"reflect"

	"github.com/stratoframe/forge/internal/probe"
	"github.com/stratoframe/forge/internal/registry"
)

// engine is the Resolution Engine (spec.md §4.E). It is owned by a
// Container and holds no state of its own beyond what the container
// already owns — it exists as a separate type purely to keep the
// eleven-step algorithm readable apart from Container's public surface.
type engine struct {
	id           string
	registry     *registry.Registry
	prober       *probe.Prober
	overrides    *overrideTable
	initializers *initializerIndex
	cache        *instanceCache
}

// resolve is the single central operation of spec.md §4.E: given a
// requested type, it produces an instance obeying overrides, abstractness
// rules, and sharing, injecting every declared dependency slot before the
// component's own construction runs, then firing applicable hooks.
func (e *engine) resolve(requested reflect.Type) (any, error) {
	concrete, overridden, err := e.resolveOverrideTarget(requested)
	if err != nil {
		return nil, err
	}

	if !overridden {
		if requested.Kind() == reflect.Interface {
			// Step 2: abstractness check.
			desc := e.prober.Describe(requested)
			if desc.Default == nil {
				return nil, &UnresolvableAbstractError{Requested: requested, ContainerID: e.id}
			}
			concrete = desc.Default
		} else {
			// Step 3: concrete direct path.
			concrete = requested
		}
	}

	desc := e.prober.Describe(concrete)

	// Step 5: sharing gate.
	if desc.Shared {
		if instance, ok := e.cache.get(concrete); ok {
			return instance, nil
		}
	}

	// Step 6: allocation, without running the component's own construction.
	factory, ok := e.registry.LookupType(concrete)
	if !ok {
		return nil, &TypeNotFoundError{
			Name:        probe.FormatType(concrete),
			FullName:    probe.FormatType(concrete),
			Root:        "component",
			ContainerID: e.id,
			Cause:       &registry.NotFoundError{FullName: probe.FormatType(concrete)},
		}
	}
	instance := factory()
	if instance == nil {
		return nil, ErrNilComponent
	}

	// Step 7: publish before construct — only for shared types. This is
	// what lets a cycle among shared components terminate: the second
	// time the cycle reaches this concrete type, step 5 above finds this
	// not-yet-injected instance and returns it immediately.
	if desc.Shared {
		e.cache.publish(concrete, instance)
	}

	// Step 8: inject dependencies, ancestor slots before descendant slots.
	structValue := reflect.ValueOf(instance)
	if structValue.Kind() == reflect.Pointer {
		structValue = structValue.Elem()
	}
	for _, slot := range desc.Slots {
		depInstance, err := e.resolve(slot.Type)
		if err != nil {
			return nil, err
		}

		if err := probe.SetField(structValue, slot.Index, reflect.ValueOf(depInstance)); err != nil {
			return nil, &InjectionFailureError{
				Owner:       slot.Owner,
				Slot:        slot.Name,
				SlotType:    slot.Type,
				ContainerID: e.id,
				Cause:       err,
			}
		}
	}

	// Step 9: the component's own construction, now free to read its
	// injected slots.
	if c, ok := instance.(Constructible); ok {
		c.Construct()
	}

	// Step 10: hook fan-out over the concrete type's ancestor chain.
	for _, hook := range e.initializers.applicableHooks(concrete, desc.Ancestors) {
		hook(instance)
	}

	return instance, nil
}

// resolveOverrideTarget implements step 1 and this module's resolution of
// the "recursive override" open question (spec.md §9): an override is
// followed transitively (I -> J -> K resolves to K) rather than applied
// only once, guarded against a cycle.
func (e *engine) resolveOverrideTarget(start reflect.Type) (reflect.Type, bool, error) {
	concrete, ok := e.overrides.lookup(start)
	if !ok {
		return start, false, nil
	}

	visited := map[reflect.Type]bool{start: true, concrete: true}
	chain := []reflect.Type{start, concrete}
	cur := concrete
	for {
		next, ok := e.overrides.lookup(cur)
		if !ok {
			return cur, true, nil
		}
		if visited[next] {
			chain = append(chain, next)
			return nil, true, &OverrideCycleError{Chain: chain, ContainerID: e.id}
		}
		visited[next] = true
		chain = append(chain, next)
		cur = next
	}
}

// resolveInto runs step 8 only — dependency injection — over an
// externally-owned instance the engine did not allocate, with no sharing,
// no hooks, and no own-construction call (spec.md §4.F resolveInto).
func (e *engine) resolveInto(instance any) error {
	t := reflect.TypeOf(instance)
	desc := e.prober.Describe(t)

	structValue := reflect.ValueOf(instance)
	if structValue.Kind() == reflect.Pointer {
		structValue = structValue.Elem()
	}

	for _, slot := range desc.Slots {
		depInstance, err := e.resolve(slot.Type)
		if err != nil {
			return err
		}
		if err := probe.SetField(structValue, slot.Index, reflect.ValueOf(depInstance)); err != nil {
			return &InjectionFailureError{
				Owner:       slot.Owner,
				Slot:        slot.Name,
				SlotType:    slot.Type,
				ContainerID: e.id,
				Cause:       err,
			}
		}
	}

	return nil
}
