package forge

import (
	"reflect"
	"sync"
)

// capabilityRegistry maps capability names to their interface reflect.Type,
// separate from the component registry's concrete-factory table: a
// capability has no allocator of its own, only the name its interface
// type is known by in declarative configuration.
var capabilityRegistry sync.Map // map[string]reflect.Type

// RegisterCapability binds fullName to the interface type Capability, so
// that a declarative Override directive's capability="..." attribute can
// be resolved to a reflect.Type the way RegisterComponent lets a
// Service/Plugin's name="..." attribute resolve to a concrete type.
// Capability must be an interface type; registering a non-interface is a
// programming error and panics, the same way an init()-time misregistration
// of a component factory would surface immediately rather than later.
func RegisterCapability[Capability any](fullName string) {
	t := reflect.TypeOf((*Capability)(nil)).Elem()
	if t.Kind() != reflect.Interface {
		panic("forge: RegisterCapability[" + t.String() + "] requires an interface type")
	}
	capabilityRegistry.Store(fullName, t)
}

// lookupCapability resolves fullName against the capability name table.
func lookupCapability(fullName string) (reflect.Type, bool) {
	v, ok := capabilityRegistry.Load(fullName)
	if !ok {
		return nil, false
	}
	return v.(reflect.Type), true
}

// RegisterDefault binds the component that fullName names under c's
// component root (the same qualification Load applies) as the default
// implementation for capability Capability, used when an abstract request
// for Capability reaches the Resolution Engine with no override in place
// (spec.md §4.B "default-implementation" annotation, §4.E step 2). The
// capability's descriptor, default included, is memoized the first time c
// resolves it, so a default registered after that first resolution is not
// seen by c.
//
// Go interfaces carry no metadata of their own, so this stands in for
// what a reflective runtime would express as an annotation on the
// interface declaration itself: the registration call is the annotation.
func RegisterDefault[Capability any](c *Container, fullName string) error {
	entry, err := c.registry.Lookup(c.componentRoot + fullName)
	if err != nil {
		return &TypeNotFoundError{
			Name:        fullName,
			FullName:    c.componentRoot + fullName,
			Root:        "component",
			ContainerID: c.id.String(),
			Cause:       err,
		}
	}

	capability := reflect.TypeOf((*Capability)(nil)).Elem()
	if capability.Kind() != reflect.Interface {
		return &UnresolvableAbstractError{Requested: capability, ContainerID: c.id.String()}
	}

	c.prober.SetDefault(capability, entry.Type)
	return nil
}
