package probe

import (
	"reflect"
	"sync"
)

var sharedSentinelType = reflect.TypeOf(SharedSentinel{})

// Prober computes and memoizes Descriptors. A Prober is owned by a single
// Container; results are cached for the Prober's — and so the container's —
// lifetime, per the "computed lazily on first resolution" lifecycle rule.
type Prober struct {
	cache    sync.Map // map[reflect.Type]*Descriptor
	defaults sync.Map // map[reflect.Type]reflect.Type, abstract -> concrete
}

// New creates an empty Prober.
func New() *Prober {
	return &Prober{}
}

// SetDefault registers concrete as the default implementation for the
// abstract capability type. Registering twice replaces the prior default,
// but only for Describe calls that have not yet memoized capability's
// Descriptor; a Descriptor already cached keeps the default it was built
// with.
func (p *Prober) SetDefault(capability, concrete reflect.Type) {
	p.defaults.Store(capability, concrete)
}

// Describe returns the memoized Descriptor for t, computing it on first
// request. t should be the concrete pointer type components are allocated
// as (e.g. *Locator), or an interface type for abstract requests.
func (p *Prober) Describe(t reflect.Type) *Descriptor {
	if cached, ok := p.cache.Load(t); ok {
		return cached.(*Descriptor)
	}

	d := &Descriptor{Type: t}

	if t.Kind() == reflect.Interface {
		d.Abstract = true
		if concrete, ok := p.defaults.Load(t); ok {
			d.Default = concrete.(reflect.Type)
		}
	} else {
		structType := t
		if structType.Kind() == reflect.Pointer {
			structType = structType.Elem()
		}
		if structType.Kind() == reflect.Struct {
			d.Ancestors = ancestorChain(structType)
			d.Slots = collectSlots(structType, nil)
			d.Shared = isShared(structType)
		}
	}

	actual, _ := p.cache.LoadOrStore(t, d)
	return actual.(*Descriptor)
}

// ancestorChain returns every embedded (anonymous) struct field type,
// recursively, in declaration order — the "ancestor types" of structType.
func ancestorChain(structType reflect.Type) []reflect.Type {
	var chain []reflect.Type
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.Anonymous {
			continue
		}

		fieldType := field.Type
		if fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}
		if fieldType.Kind() != reflect.Struct || fieldType == sharedSentinelType {
			continue
		}

		chain = append(chain, fieldType)
		chain = append(chain, ancestorChain(fieldType)...)
	}
	return chain
}

// isShared reports whether structType or any ancestor embeds the shared
// sentinel marker.
func isShared(structType reflect.Type) bool {
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.Anonymous {
			continue
		}
		if field.Type == sharedSentinelType {
			return true
		}

		fieldType := field.Type
		if fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}
		if fieldType.Kind() == reflect.Struct && isShared(fieldType) {
			return true
		}
	}
	return false
}

// collectSlots walks structType's fields depth-first, recursing into
// embedded ancestors before considering structType's own declared fields —
// ancestor-to-descendant order, matching spec.md §4.B. prefix is the
// field-index path of structType itself within the concrete root type.
func collectSlots(structType reflect.Type, prefix []int) []Slot {
	var slots []Slot

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Anonymous && field.Type != sharedSentinelType {
			embedded := field.Type
			if embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				slots = append(slots, collectSlots(embedded, appendIndex(prefix, i))...)
			}
		}
	}

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Anonymous {
			continue
		}
		if field.Tag.Get(InjectTag) != InjectValue {
			continue
		}

		slots = append(slots, Slot{
			Owner: structType,
			Name:  field.Name,
			Type:  field.Type,
			Index: appendIndex(prefix, i),
		})
	}

	return slots
}

func appendIndex(prefix []int, i int) []int {
	out := make([]int, len(prefix)+1)
	copy(out, prefix)
	out[len(prefix)] = i
	return out
}
