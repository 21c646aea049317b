// Package probe implements the Metadata Probe: for a given type, it
// discovers the declared dependency slots, the sharing flag, the
// default-implementation fallback for abstract types, and the
// ancestor/capability chain used for hook matching.
//
// All of this is computed through reflection over Go conventions chosen to
// stand in for the annotation system the original runtime assumes a host
// reflection API provides:
//
//   - a dependency slot is a struct field tagged `forge:"inject"`
//   - an ancestor is an embedded (anonymous) struct field
//   - sharing is marked by embedding the Shared marker type
//   - a default implementation is registered explicitly, since interfaces
//     carry no fields to tag
package probe

import "reflect"

// InjectTag is the struct tag key marking a field as a dependency slot.
const InjectTag = "forge"

// InjectValue is the tag value (forge:"inject") that opts a field in.
const InjectValue = "inject"

// Slot is a single dependency slot discovered on a type: a named, typed
// field the Resolution Engine must assign before the owning component's
// own construction runs.
type Slot struct {
	// Owner is the type (possibly an ancestor, i.e. an embedded struct)
	// that declared this slot.
	Owner reflect.Type
	// Name is the Go field name.
	Name string
	// Type is the declared field type — the capability or concrete type
	// to resolve and assign.
	Type reflect.Type
	// Index is the field-index path from the concrete type's root,
	// suitable for reflect.Value.FieldByIndex. A slot declared on an
	// embedded ancestor has a longer index path than one declared
	// directly; walking ancestors first and assigning by explicit index
	// (rather than by promoted-field name resolution) is what lets a
	// shadowed slot name be written twice, ancestor then descendant,
	// with the descendant's write winning exactly as Go's own field
	// shadowing would resolve a plain field access.
	Index []int
}

// Descriptor is the Type Descriptor of the data model: the internal handle
// for a concrete or abstract component type.
type Descriptor struct {
	Type      reflect.Type
	Abstract  bool
	Ancestors []reflect.Type
	Slots     []Slot
	Shared    bool
	// Default is the concrete type an abstract Descriptor falls back to,
	// nil if none was registered or if Type is concrete (the annotation
	// is meaningless — and ignored — on concrete types).
	Default reflect.Type
}
