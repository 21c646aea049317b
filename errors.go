package forge

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/stratoframe/forge/internal/probe"
)

// Sentinel errors for simple, comparable failure cases.
var (
	// ErrNilComponent is returned when a registered factory produced a nil instance.
	ErrNilComponent = errors.New("forge: component factory returned a nil instance")
	// ErrOverrideConcreteRequired is returned by SetOverride when the target type is abstract.
	ErrOverrideConcreteRequired = errors.New("forge: override target must be a concrete, instantiable type")
	// ErrNoSuchOverride is returned by operations that require an existing override entry.
	ErrNoSuchOverride = errors.New("forge: no override registered for capability")
)

// TypeNotFoundError indicates a textual name could not be resolved under
// its configured root (spec.md §4.A, §7).
type TypeNotFoundError struct {
	Name        string
	FullName    string
	Root        string
	ContainerID string
	Cause       error
}

func (e *TypeNotFoundError) Error() string {
	return fmt.Sprintf("forge[%s]: type not found: %q under %s root (full name %q): %v", e.ContainerID, e.Name, e.Root, e.FullName, e.Cause)
}

func (e *TypeNotFoundError) Unwrap() error { return e.Cause }

// UnresolvableAbstractError indicates an abstract type was requested with
// neither an override nor a default implementation (spec.md §4.E step 2).
type UnresolvableAbstractError struct {
	Requested   reflect.Type
	ContainerID string
}

func (e *UnresolvableAbstractError) Error() string {
	return fmt.Sprintf("forge[%s]: cannot resolve abstract type %s: no override and no default implementation registered", e.ContainerID, probe.FormatType(e.Requested))
}

// InjectionFailureError indicates a dependency slot could not be written.
type InjectionFailureError struct {
	Owner       reflect.Type
	Slot        string
	SlotType    reflect.Type
	ContainerID string
	Cause       error
}

func (e *InjectionFailureError) Error() string {
	return fmt.Sprintf("forge[%s]: failed to inject slot %s.%s (%s): %v", e.ContainerID, probe.FormatType(e.Owner), e.Slot, probe.FormatType(e.SlotType), e.Cause)
}

func (e *InjectionFailureError) Unwrap() error { return e.Cause }

// ConfigParseError indicates the declarative configuration document is
// malformed beyond recovery (a single bad directive is skipped instead —
// see Loader.Load).
type ConfigParseError struct {
	ContainerID string
	Cause       error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("forge[%s]: configuration document is malformed: %v", e.ContainerID, e.Cause)
}

func (e *ConfigParseError) Unwrap() error { return e.Cause }

// OverrideCycleError indicates a chain of overrides (I -> J -> ... -> I)
// never bottoms out at a concrete type. This is Forge's resolution of the
// "recursive override" open question in spec.md §9: chains compose
// transitively, guarded against infinite loops by this error.
type OverrideCycleError struct {
	Chain       []reflect.Type
	ContainerID string
}

func (e *OverrideCycleError) Error() string {
	names := make([]string, len(e.Chain))
	for i, t := range e.Chain {
		names[i] = probe.FormatType(t)
	}
	return fmt.Sprintf("forge[%s]: override cycle detected: %v", e.ContainerID, names)
}

// IsTypeNotFound reports whether err is (or wraps) a TypeNotFoundError.
func IsTypeNotFound(err error) bool {
	var e *TypeNotFoundError
	return errors.As(err, &e)
}

// IsUnresolvableAbstract reports whether err is (or wraps) an UnresolvableAbstractError.
func IsUnresolvableAbstract(err error) bool {
	var e *UnresolvableAbstractError
	return errors.As(err, &e)
}

// IsInjectionFailure reports whether err is (or wraps) an InjectionFailureError.
func IsInjectionFailure(err error) bool {
	var e *InjectionFailureError
	return errors.As(err, &e)
}

// IsConfigParseError reports whether err is (or wraps) a ConfigParseError.
func IsConfigParseError(err error) bool {
	var e *ConfigParseError
	return errors.As(err, &e)
}
