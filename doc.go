// Package forge is a field-injection dependency composition runtime.
//
// forge takes a declarative description of which components should run
// (plus optional substitutions) and fabricates the resulting object graph:
// it resolves every component's transitive collaborators, honors sharing
// rules (some components exist at most once per container), applies
// capability-indexed hooks, and keeps the assembly alive.
//
// # Basic usage
//
// Components register themselves by name (usually from an init function),
// mark slots for injection with a struct tag, and opt into sharing by
// embedding forge.Shared:
//
//	type Locator struct {
//	    forge.Shared
//	    Places Places `forge:"inject"`
//	}
//
//	func (l *Locator) Construct() { /* optional own construction */ }
//
//	func init() {
//	    forge.RegisterComponent("app/Locator", func() any { return &Locator{} })
//	}
//
// Registration always uses the fully root-qualified name (the component
// root prefix plus the bare name a configuration document will use for
// it) — the same way a reflective runtime would register a class under its
// package-qualified name. A container is built with matching roots and
// drives resolution:
//
//	c := forge.NewContainer(forge.WithComponentRoot("app/"), forge.WithOverrideRoot("app/"))
//	locator, err := c.Load("Locator", true)
//
// # Overrides, defaults, and hooks
//
// An abstract capability (an interface) resolves via an explicitly
// registered default implementation, unless an override has been set for
// it — overrides always win:
//
//	forge.RegisterDefault[Clock](c, "SystemClock")
//	c.SetOverride(reflect.TypeOf((*Clock)(nil)).Elem(), reflect.TypeOf(&FakeClock{}))
//
// A hook fires once per resolved instance whose capability chain includes
// the registered capability:
//
//	c.RegisterInitializer(reflect.TypeOf((*HasActivity)(nil)).Elem(), func(v any) {
//	    v.(HasActivity).Start()
//	})
//
// # Declarative configuration
//
// The Loader drives the same operations from an XML document:
//
//	<Container>
//	  <Overrides><Override capability="Places" target="MockPlaces"/></Overrides>
//	  <Services><Service name="Locator"/></Services>
//	</Container>
//
// # Concurrency
//
// A Container is not safe for concurrent assembly: resolve, load, and
// registration calls must be serialized by the caller. Once a component is
// built, forge makes no further claims about it — whether the component
// itself is safe for concurrent use is up to its own implementation.
package forge
