package forge

import "github.com/stratoframe/forge/internal/probe"

// Shared is the marker type a component embeds to opt into sharing: at
// most one instance of the concrete type exists per Container. Sharing is
// inherited — embedding Shared anywhere in a component's ancestor chain
// (including transitively, through an embedded ancestor that itself
// embeds Shared) makes the component shared.
//
//	type Bus struct {
//	    forge.Shared
//	}
type Shared = probe.SharedSentinel

// Constructible is the optional interface a component implements to run
// its own construction logic after dependency injection completes (spec.md
// §4.E step 9). A component with nothing to do in its own construction
// simply omits this method — the Resolution Engine only calls it when
// present, so no component is forced to carry a no-op implementation.
type Constructible interface {
	Construct()
}
