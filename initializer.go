package forge

import (
	"reflect"
	"sync"
)

// Hook is a callback fired once per instance satisfying a given
// capability, after the instance's own construction completes.
type Hook func(instance any)

// initializerIndex is the Initializer Index (spec.md §4.D): a single hook
// per capability type, plus a memoized view of "which hooks apply to
// concrete type C" computed by walking C's ancestor chain.
//
// The ancestor chain (probe.Descriptor.Ancestors, structural only — T's
// embedded-struct ancestors) is static per type and cached forever by the
// prober. Whether a given registered capability interface additionally
// applies to C depends on C.Implements(capability), which is
// deterministic but must be checked against whatever capabilities are
// currently known — so the per-C "applicable hooks" view is memoized
// alongside a generation counter and recomputed whenever a new hook is
// registered. Override keys are also checked as candidates, but only a
// capability with a registered hook contributes to the result, so setting
// an override does not bump the generation.
type initializerIndex struct {
	mu         sync.RWMutex
	hooks      map[reflect.Type]Hook
	generation uint64

	resultCache sync.Map // map[reflect.Type]*applicableResult
	overrides   *overrideTable
}

type applicableResult struct {
	generation uint64
	hooks      []Hook
}

func newInitializerIndex(overrides *overrideTable) *initializerIndex {
	return &initializerIndex{
		hooks:     make(map[reflect.Type]Hook),
		overrides: overrides,
	}
}

// register binds hook to capability, replacing any prior hook for that
// capability.
func (idx *initializerIndex) register(capability reflect.Type, hook Hook) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.hooks[capability] = hook
	idx.generation++
}

// applicableHooks returns every hook whose capability is encountered while
// walking concrete's ancestor chain — T itself, its embedded-struct
// ancestors, and (for each) every registered hook/override capability type
// it implements — deduplicated by capability key.
func (idx *initializerIndex) applicableHooks(concrete reflect.Type, ancestors []reflect.Type) []Hook {
	idx.mu.RLock()
	gen := idx.generation
	idx.mu.RUnlock()

	if cached, ok := idx.resultCache.Load(concrete); ok {
		r := cached.(*applicableResult)
		if r.generation == gen {
			return r.hooks
		}
	}

	chain := append([]reflect.Type{concrete}, ancestors...)

	idx.mu.RLock()
	candidates := make([]reflect.Type, 0, len(idx.hooks))
	for capability := range idx.hooks {
		candidates = append(candidates, capability)
	}
	for _, capability := range idx.overrides.keys() {
		candidates = append(candidates, capability)
	}
	idx.mu.RUnlock()

	seen := make(map[reflect.Type]bool)
	var matched []reflect.Type
	for _, capability := range candidates {
		if seen[capability] {
			continue
		}
		if implementsAny(chain, capability) {
			seen[capability] = true
			matched = append(matched, capability)
		}
	}

	idx.mu.RLock()
	hooks := make([]Hook, 0, len(matched))
	for _, capability := range matched {
		if h, ok := idx.hooks[capability]; ok {
			hooks = append(hooks, h)
		}
	}
	idx.mu.RUnlock()

	idx.resultCache.Store(concrete, &applicableResult{generation: gen, hooks: hooks})
	return hooks
}

// implementsAny reports, for a concrete capability, whether it is itself a
// member of chain, and for an interface capability, whether any type in
// chain (or its pointer form) implements it.
func implementsAny(chain []reflect.Type, capability reflect.Type) bool {
	if capability.Kind() != reflect.Interface {
		for _, t := range chain {
			if t == capability {
				return true
			}
		}
		return false
	}

	for _, t := range chain {
		if t.Implements(capability) {
			return true
		}
		if t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(capability) {
			return true
		}
	}
	return false
}
