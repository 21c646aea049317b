package forge

import (
	"reflect"
	"sync"
)

// instanceCache is the shared-instance cache of the data model (spec.md
// §3): keyed by the concrete type actually chosen during resolution, never
// by the capability that was requested. A single-threaded assembly model
// (spec.md §5) means the mutex here only guards against accidental misuse,
// not concurrent resolution — resolve calls are expected to be serialized
// by the caller.
type instanceCache struct {
	mu        sync.Mutex
	instances map[reflect.Type]any
}

func newInstanceCache() *instanceCache {
	return &instanceCache{instances: make(map[reflect.Type]any)}
}

func (c *instanceCache) get(t reflect.Type) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.instances[t]
	return v, ok
}

// publish inserts instance into the cache keyed by t. It is called by the
// publish-before-construct step, the only place a shared instance enters
// the cache; that early insertion is what lets cycles among shared
// components terminate.
func (c *instanceCache) publish(t reflect.Type, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instances[t] = instance
}
