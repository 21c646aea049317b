// Package testutil provides the fixture components exercised by Forge's
// own test suite: concrete Go shapes for the scenarios spec.md §8
// describes (Bus, Clock/SystemClock/FakeClock, Base/Child,
// HasActivity/P1/P2, Places/MockPlaces/Locator).
package testutil

import (
	"sync"
	"time"

	"github.com/stratoframe/forge"
)

// Bus is Scenario 1 — shared uniqueness. It has no dependency slots; a
// Container resolving it twice should hand back the identical instance.
type Bus struct {
	forge.Shared

	mu       sync.Mutex
	Messages []string
}

func (b *Bus) Publish(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Messages = append(b.Messages, msg)
}

// Clock is Scenario 2's abstract capability: SystemClock is registered as
// its default implementation, and tests set an override of FakeClock to
// prove overrides win over defaults.
type Clock interface {
	Now() time.Time
}

// SystemClock is Clock's default implementation.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FakeClock is a deterministic Clock substitute for tests.
type FakeClock struct {
	Fixed time.Time
}

func (c *FakeClock) Now() time.Time { return c.Fixed }

// A is the ancestor-slot dependency Base declares (Scenario 3).
type A struct {
	Label string
}

// B is the descendant-slot dependency Child declares (Scenario 3).
type B struct {
	Label string
}

// Base declares a single slot, A. Its Construct appends "a" to Order when
// A is already set; Child's Construct then appends "b" when B is set. Order
// therefore shows which slots were populated before construction ran, not
// the order in which they were written.
type Base struct {
	A *A `forge:"inject"`

	Order []string
}

func (base *Base) Construct() {
	if base.A != nil {
		base.Order = append(base.Order, "a")
	}
}

// Child embeds Base (its ancestor) and declares its own slot, B.
// Injection must write Base.A before Child.B — ancestor slots before
// descendant slots (spec.md invariant 3).
type Child struct {
	Base
	B *B `forge:"inject"`
}

func (c *Child) Construct() {
	c.Base.Construct()
	if c.B != nil {
		c.Order = append(c.Order, "b")
	}
}

// CyclicA and CyclicB are mutually-dependent Shared components (Scenario 5):
// each depends on the other through an injected slot, so resolving either
// one must terminate on a single shared pair rather than recursing forever.
// The publish-before-construct step (resolver.go) is what makes this
// possible — the second time resolution reaches a type already under
// construction, the cache already holds its not-yet-injected instance.
type CyclicA struct {
	forge.Shared

	B *CyclicB `forge:"inject"`
}

type CyclicB struct {
	forge.Shared

	A *CyclicA `forge:"inject"`
}

// HasActivity is Scenario 4's hook capability: an initializer registered
// against it must fire once for every resolved instance implementing it,
// regardless of the instance's own concrete type.
type HasActivity interface {
	Start()
}

// P1 and P2 both implement HasActivity but share no ancestor — proving
// the hook fires per matching instance, not per declared type.
type P1 struct {
	Started bool
}

func (p *P1) Start() { p.Started = true }

type P2 struct {
	Started bool
}

func (p *P2) Start() { p.Started = true }

// Places is Scenario 6's declarative-override capability.
type Places interface {
	Find(name string) string
}

// RealPlaces is Places' ordinary implementation.
type RealPlaces struct{}

func (RealPlaces) Find(name string) string { return "real:" + name }

// MockPlaces is substituted for Places by spec.md §6's declarative
// configuration example.
type MockPlaces struct{}

func (MockPlaces) Find(name string) string { return "mock:" + name }

// Locator is Scenario 6's retained root service: it depends on Places and
// is loaded by name from a configuration document.
type Locator struct {
	Places Places `forge:"inject"`
}

func (l *Locator) Find(name string) string {
	return l.Places.Find(name)
}
