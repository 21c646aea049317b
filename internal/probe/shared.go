package probe

// SharedSentinel is the marker type components embed to opt into sharing.
// It carries no behavior; its only purpose is to be detectable by
// reflection when walking a type's ancestor chain. The root package
// exports this under the name Shared so host code never imports probe
// directly.
type SharedSentinel struct{}
