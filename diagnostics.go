package acoustics

import (
	"fmt"
	"sync"
)

// EventReason classifies why a wall fell back to its default material.
type EventReason int

const (
	// ReasonUnknownMaterial means the requested material name is not in
	// the library.
	ReasonUnknownMaterial EventReason = iota

	// ReasonUnassignedWall means the assignment did not name a material
	// for the wall.
	ReasonUnassignedWall
)

// String returns a short reason label.
func (r EventReason) String() string {
	switch r {
	case ReasonUnknownMaterial:
		return "unknown material"
	case ReasonUnassignedWall:
		return "unassigned wall"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Event describes one fallback decision made during coefficient
// resolution.
type Event struct {
	// Wall is the wall the decision applies to.
	Wall Wall

	// Requested is the material name asked for, empty when the wall was
	// unassigned.
	Requested string

	// Resolved is the material actually used.
	Resolved string

	// Reason classifies the fallback.
	Reason EventReason
}

// String renders the event as a human-readable message.
func (e Event) String() string {
	if e.Reason == ReasonUnknownMaterial {
		return fmt.Sprintf("material %q not found for wall %s, using %s", e.Requested, e.Wall, e.Resolved)
	}
	return fmt.Sprintf("no material assigned for wall %s, using %s", e.Wall, e.Resolved)
}

// Sink receives diagnostic events. Implementations must be safe for
// concurrent use when the owning [Profiler] is shared across goroutines.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the [Sink] interface.
type SinkFunc func(Event)

// Emit calls f(e).
func (f SinkFunc) Emit(e Event) { f(e) }

type nopSink struct{}

func (nopSink) Emit(Event) {}

// Collector is a [Sink] that records every event. Useful in tests and for
// embedders that inspect resolution decisions after the fact.
type Collector struct {
	mu     sync.Mutex
	events []Event
}

// Emit records e.
func (c *Collector) Emit(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

// Events returns a copy of all recorded events in emission order.
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Reset discards all recorded events.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = nil
}
