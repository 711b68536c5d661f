package ecs

// CollisionEventKind identifies collision outcomes.
type CollisionEventKind string

const (
	// CollisionEventCollect is emitted when the player overlaps a collectible.
	CollisionEventCollect CollisionEventKind = "collect"
	// CollisionEventHazard is emitted when the player overlaps a hazard.
	CollisionEventHazard CollisionEventKind = "hazard"
)

// CollisionEvent reports a collision outcome for one entity pair.
type CollisionEvent struct {
	Player Entity
	Other  Entity
	Kind   CollisionEventKind
}

// Event is a generic world event payload.
type Event struct {
	Type string
	Data any
}

// EventQueue is a simple FIFO queue drained once per frame by the loop.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
