package ecs

import "sort"

// System mutates world state once per simulated frame. dt is the elapsed
// time since the previous frame in seconds, never negative.
type System interface {
	Update(w *World, dt float64)
}

// World owns entities, their components, and the system run order. It is
// single-threaded by design: every mutation happens on the loop goroutine.
type World struct {
	nextID  Entity
	alive   map[Entity]bool
	systems []System
	events  EventQueue

	transforms *SparseSet
	sprites    *SparseSet
	velocities *SparseSet
	roles      *SparseSet
	behaviors  *SparseSet
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{alive: map[Entity]bool{}}
}

// CreateEntity allocates a fresh entity with no components. Ids are
// strictly increasing across the world's lifetime.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return InvalidEntity
	}
	w.nextID++
	e := w.nextID
	if w.alive == nil {
		w.alive = map[Entity]bool{}
	}
	w.alive[e] = true
	return e
}

// DestroyEntity removes the entity and every component attached to it.
// Destroying an absent or already-destroyed entity is a no-op.
func (w *World) DestroyEntity(e Entity) {
	if w == nil || !w.alive[e] {
		return
	}
	delete(w.alive, e)
	for _, s := range w.componentSets() {
		s.Remove(e)
	}
}

// IsAlive reports whether the entity handle names a live entity.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.alive[e]
}

// Entities returns a snapshot of all live entity handles in ascending id
// order. The snapshot is a copy; mutating the world afterwards does not
// affect it.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, len(w.alive))
	for e := range w.alive {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clear destroys every entity. System order and the id counter are kept, so
// entities created afterwards still get fresh ids.
func (w *World) Clear() {
	if w == nil {
		return
	}
	for _, e := range w.Entities() {
		w.DestroyEntity(e)
	}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once in registration order.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	for _, s := range w.systems {
		if s != nil {
			s.Update(w, dt)
		}
	}
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) componentSets() []*SparseSet {
	return []*SparseSet{
		w.transforms,
		w.sprites,
		w.velocities,
		w.roles,
		w.behaviors,
	}
}
