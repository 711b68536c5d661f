package ecs

import "github.com/renbry/playbox/ecs/components"

// The component set is closed: one sparse set per capability, with typed
// accessors. Attaching to a capability an entity already has replaces the
// previous value; Get* returns nil for absent components, never an error.

// Transforms returns the transform storage.
func (w *World) Transforms() *SparseSet {
	if w == nil {
		return nil
	}
	if w.transforms == nil {
		w.transforms = &SparseSet{}
	}
	return w.transforms
}

// Sprites returns the sprite storage.
func (w *World) Sprites() *SparseSet {
	if w == nil {
		return nil
	}
	if w.sprites == nil {
		w.sprites = &SparseSet{}
	}
	return w.sprites
}

// Velocities returns the velocity storage.
func (w *World) Velocities() *SparseSet {
	if w == nil {
		return nil
	}
	if w.velocities == nil {
		w.velocities = &SparseSet{}
	}
	return w.velocities
}

// Roles returns the role tag storage.
func (w *World) Roles() *SparseSet {
	if w == nil {
		return nil
	}
	if w.roles == nil {
		w.roles = &SparseSet{}
	}
	return w.roles
}

// Behaviors returns the behavior script storage.
func (w *World) Behaviors() *SparseSet {
	if w == nil {
		return nil
	}
	if w.behaviors == nil {
		w.behaviors = &SparseSet{}
	}
	return w.behaviors
}

// SetTransform attaches or replaces a transform component.
func (w *World) SetTransform(e Entity, t *components.Transform) {
	if w == nil || t == nil || !w.IsAlive(e) {
		return
	}
	w.Transforms().Set(e, t)
}

// GetTransform returns the transform component, or nil.
func (w *World) GetTransform(e Entity) *components.Transform {
	if w == nil {
		return nil
	}
	if t, ok := w.Transforms().Get(e).(*components.Transform); ok {
		return t
	}
	return nil
}

// SetSprite attaches or replaces a sprite component.
func (w *World) SetSprite(e Entity, s *components.Sprite) {
	if w == nil || s == nil || !w.IsAlive(e) {
		return
	}
	w.Sprites().Set(e, s)
}

// GetSprite returns the sprite component, or nil.
func (w *World) GetSprite(e Entity) *components.Sprite {
	if w == nil {
		return nil
	}
	if s, ok := w.Sprites().Get(e).(*components.Sprite); ok {
		return s
	}
	return nil
}

// SetVelocity attaches or replaces a velocity component.
func (w *World) SetVelocity(e Entity, v *components.Velocity) {
	if w == nil || v == nil || !w.IsAlive(e) {
		return
	}
	w.Velocities().Set(e, v)
}

// GetVelocity returns the velocity component, or nil.
func (w *World) GetVelocity(e Entity) *components.Velocity {
	if w == nil {
		return nil
	}
	if v, ok := w.Velocities().Get(e).(*components.Velocity); ok {
		return v
	}
	return nil
}

// SetRole attaches or replaces a role tag.
func (w *World) SetRole(e Entity, r *components.Role) {
	if w == nil || r == nil || !w.IsAlive(e) {
		return
	}
	w.Roles().Set(e, r)
}

// GetRole returns the role tag, or nil.
func (w *World) GetRole(e Entity) *components.Role {
	if w == nil {
		return nil
	}
	if r, ok := w.Roles().Get(e).(*components.Role); ok {
		return r
	}
	return nil
}

// SetBehavior attaches or replaces a behavior script component.
func (w *World) SetBehavior(e Entity, b *components.Behavior) {
	if w == nil || b == nil || !w.IsAlive(e) {
		return
	}
	w.Behaviors().Set(e, b)
}

// GetBehavior returns the behavior component, or nil.
func (w *World) GetBehavior(e Entity) *components.Behavior {
	if w == nil {
		return nil
	}
	if b, ok := w.Behaviors().Get(e).(*components.Behavior); ok {
		return b
	}
	return nil
}

// FindByRole returns the first live entity tagged with the given role kind,
// in ascending id order, or InvalidEntity.
func (w *World) FindByRole(kind components.RoleKind) Entity {
	if w == nil {
		return InvalidEntity
	}
	best := InvalidEntity
	for _, e := range w.Roles().Entities() {
		r, ok := w.Roles().Get(e).(*components.Role)
		if !ok || r == nil || r.Kind != kind {
			continue
		}
		if best == InvalidEntity || e < best {
			best = e
		}
	}
	return best
}
