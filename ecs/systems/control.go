package systems

import (
	"github.com/renbry/playbox/ecs"
	"github.com/renbry/playbox/ecs/components"
)

// AxisSource reports the current movement axis, each component in [-1, 1].
// Unbound or unpressed keys read as zero.
type AxisSource interface {
	Axis() (x, y float64)
}

// ControlSystem sets the player entity's velocity from the input axis.
type ControlSystem struct {
	Input AxisSource
	Speed float64
}

// NewControlSystem creates a ControlSystem moving the player at speed world
// units per second.
func NewControlSystem(in AxisSource, speed float64) *ControlSystem {
	return &ControlSystem{Input: in, Speed: speed}
}

// Update writes the axis-scaled velocity onto every player-tagged entity
// that has a Velocity component.
func (s *ControlSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || s.Input == nil {
		return
	}
	ax, ay := s.Input.Axis()
	for _, e := range w.Roles().Entities() {
		r := w.GetRole(e)
		if r == nil || r.Kind != components.RolePlayer {
			continue
		}
		vel := w.GetVelocity(e)
		if vel == nil {
			continue
		}
		vel.VX = ax * s.Speed
		vel.VY = ay * s.Speed
	}
}
