package systems

import (
	"github.com/renbry/playbox/common"
	"github.com/renbry/playbox/ecs"
)

// PhysicsSystem advances transforms by velocity and keeps every moving AABB
// inside the world bounds [0, WorldW] x [0, WorldH].
type PhysicsSystem struct {
	WorldW, WorldH float64
}

// NewPhysicsSystem creates a PhysicsSystem for the given world bounds.
func NewPhysicsSystem(worldW, worldH float64) *PhysicsSystem {
	return &PhysicsSystem{WorldW: worldW, WorldH: worldH}
}

// Update integrates position by velocity * dt, then clamps. The clamp runs
// strictly after the unclamped update, so an out-of-range result lands
// exactly on the boundary.
func (s *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || dt < 0 {
		return
	}
	for _, e := range w.Velocities().Entities() {
		vel := w.GetVelocity(e)
		tr := w.GetTransform(e)
		if vel == nil || tr == nil {
			continue
		}
		tr.X += vel.VX * dt
		tr.Y += vel.VY * dt
		tr.X = common.Clamp(tr.X, 0, s.WorldW-tr.W)
		tr.Y = common.Clamp(tr.Y, 0, s.WorldH-tr.H)
	}
}
