package systems

import (
	"github.com/jakecoffman/cp"

	"github.com/renbry/playbox/ecs"
	"github.com/renbry/playbox/ecs/components"
)

// minSeparation is the distance below which a hazard stops steering, so the
// direction never normalizes a zero-length vector.
const minSeparation = 1e-3

// PursuitSystem steers hazard-tagged entities toward the player's AABB
// center at a fixed speed. Roles are explicit tags set at creation; nothing
// is inferred from geometry.
type PursuitSystem struct {
	Speed float64
}

// NewPursuitSystem creates a PursuitSystem moving hazards at speed world
// units per second.
func NewPursuitSystem(speed float64) *PursuitSystem {
	return &PursuitSystem{Speed: speed}
}

// Update moves every hazard along the normalized direction to the player.
func (s *PursuitSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || dt <= 0 {
		return
	}
	player := w.FindByRole(components.RolePlayer)
	pt := w.GetTransform(player)
	if pt == nil {
		return
	}
	px, py := pt.Center()
	goal := cp.Vector{X: px, Y: py}

	for _, e := range w.Roles().Entities() {
		r := w.GetRole(e)
		if r == nil || r.Kind != components.RoleHazard {
			continue
		}
		tr := w.GetTransform(e)
		if tr == nil {
			continue
		}
		cx, cy := tr.Center()
		to := goal.Sub(cp.Vector{X: cx, Y: cy})
		dist := to.Length()
		if dist < minSeparation {
			continue
		}
		step := to.Mult(s.Speed * dt / dist)
		tr.X += step.X
		tr.Y += step.Y
	}
}
