package systems

import (
	"testing"

	"github.com/renbry/playbox/ecs"
	"github.com/renbry/playbox/ecs/components"
)

func newMovingEntity(w *ecs.World, tr components.Transform, vel components.Velocity) ecs.Entity {
	e := w.CreateEntity()
	w.SetTransform(e, &tr)
	w.SetVelocity(e, &vel)
	return e
}

func TestPhysicsIntegration(t *testing.T) {
	cases := []struct {
		name  string
		tr    components.Transform
		vel   components.Velocity
		dt    float64
		wantX float64
		wantY float64
	}{
		{
			"simple_motion",
			components.Transform{X: 100, Y: 100, W: 64, H: 64},
			components.Velocity{VX: 200, VY: -50},
			0.5,
			200, 75,
		},
		{
			"zero_dt_freezes",
			components.Transform{X: 100, Y: 100, W: 64, H: 64},
			components.Velocity{VX: 1000, VY: 1000},
			0,
			100, 100,
		},
		{
			"clamp_right_exact",
			components.Transform{X: 700, Y: 100, W: 64, H: 64},
			components.Velocity{VX: 10000},
			1,
			736, 100, // 800 - 64
		},
		{
			"clamp_left_exact",
			components.Transform{X: 5, Y: 100, W: 64, H: 64},
			components.Velocity{VX: -10000},
			1,
			0, 100,
		},
		{
			"clamp_bottom_exact",
			components.Transform{X: 100, Y: 500, W: 48, H: 48},
			components.Velocity{VY: 10000},
			1,
			100, 552, // 600 - 48
		},
		{
			"large_dt_still_contained",
			components.Transform{X: 0, Y: 0, W: 32, H: 32},
			components.Velocity{VX: 1e9, VY: 1e9},
			1e6,
			768, 568,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := newMovingEntity(w, c.tr, c.vel)
			s := NewPhysicsSystem(800, 600)

			s.Update(w, c.dt)

			tr := w.GetTransform(e)
			if tr.X != c.wantX || tr.Y != c.wantY {
				t.Fatalf("position = (%v, %v), want (%v, %v)", tr.X, tr.Y, c.wantX, c.wantY)
			}
		})
	}
}

func TestPhysicsContainmentInvariant(t *testing.T) {
	w := ecs.NewWorld()
	e := newMovingEntity(w,
		components.Transform{X: 400, Y: 300, W: 64, H: 64},
		components.Velocity{VX: 333, VY: -271},
	)
	s := NewPhysicsSystem(800, 600)

	for i := 0; i < 1000; i++ {
		s.Update(w, 1.0/60)
		tr := w.GetTransform(e)
		if tr.X < 0 || tr.X+tr.W > 800 || tr.Y < 0 || tr.Y+tr.H > 600 {
			t.Fatalf("step %d: AABB escaped world: %+v", i, tr)
		}
	}
}

func TestPhysicsNegativeDtIsNoop(t *testing.T) {
	w := ecs.NewWorld()
	e := newMovingEntity(w,
		components.Transform{X: 100, Y: 100, W: 64, H: 64},
		components.Velocity{VX: 100, VY: 100},
	)
	s := NewPhysicsSystem(800, 600)

	s.Update(w, -1)

	tr := w.GetTransform(e)
	if tr.X != 100 || tr.Y != 100 {
		t.Fatalf("negative dt moved the entity to (%v, %v)", tr.X, tr.Y)
	}
}

func TestPhysicsSkipsIncompleteEntities(t *testing.T) {
	w := ecs.NewWorld()
	// velocity without transform must not panic
	e := w.CreateEntity()
	w.SetVelocity(e, &components.Velocity{VX: 100})

	s := NewPhysicsSystem(800, 600)
	s.Update(w, 1.0/60)
}
