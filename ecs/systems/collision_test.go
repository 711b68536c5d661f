package systems

import (
	"math/rand"
	"testing"

	"github.com/renbry/playbox/ecs"
	"github.com/renbry/playbox/ecs/components"
)

func TestCollisionCollect(t *testing.T) {
	w := ecs.NewWorld()
	player := newRoleEntity(w, components.RolePlayer, components.Transform{X: 368, Y: 268, W: 64, H: 64})
	collectible := newRoleEntity(w, components.RoleCollectible, components.Transform{X: 384, Y: 284, W: 32, H: 32})

	s := NewCollisionSystem(800, 600, rand.New(rand.NewSource(1)))
	s.Update(w, 1.0/60)

	if s.Score != 1 {
		t.Fatalf("score = %d, want 1", s.Score)
	}
	tr := w.GetTransform(collectible)
	if tr.X < 0 || tr.X > 768 || tr.Y < 0 || tr.Y > 568 {
		t.Fatalf("relocated collectible out of bounds: (%v, %v)", tr.X, tr.Y)
	}
	pt := w.GetTransform(player)
	if pt.X != 368 || pt.Y != 268 {
		t.Fatalf("collect must not move the player, got (%v, %v)", pt.X, pt.Y)
	}

	events := w.Events().Drain()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ce, ok := events[0].Data.(ecs.CollisionEvent)
	if !ok || ce.Kind != ecs.CollisionEventCollect || ce.Other != collectible {
		t.Fatalf("unexpected event payload: %+v", events[0])
	}
}

func TestCollisionCollectRebasesBehavior(t *testing.T) {
	w := ecs.NewWorld()
	newRoleEntity(w, components.RolePlayer, components.Transform{X: 368, Y: 268, W: 64, H: 64})
	collectible := newRoleEntity(w, components.RoleCollectible, components.Transform{X: 384, Y: 284, W: 32, H: 32})
	w.SetBehavior(collectible, &components.Behavior{ScriptPath: "hover.tengo", BaseX: 384, BaseY: 284, Age: 7})

	s := NewCollisionSystem(800, 600, rand.New(rand.NewSource(1)))
	s.Update(w, 1.0/60)

	tr := w.GetTransform(collectible)
	b := w.GetBehavior(collectible)
	if b.BaseX != tr.X || b.BaseY != tr.Y {
		t.Fatalf("behavior base (%v, %v) does not track new position (%v, %v)", b.BaseX, b.BaseY, tr.X, tr.Y)
	}
	if b.Age != 0 {
		t.Fatalf("behavior age should reset on relocation, got %v", b.Age)
	}
}

func TestCollisionHazard(t *testing.T) {
	w := ecs.NewWorld()
	player := newRoleEntity(w, components.RolePlayer, components.Transform{X: 100, Y: 100, W: 64, H: 64})
	hazard := newRoleEntity(w, components.RoleHazard, components.Transform{X: 120, Y: 120, W: 48, H: 48})

	s := NewCollisionSystem(800, 600, rand.New(rand.NewSource(1)))
	s.Score = 5
	s.Update(w, 1.0/60)

	if s.Score != 0 {
		t.Fatalf("score = %d, want 0 after hazard contact", s.Score)
	}
	pt := w.GetTransform(player)
	if pt.X != 368 || pt.Y != 268 {
		t.Fatalf("player at (%v, %v), want world center (368, 268)", pt.X, pt.Y)
	}
	ht := w.GetTransform(hazard)
	if ht.X != 120 || ht.Y != 120 {
		t.Fatalf("hazard contact must not move the hazard, got (%v, %v)", ht.X, ht.Y)
	}

	events := w.Events().Drain()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if ce, ok := events[0].Data.(ecs.CollisionEvent); !ok || ce.Kind != ecs.CollisionEventHazard {
		t.Fatalf("unexpected event payload: %+v", events[0])
	}
}

func TestCollisionEdgeTouchCounts(t *testing.T) {
	w := ecs.NewWorld()
	newRoleEntity(w, components.RolePlayer, components.Transform{X: 0, Y: 0, W: 64, H: 64})
	// right edge of the player exactly touches the collectible's left edge
	newRoleEntity(w, components.RoleCollectible, components.Transform{X: 64, Y: 0, W: 32, H: 32})

	s := NewCollisionSystem(800, 600, rand.New(rand.NewSource(1)))
	s.Update(w, 1.0/60)

	if s.Score != 1 {
		t.Fatalf("edge touch did not collect, score = %d", s.Score)
	}
}

func TestCollisionNoOverlapNoOutcome(t *testing.T) {
	w := ecs.NewWorld()
	newRoleEntity(w, components.RolePlayer, components.Transform{X: 0, Y: 0, W: 64, H: 64})
	far := newRoleEntity(w, components.RoleCollectible, components.Transform{X: 500, Y: 500, W: 32, H: 32})

	s := NewCollisionSystem(800, 600, rand.New(rand.NewSource(1)))
	s.Update(w, 1.0/60)

	if s.Score != 0 {
		t.Fatalf("score changed without overlap: %d", s.Score)
	}
	tr := w.GetTransform(far)
	if tr.X != 500 || tr.Y != 500 {
		t.Fatalf("collectible relocated without overlap: (%v, %v)", tr.X, tr.Y)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("events pushed without overlap")
	}
}

func TestCollisionWithoutPlayerIsNoop(t *testing.T) {
	w := ecs.NewWorld()
	newRoleEntity(w, components.RoleCollectible, components.Transform{X: 0, Y: 0, W: 32, H: 32})
	newRoleEntity(w, components.RoleHazard, components.Transform{X: 0, Y: 0, W: 48, H: 48})

	s := NewCollisionSystem(800, 600, rand.New(rand.NewSource(1)))
	s.Update(w, 1.0/60)

	if s.Score != 0 || w.Events().Len() != 0 {
		t.Fatalf("collision ran without a player")
	}
}

func TestControlSetsPlayerVelocity(t *testing.T) {
	w := ecs.NewWorld()
	player := newRoleEntity(w, components.RolePlayer, components.Transform{X: 100, Y: 100, W: 64, H: 64})
	w.SetVelocity(player, &components.Velocity{})
	bystander := newRoleEntity(w, components.RoleHazard, components.Transform{X: 0, Y: 0, W: 48, H: 48})
	w.SetVelocity(bystander, &components.Velocity{})

	axis := &stubAxis{x: 1, y: -0.5}
	s := NewControlSystem(axis, 200)
	s.Update(w, 1.0/60)

	vel := w.GetVelocity(player)
	if vel.VX != 200 || vel.VY != -100 {
		t.Fatalf("player velocity = (%v, %v), want (200, -100)", vel.VX, vel.VY)
	}
	if bv := w.GetVelocity(bystander); bv.VX != 0 || bv.VY != 0 {
		t.Fatalf("control touched a non-player velocity: (%v, %v)", bv.VX, bv.VY)
	}

	axis.x, axis.y = 0, 0
	s.Update(w, 1.0/60)
	if vel := w.GetVelocity(player); vel.VX != 0 || vel.VY != 0 {
		t.Fatalf("released axis must zero the velocity, got (%v, %v)", vel.VX, vel.VY)
	}
}

type stubAxis struct {
	x, y float64
}

func (s *stubAxis) Axis() (float64, float64) { return s.x, s.y }
