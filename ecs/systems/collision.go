package systems

import (
	"math/rand"
	"time"

	"github.com/renbry/playbox/ecs"
	"github.com/renbry/playbox/ecs/components"
)

// CollisionSystem resolves player overlaps with collectibles and hazards.
// The overlap test uses closed intervals, so AABBs touching along exactly
// one edge count as overlapping. The two outcomes are asymmetric on
// purpose: collecting rewards, hazards punish.
type CollisionSystem struct {
	WorldW, WorldH float64

	// Score is the running collect counter. Reset to zero on hazard contact.
	Score int

	rng *rand.Rand
}

// NewCollisionSystem creates a CollisionSystem for the given world bounds.
// rng seeds collectible relocation; pass nil for a time-seeded source.
func NewCollisionSystem(worldW, worldH float64, rng *rand.Rand) *CollisionSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &CollisionSystem{WorldW: worldW, WorldH: worldH, rng: rng}
}

// Update checks the player against every collectible and hazard once.
// Player-collectible overlap increments the score by one and relocates the
// collectible to a random in-bounds position. Player-hazard overlap resets
// the score and teleports the player to the world center.
func (s *CollisionSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}
	player := w.FindByRole(components.RolePlayer)
	pt := w.GetTransform(player)
	if pt == nil {
		return
	}

	for _, e := range w.Roles().Entities() {
		r := w.GetRole(e)
		if r == nil {
			continue
		}
		tr := w.GetTransform(e)
		if tr == nil || !pt.Overlaps(tr) {
			continue
		}
		switch r.Kind {
		case components.RoleCollectible:
			s.Score++
			s.relocate(w, e, tr)
			w.Events().Push(ecs.Event{Type: "collision", Data: ecs.CollisionEvent{
				Player: player, Other: e, Kind: ecs.CollisionEventCollect,
			}})
		case components.RoleHazard:
			s.Score = 0
			pt.X = (s.WorldW - pt.W) / 2
			pt.Y = (s.WorldH - pt.H) / 2
			w.Events().Push(ecs.Event{Type: "collision", Data: ecs.CollisionEvent{
				Player: player, Other: e, Kind: ecs.CollisionEventHazard,
			}})
		}
	}
}

// relocate moves the collectible to a random position whose AABB stays
// inside the world, and re-bases any attached behavior script so scripted
// motion continues from the new spot.
func (s *CollisionSystem) relocate(w *ecs.World, e ecs.Entity, tr *components.Transform) {
	maxX := s.WorldW - tr.W
	maxY := s.WorldH - tr.H
	if maxX < 0 || maxY < 0 {
		return
	}
	tr.X = s.rng.Float64() * maxX
	tr.Y = s.rng.Float64() * maxY
	if b := w.GetBehavior(e); b != nil {
		b.BaseX = tr.X
		b.BaseY = tr.Y
		b.Age = 0
	}
}
