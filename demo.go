package main

import (
	"log"
	"math/rand"
	"path/filepath"

	"github.com/renbry/playbox/ecs"
	"github.com/renbry/playbox/ecs/components"
	"github.com/renbry/playbox/prefabs"
)

// demoPrefabs are spawned, in order, by the demo scene routine.
var demoPrefabs = []string{"player.yaml", "collectible.yaml", "hazard.yaml"}

// spawnDemoScene resets the world and builds the stock demo: a player in
// the center, a hovering collectible, and a pursuing hazard, both placed
// randomly. Scenes are regenerated every run; nothing is persisted.
func (g *Game) spawnDemoScene() {
	g.world.Clear()
	g.surface.ClearSelection()
	g.collision.Score = 0

	for _, name := range demoPrefabs {
		spec, err := prefabs.LoadEntitySpec(name)
		if err != nil {
			log.Printf("demo: %v", err)
			continue
		}
		g.spawnFromSpec(spec)
	}
}

// spawnFromSpec builds one entity from a prefab template. Player-role
// entities are centered and get a velocity for the control system; other
// roles spawn at a random in-bounds position.
func (g *Game) spawnFromSpec(spec *prefabs.EntitySpec) ecs.Entity {
	worldW := float64(g.cfg.Width)
	worldH := float64(g.cfg.Height)

	tr := &components.Transform{
		X:     spec.Transform.X,
		Y:     spec.Transform.Y,
		W:     spec.Transform.W,
		H:     spec.Transform.H,
		Angle: spec.Transform.Angle,
	}
	role := roleFromName(spec.Role)
	if role == components.RolePlayer {
		tr.X = (worldW - tr.W) / 2
		tr.Y = (worldH - tr.H) / 2
	} else if tr.X == 0 && tr.Y == 0 {
		tr.X = rand.Float64() * (worldW - tr.W)
		tr.Y = rand.Float64() * (worldH - tr.H)
	}

	e := g.world.CreateEntity()
	g.world.SetTransform(e, tr)
	g.world.SetRole(e, &components.Role{Kind: role})

	// A prefab speed overrides the configured default for its role.
	if spec.Speed > 0 {
		switch role {
		case components.RolePlayer:
			if g.control != nil {
				g.control.Speed = spec.Speed
			}
		case components.RoleHazard:
			if g.pursuit != nil {
				g.pursuit.Speed = spec.Speed
			}
		}
	}

	if spec.Sprite.Image != "" {
		scale := spec.Sprite.Scale
		if scale <= 0 {
			scale = 1
		}
		g.world.SetSprite(e, &components.Sprite{
			ImageKey: filepath.ToSlash(spec.Sprite.Image),
			Scale:    scale,
		})
	}
	if role == components.RolePlayer {
		g.world.SetVelocity(e, &components.Velocity{})
	}
	if spec.Behavior.Script != "" {
		g.world.SetBehavior(e, &components.Behavior{
			ScriptPath: spec.Behavior.Script,
			BaseX:      tr.X,
			BaseY:      tr.Y,
		})
	}
	return e
}

func roleFromName(name string) components.RoleKind {
	switch name {
	case "player":
		return components.RolePlayer
	case "hazard":
		return components.RoleHazard
	case "collectible":
		return components.RoleCollectible
	}
	return components.RoleNone
}
