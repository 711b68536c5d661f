package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/renbry/playbox/ecs"
	"github.com/renbry/playbox/ecs/systems"
	"github.com/renbry/playbox/editor"
	"github.com/renbry/playbox/prefabs"
	"github.com/renbry/playbox/render"
)

// Game runs one engine iteration per Update/Draw pair: poll input, simulate
// when playing, draw the world into the full window and optionally into the
// editor panel, then let Ebiten present. The frame-rate cap comes from
// Ebiten's tick rate; deltaTime is measured wall-clock, so it is a cap, not
// a fixed-timestep accumulator.
type Game struct {
	cfg Config

	world     *ecs.World
	input     *Input
	assets    *render.AssetCache
	bridge    *render.Bridge
	surface   *editor.Surface
	control   *systems.ControlSystem
	pursuit   *systems.PursuitSystem
	collision *systems.CollisionSystem

	ui        *ebitenui.UI
	setStatus func(string)

	watcher *prefabs.Watcher

	playing    bool
	editorOpen bool
	lastFrame  time.Time
}

// NewGame wires the world, systems, renderer bridge, editor surface, and UI
// chrome, then spawns the demo scene.
func NewGame(cfg Config) *Game {
	worldW := float64(cfg.Width)
	worldH := float64(cfg.Height)

	g := &Game{
		cfg:     cfg,
		world:   ecs.NewWorld(),
		input:   NewInput(),
		assets:  render.NewAssetCache(),
		surface: editor.NewSurface(worldW, worldH),
	}
	g.bridge = render.NewBridge(worldW, worldH, g.assets)
	g.control = systems.NewControlSystem(g.input, cfg.PlayerSpeed)
	g.pursuit = systems.NewPursuitSystem(cfg.PursuitSpeed)
	g.collision = systems.NewCollisionSystem(worldW, worldH, nil)

	// Simulation order: input-driven control, then motion, then outcomes.
	g.world.AddSystem(g.control)
	g.world.AddSystem(systems.NewPhysicsSystem(worldW, worldH))
	g.world.AddSystem(g.pursuit)
	g.world.AddSystem(systems.NewBehaviorSystem(prefabs.LoadScript))
	g.world.AddSystem(g.collision)

	g.ui, g.setStatus = buildEditorUI(g)

	if watcher, err := prefabs.NewWatcher(cfg.AssetDir); err != nil {
		log.Printf("watch: %s: %v (hot reload disabled)", cfg.AssetDir, err)
	} else {
		g.watcher = watcher
	}

	g.spawnDemoScene()
	return g
}

// Update advances the loop by one frame.
func (g *Game) Update() error {
	now := time.Now()
	var dt float64
	if !g.lastFrame.IsZero() {
		dt = now.Sub(g.lastFrame).Seconds()
	}
	g.lastFrame = now

	g.input.Update()
	if g.input.Quit {
		if g.watcher != nil {
			_ = g.watcher.Close()
		}
		return ebiten.Termination
	}

	g.drainWatcher()

	if g.input.TogglePlay {
		g.playing = !g.playing
	}
	if g.input.ToggleEditor {
		g.editorOpen = !g.editorOpen
	}
	if g.input.SpawnDemo {
		g.spawnDemoScene()
	}
	if g.input.Delete {
		g.surface.DeleteSelected(g.world)
	}

	if g.playing {
		g.world.Update(dt)
	}
	for _, evt := range g.world.Events().Drain() {
		if ce, ok := evt.Data.(ecs.CollisionEvent); ok {
			log.Printf("collision: %s entity=%s score=%d", ce.Kind, ce.Other, g.collision.Score)
		}
	}

	// Pointer gestures map through the rectangle most recently drawn by the
	// bridge, which is the editor panel whenever it is open.
	if g.editorOpen {
		if rect, ok := g.bridge.LastRect(); ok {
			g.surface.HandlePointer(g.world, rect, editor.PointerState{
				X:           g.input.CursorX,
				Y:           g.input.CursorY,
				Pressed:     g.input.MousePressed,
				JustPressed: g.input.MouseJustPressed,
			})
		}
	}

	g.ui.Update()
	g.setStatus(g.statusLine())
	return nil
}

// Draw issues the full-window world pass, then the editor panel pass, then
// the HUD and UI chrome.
func (g *Game) Draw(screen *ebiten.Image) {
	target := render.NewImageTarget(screen)
	full := render.Rect{W: float64(g.cfg.Width), H: float64(g.cfg.Height)}
	g.bridge.DrawWorldInto(target, g.world, g.surface.Selection(), full)

	if g.editorOpen {
		panel := g.panelRect()
		target.FillRect(render.Rect{
			X: panel.X - 2, Y: panel.Y - 2, W: panel.W + 4, H: panel.H + 4,
		}, panelBorderColor)
		g.bridge.DrawWorldInto(target, g.world, g.surface.Selection(), panel)
	}

	g.ui.Draw(screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n score: %d   fps: %.0f", g.collision.Score, ebiten.ActualFPS()))
}

// panelRect is the editor panel's output rectangle: the bottom-right
// quarter of the window with a small margin.
func (g *Game) panelRect() render.Rect {
	w := float64(g.cfg.Width) * 0.38
	h := float64(g.cfg.Height) * 0.38
	return render.Rect{
		X: float64(g.cfg.Width) - w - 12,
		Y: float64(g.cfg.Height) - h - 12,
		W: w,
		H: h,
	}
}

func (g *Game) statusLine() string {
	mode := "paused"
	if g.playing {
		mode = "playing"
	}
	sel := "none"
	if e := g.surface.Selection(); e.Valid() {
		sel = e.String()
	}
	return fmt.Sprintf("%s | entities: %d | selected: %s", mode, len(g.world.Entities()), sel)
}

// drainWatcher applies pending file-change notifications. Images reload in
// place; spec and script changes take effect on the next demo spawn.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.assets.Reload(filepath.ToSlash(path))
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("watch: %v", err)
			}
		default:
			return
		}
	}
}

// Layout reports the logical screen size; world and window share it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
