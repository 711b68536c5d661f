package systems

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/renbry/playbox/ecs"
	"github.com/renbry/playbox/ecs/components"
)

// ScriptLoader resolves a script path to source bytes.
type ScriptLoader func(path string) ([]byte, error)

// BehaviorSystem runs per-entity motion scripts. Scripts see the globals
// t, dt, base_x, base_y, x, y and write their result back into x and y.
// A script that fails to load, compile, or run is logged once and disabled
// for that entity; the entity keeps rendering and colliding normally.
type BehaviorSystem struct {
	loader   ScriptLoader
	compiled map[string]*tengo.Compiled
	broken   map[string]bool
	clock    float64
}

// NewBehaviorSystem creates a BehaviorSystem loading scripts through load.
func NewBehaviorSystem(load ScriptLoader) *BehaviorSystem {
	return &BehaviorSystem{
		loader:   load,
		compiled: map[string]*tengo.Compiled{},
		broken:   map[string]bool{},
	}
}

// Update advances the clock and runs every enabled behavior script.
func (s *BehaviorSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || s.loader == nil {
		return
	}
	s.clock += dt
	for _, e := range w.Behaviors().Entities() {
		b := w.GetBehavior(e)
		if b == nil || b.Disabled || b.ScriptPath == "" {
			continue
		}
		tr := w.GetTransform(e)
		if tr == nil {
			continue
		}
		b.Age += dt

		c, err := s.compile(b.ScriptPath)
		if err != nil {
			log.Printf("behavior: entity=%s script %s: %v", e, b.ScriptPath, err)
			b.Disabled = true
			continue
		}

		if err := s.run(c, b.Age, dt, b.BaseX, b.BaseY, tr); err != nil {
			log.Printf("behavior: entity=%s script %s: %v", e, b.ScriptPath, err)
			b.Disabled = true
		}
	}
}

func (s *BehaviorSystem) compile(path string) (*tengo.Compiled, error) {
	if c, ok := s.compiled[path]; ok {
		return c, nil
	}
	if s.broken[path] {
		return nil, fmt.Errorf("previously failed to compile")
	}
	src, err := s.loader(path)
	if err != nil {
		s.broken[path] = true
		return nil, fmt.Errorf("load: %w", err)
	}
	script := tengo.NewScript(src)
	_ = script.Add("t", 0.0)
	_ = script.Add("dt", 0.0)
	_ = script.Add("base_x", 0.0)
	_ = script.Add("base_y", 0.0)
	_ = script.Add("x", 0.0)
	_ = script.Add("y", 0.0)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))

	c, err := script.Compile()
	if err != nil {
		s.broken[path] = true
		return nil, fmt.Errorf("compile: %w", err)
	}
	s.compiled[path] = c
	return c, nil
}

func (s *BehaviorSystem) run(c *tengo.Compiled, age, dt, baseX, baseY float64, tr *components.Transform) error {
	if err := c.Set("t", age); err != nil {
		return err
	}
	if err := c.Set("dt", dt); err != nil {
		return err
	}
	if err := c.Set("base_x", baseX); err != nil {
		return err
	}
	if err := c.Set("base_y", baseY); err != nil {
		return err
	}
	if err := c.Set("x", tr.X); err != nil {
		return err
	}
	if err := c.Set("y", tr.Y); err != nil {
		return err
	}
	if err := c.Run(); err != nil {
		return err
	}
	tr.X = c.Get("x").Float()
	tr.Y = c.Get("y").Float()
	return nil
}
