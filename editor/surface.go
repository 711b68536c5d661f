package editor

import (
	"github.com/renbry/playbox/ecs"
	"github.com/renbry/playbox/render"
)

// PointerState is one frame's pointer snapshot in output/screen pixels.
type PointerState struct {
	X, Y        float64
	Pressed     bool
	JustPressed bool
}

// Surface interprets pointer gestures over the last rectangle the renderer
// bridge drew into, mapping them back into world space to select, drag, and
// delete entities. The selection is a non-owning reference: it never keeps
// an entity alive and is cleared the moment its entity dies.
type Surface struct {
	worldW, worldH float64

	selection ecs.Entity
	dragging  bool
	// world-space offset from the pointer to the selection center, captured
	// at drag start so the entity doesn't jump to the cursor.
	grabDX, grabDY float64
}

// NewSurface creates a Surface for a world of the given size.
func NewSurface(worldW, worldH float64) *Surface {
	return &Surface{worldW: worldW, worldH: worldH}
}

// Selection returns the selected entity, or InvalidEntity.
func (s *Surface) Selection() ecs.Entity {
	if s == nil {
		return ecs.InvalidEntity
	}
	return s.selection
}

// Select sets the selection.
func (s *Surface) Select(e ecs.Entity) {
	if s == nil {
		return
	}
	s.selection = e
	s.dragging = false
}

// ClearSelection empties the selection.
func (s *Surface) ClearSelection() {
	if s == nil {
		return
	}
	s.selection = ecs.InvalidEntity
	s.dragging = false
}

// ScreenToWorld maps a screen point over rect into world coordinates,
// inverting the bridge's world-to-rect scaling. ok is false for a
// degenerate rectangle or world, which callers treat as a no-op.
func (s *Surface) ScreenToWorld(rect render.Rect, sx, sy float64) (wx, wy float64, ok bool) {
	if s == nil || rect.Empty() || s.worldW <= 0 || s.worldH <= 0 {
		return 0, 0, false
	}
	wx = (sx - rect.X) * s.worldW / rect.W
	wy = (sy - rect.Y) * s.worldH / rect.H
	return wx, wy, true
}

// HandlePointer applies one frame of pointer state measured over rect.
// With a live selection, dragging moves the entity so its center tracks the
// mapped world point (relative to where it was grabbed); no bounds clamp is
// applied here, that is physics' job. With no selection, a press hit-tests
// all entities in ascending id order and selects the first whose AABB
// contains the point; a miss leaves the selection empty.
func (s *Surface) HandlePointer(w *ecs.World, rect render.Rect, p PointerState) {
	if s == nil || w == nil {
		return
	}
	if s.selection.Valid() && !w.IsAlive(s.selection) {
		s.ClearSelection()
	}
	if !p.Pressed {
		s.dragging = false
		return
	}
	wx, wy, ok := s.ScreenToWorld(rect, p.X, p.Y)
	if !ok {
		return
	}
	inside := p.X >= rect.X && p.X <= rect.X+rect.W && p.Y >= rect.Y && p.Y <= rect.Y+rect.H

	if s.selection.Valid() {
		tr := w.GetTransform(s.selection)
		if tr == nil {
			return
		}
		if !s.dragging {
			if !p.JustPressed || !inside {
				return
			}
			cx, cy := tr.Center()
			s.grabDX = wx - cx
			s.grabDY = wy - cy
			s.dragging = true
		}
		tr.X = (wx - s.grabDX) - tr.W/2
		tr.Y = (wy - s.grabDY) - tr.H/2
		return
	}

	if !p.JustPressed || !inside {
		return
	}
	for _, e := range w.Entities() {
		tr := w.GetTransform(e)
		if tr == nil || !tr.Contains(wx, wy) {
			continue
		}
		s.selection = e
		break
	}
}

// DeleteSelected destroys the selected entity and clears the selection in
// the same step, so no later frame can observe a selection naming a dead
// id. It reports whether anything was deleted.
func (s *Surface) DeleteSelected(w *ecs.World) bool {
	if s == nil || w == nil || !s.selection.Valid() {
		return false
	}
	e := s.selection
	s.selection = ecs.InvalidEntity
	s.dragging = false
	if !w.IsAlive(e) {
		return false
	}
	w.DestroyEntity(e)
	return true
}
