package render

import "image/color"

// Rect is an axis-aligned rectangle. The bridge uses it both for output
// rectangles in screen pixels and for draw rectangles in world space.
type Rect struct {
	X, Y float64
	W, H float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Scale is an anisotropic draw scale.
type Scale struct {
	X, Y float64
}

// Target is the output surface the bridge draws into. It carries two pieces
// of substitutable global state, the viewport rectangle and the draw scale:
// every draw call is interpreted inside the current viewport and multiplied
// by the current scale. Swapping that state is what lets identical
// world-space draw code serve the full window and a shrunk editor panel.
//
// Presentation itself is owned by the windowing layer; a Target only
// accumulates draws for the current frame.
type Target interface {
	Viewport() Rect
	SetViewport(Rect)
	Scale() Scale
	SetScale(Scale)

	// FillRect fills r (in viewport-local, pre-scale coordinates).
	FillRect(r Rect, c color.Color)
	// DrawResource draws a cached resource into dst (viewport-local,
	// pre-scale), rotated by angle radians about the rectangle center.
	DrawResource(res *Resource, dst Rect, angle float64)
}
