package render

import (
	"image/color"

	"github.com/renbry/playbox/ecs"
)

var (
	backgroundColor  = color.NRGBA{R: 0x14, G: 0x14, B: 0x14, A: 0xff}
	placeholderColor = color.NRGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
	highlightColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0x00, A: 0x78}
)

// highlightPad is how far the selection overlay extends past the entity's
// AABB, in world units.
const highlightPad = 4.0

// Bridge draws the entire world into an arbitrary output rectangle. One
// routine serves the full-window pass and any number of shrunk editor-panel
// passes: the destination only ever enters through the target's substituted
// viewport and scale state, never through per-draw math.
type Bridge struct {
	WorldW, WorldH float64
	Assets         *AssetCache

	lastRect Rect
	hasDrawn bool
}

// NewBridge creates a bridge for a world of the given size drawing sprites
// out of assets.
func NewBridge(worldW, worldH float64, assets *AssetCache) *Bridge {
	return &Bridge{WorldW: worldW, WorldH: worldH, Assets: assets}
}

// DrawWorldInto draws background, every entity, and the selection highlight
// into rect on t. The target's viewport and scale are saved on entry and
// restored on every exit path, so the call is state-neutral even for a
// zero-area rect. All entity draws use unmodified world-space coordinates.
func (b *Bridge) DrawWorldInto(t Target, w *ecs.World, selected ecs.Entity, rect Rect) {
	if b == nil || t == nil || w == nil {
		return
	}
	prevViewport := t.Viewport()
	prevScale := t.Scale()
	defer func() {
		t.SetScale(prevScale)
		t.SetViewport(prevViewport)
	}()

	t.SetViewport(rect)
	t.SetScale(b.scaleFor(rect))

	b.lastRect = rect
	b.hasDrawn = true

	t.FillRect(Rect{W: b.WorldW, H: b.WorldH}, backgroundColor)

	for _, e := range w.Entities() {
		tr := w.GetTransform(e)
		if tr == nil {
			continue
		}
		sp := w.GetSprite(e)
		var res *Resource
		if sp != nil && sp.ImageKey != "" {
			res = b.Assets.Load(sp.ImageKey)
		}
		if res != nil {
			scale := sp.Scale
			if scale <= 0 {
				scale = 1
			}
			t.DrawResource(res, Rect{X: tr.X, Y: tr.Y, W: tr.W * scale, H: tr.H * scale}, tr.Angle)
		} else {
			t.FillRect(Rect{X: tr.X, Y: tr.Y, W: tr.W, H: tr.H}, placeholderColor)
		}
	}

	if selected.Valid() {
		if tr := w.GetTransform(selected); tr != nil {
			t.FillRect(Rect{
				X: tr.X - highlightPad,
				Y: tr.Y - highlightPad,
				W: tr.W + 2*highlightPad,
				H: tr.H + 2*highlightPad,
			}, highlightColor)
		}
	}
}

// LastRect returns the most recent rectangle drawn into, and whether any
// draw has happened yet. The editor surface maps pointer gestures through
// this rectangle.
func (b *Bridge) LastRect() (Rect, bool) {
	if b == nil {
		return Rect{}, false
	}
	return b.lastRect, b.hasDrawn
}

// scaleFor returns the anisotropic rect/world ratio. A zero-area rect or a
// zero-sized world yields a zero scale, which is well defined and draws
// nothing.
func (b *Bridge) scaleFor(rect Rect) Scale {
	var s Scale
	if b.WorldW > 0 {
		s.X = rect.W / b.WorldW
	}
	if b.WorldH > 0 {
		s.Y = rect.H / b.WorldH
	}
	return s
}
