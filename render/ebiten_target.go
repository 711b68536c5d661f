package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageTarget adapts an *ebiten.Image to the Target interface. The viewport
// is emulated with a sub-image clip and the scale is folded into every draw
// call's geometry, mirroring how an SDL renderer carries both as global
// state.
type ImageTarget struct {
	dst      *ebiten.Image
	viewport Rect
	scale    Scale
}

// NewImageTarget wraps dst with the viewport covering the whole image and
// identity scale.
func NewImageTarget(dst *ebiten.Image) *ImageTarget {
	t := &ImageTarget{dst: dst, scale: Scale{X: 1, Y: 1}}
	if dst != nil {
		b := dst.Bounds()
		t.viewport = Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), W: float64(b.Dx()), H: float64(b.Dy())}
	}
	return t
}

func (t *ImageTarget) Viewport() Rect {
	return t.viewport
}

func (t *ImageTarget) SetViewport(r Rect) {
	t.viewport = r
}

func (t *ImageTarget) Scale() Scale {
	return t.scale
}

func (t *ImageTarget) SetScale(s Scale) {
	t.scale = s
}

// FillRect fills r, interpreted inside the current viewport at the current
// scale.
func (t *ImageTarget) FillRect(r Rect, c color.Color) {
	clip := t.clip()
	if clip == nil {
		return
	}
	x := float32(t.viewport.X + r.X*t.scale.X)
	y := float32(t.viewport.Y + r.Y*t.scale.Y)
	w := float32(r.W * t.scale.X)
	h := float32(r.H * t.scale.Y)
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(clip, x, y, w, h, c, false)
}

// DrawResource draws res stretched into dst, rotated about the rectangle
// center, interpreted inside the current viewport at the current scale.
func (t *ImageTarget) DrawResource(res *Resource, dst Rect, angle float64) {
	clip := t.clip()
	if clip == nil {
		return
	}
	img := res.Image()
	if img == nil {
		return
	}
	b := img.Bounds()
	iw, ih := b.Dx(), b.Dy()
	if iw <= 0 || ih <= 0 {
		return
	}
	outW := dst.W * t.scale.X
	outH := dst.H * t.scale.Y
	if outW <= 0 || outH <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(outW/float64(iw), outH/float64(ih))
	if angle != 0 {
		op.GeoM.Translate(-outW/2, -outH/2)
		op.GeoM.Rotate(angle)
		op.GeoM.Translate(outW/2, outH/2)
	}
	op.GeoM.Translate(t.viewport.X+dst.X*t.scale.X, t.viewport.Y+dst.Y*t.scale.Y)
	op.Filter = ebiten.FilterNearest
	clip.DrawImage(img, op)
}

// clip returns the destination restricted to the current viewport, or nil
// when there is nothing to draw into.
func (t *ImageTarget) clip() *ebiten.Image {
	if t == nil || t.dst == nil || t.viewport.Empty() {
		return nil
	}
	r := image.Rect(
		int(t.viewport.X),
		int(t.viewport.Y),
		int(t.viewport.X+t.viewport.W),
		int(t.viewport.Y+t.viewport.H),
	)
	sub, ok := t.dst.SubImage(r).(*ebiten.Image)
	if !ok {
		return nil
	}
	return sub
}
