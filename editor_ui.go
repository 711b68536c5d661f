package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var panelBorderColor = color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}

// buildEditorUI assembles the toolbar chrome: play/pause, spawn, and delete
// buttons plus a status label. Chrome only mutates world state through the
// same Game/Surface operations the keyboard shortcuts use. The returned
// func updates the status label text.
func buildEditorUI(g *Game) (*ebitenui.UI, func(string)) {
	barImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xc8})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x3a, G: 0x3a, B: 0x46, A: 0xff})

	// The built-in basic font avoids shipping a TTF for four labels.
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	buttonImage := &widget.ButtonImage{Idle: btnImg, Pressed: btnImg}

	playBtn := widget.NewButton(
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Play/Pause", &face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.playing = !g.playing
		}),
	)
	spawnBtn := widget.NewButton(
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Spawn Demo", &face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.spawnDemoScene()
		}),
	)
	deleteBtn := widget.NewButton(
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Delete Selected", &face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.surface.DeleteSelected(g.world)
		}),
	)

	status := widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(barImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	bar.AddChild(playBtn)
	bar.AddChild(spawnBtn)
	bar.AddChild(deleteBtn)
	bar.AddChild(status)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(bar)

	ui := &ebitenui.UI{Container: root}
	return ui, func(s string) { status.Label = s }
}
