package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the persistent key and pointer state, refreshed once at the
// top of every frame. Keys that are not pressed simply contribute nothing;
// there is no lookup that can fail.
type Input struct {
	// MoveX/MoveY form the movement axis, each in [-1, 1].
	MoveX, MoveY float64

	// CursorX/CursorY are the pointer position in logical screen pixels.
	CursorX, CursorY float64
	// MousePressed is true while the left button is held.
	MousePressed bool
	// MouseJustPressed is true only on the frame the left button went down.
	MouseJustPressed bool

	// Edge-triggered commands.
	TogglePlay   bool // Space
	ToggleEditor bool // Tab
	SpawnDemo    bool // R
	Delete       bool // Delete or Backspace
	Quit         bool // Escape
}

// NewInput creates an empty input state.
func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and mouse.
func (i *Input) Update() {
	i.MoveX, i.MoveY = 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		i.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		i.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		i.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		i.MoveY += 1
	}

	mx, my := ebiten.CursorPosition()
	i.CursorX, i.CursorY = float64(mx), float64(my)
	i.MousePressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	i.MouseJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	i.TogglePlay = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.ToggleEditor = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	i.SpawnDemo = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.Delete = inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
	i.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Axis returns the movement axis for the control system.
func (i *Input) Axis() (float64, float64) {
	if i == nil {
		return 0, 0
	}
	return i.MoveX, i.MoveY
}
