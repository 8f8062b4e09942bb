package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/gravflip/internal/core"
)

// inputSource is the slice of Ebitengine input state the frontend reads.
type inputSource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	Cursor() (int, int)
	Clicked() bool
}

// ebitenInput reads the live keyboard and mouse.
type ebitenInput struct{}

func (ebitenInput) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenInput) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenInput) Cursor() (int, int)            { return ebiten.CursorPosition() }
func (ebitenInput) Clicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Held movement keys
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// Edge-fired keys
var edgeKeys = map[core.Action][]ebiten.Key{
	core.ActionFlip:      {ebiten.KeySpace},
	core.ActionStart:     {ebiten.KeyEnter},
	core.ActionRestart:   {ebiten.KeyR},
	core.ActionPlayAgain: {ebiten.KeyN},
	core.ActionQuit:      {ebiten.KeyEscape},
}

// readFrame builds the input frame for one tick. Cursor coordinates are
// already logical because Layout reports the playfield size.
func readFrame(src inputSource) core.InputFrame {
	frame := core.NewInputFrame()

	for action, keys := range heldKeys {
		for _, k := range keys {
			if src.Pressed(k) {
				frame.Hold(action)
				break
			}
		}
	}
	for action, keys := range edgeKeys {
		for _, k := range keys {
			if src.JustPressed(k) {
				frame.Set(action)
				break
			}
		}
	}

	x, y := src.Cursor()
	frame.PointAt(x, y)
	if src.Clicked() {
		frame.ClickAt(x, y)
	}
	return frame
}
