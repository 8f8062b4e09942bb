// Package window runs the game in a desktop window with Ebitengine.
// Images and sounds come from an asset directory; anything missing is
// replaced by flat colors or silence.
package window

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/gravflip/internal/core"
	"github.com/vovakirdan/gravflip/internal/games/gravflip"
	"github.com/vovakirdan/gravflip/internal/media"
	"github.com/vovakirdan/gravflip/internal/storage"
)

// Debug font cell size used by ebitenutil.DebugPrintAt
const (
	glyphW = 6
	glyphH = 16
)

// Fallback colors when an image asset is missing
var (
	colorSky       = color.RGBA{R: 24, G: 28, B: 48, A: 255}
	colorIntro     = color.RGBA{R: 12, G: 12, B: 24, A: 255}
	colorPlayer    = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	colorPlatform  = color.RGBA{R: 120, G: 90, B: 60, A: 255}
	colorObstacle  = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	colorGoal      = color.RGBA{R: 255, G: 105, B: 180, A: 255}
	colorButton    = color.RGBA{R: 70, G: 70, B: 110, A: 255}
	colorButtonHot = color.RGBA{R: 110, G: 110, B: 170, A: 255}
	colorShade     = color.RGBA{A: 160}
)

// Options configures the window frontend.
type Options struct {
	AssetDir string         // Empty runs without assets
	Store    *storage.Store // Nil disables run history
	Player   string         // Name recorded with each run
	Logger   *log.Logger    // Nil discards logs
	TickRate int            // 0 uses 60
	Mute     bool
}

// Window adapts a gravflip game to ebiten.Game.
type Window struct {
	game     *gravflip.Game
	input    inputSource
	sprites  sprites
	sound    media.Player
	recorder *storage.Recorder
}

var _ ebiten.Game = (*Window)(nil)

// Update advances the simulation by one tick.
func (w *Window) Update() error {
	frame := readFrame(w.input)
	if frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	result := w.game.Step(frame)
	media.Dispatch(w.sound, result.Events)
	w.recorder.Observe(result.State)
	return nil
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.game.Snapshot()

	if snap.Round == gravflip.RoundFrontPage {
		w.drawFrontPage(screen, snap)
		return
	}

	drawSprite(screen, w.sprites.background, core.NewRect(0, 0, snap.Width, snap.Height), colorSky, false)
	for _, p := range snap.Platforms {
		drawSprite(screen, w.sprites.platform, p, colorPlatform, false)
	}
	for _, o := range snap.Obstacles {
		drawSprite(screen, w.sprites.obstacle, o, colorObstacle, false)
	}
	drawSprite(screen, w.sprites.goal, snap.Goal, colorGoal, false)
	drawSprite(screen, w.sprites.player, snap.Player, colorPlayer, snap.GravityReversed)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 10, 10)

	switch snap.Round {
	case gravflip.RoundGameOver:
		drawMessage(screen, snap, "Game Over! Press R to restart")
	case gravflip.RoundWin:
		drawMessage(screen, snap, "You Win! Press N to play again")
	}
}

// Layout keeps the logical playfield size so cursor positions need no mapping.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.game.Size()
}

func (w *Window) drawFrontPage(screen *ebiten.Image, snap gravflip.Snapshot) {
	drawSprite(screen, w.sprites.intro, core.NewRect(0, 0, snap.Width, snap.Height), colorIntro, false)

	title := gravflip.Title
	ebitenutil.DebugPrintAt(screen, title, centeredX(snap.Width, title), snap.Height/3)

	b := snap.StartButton
	fill := colorButton
	if snap.ButtonHover {
		fill = colorButtonHot
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fill, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, color.White, false)

	label := "Start"
	ebitenutil.DebugPrintAt(screen, label, b.X+(b.W-len(label)*glyphW)/2, b.Y+(b.H-glyphH)/2)
}

// drawMessage shades the playfield and prints the end-of-round text.
func drawMessage(screen *ebiten.Image, snap gravflip.Snapshot, msg string) {
	vector.DrawFilledRect(screen, 0, 0, float32(snap.Width), float32(snap.Height), colorShade, false)

	y := snap.Height/2 - glyphH
	ebitenutil.DebugPrintAt(screen, msg, centeredX(snap.Width, msg), y)

	score := fmt.Sprintf("Your Score: %d", snap.Score)
	ebitenutil.DebugPrintAt(screen, score, centeredX(snap.Width, score), y+2*glyphH)
}

// drawSprite stretches img over r, or fills r with fallback when img is nil.
func drawSprite(dst, img *ebiten.Image, r core.Rect, fallback color.Color, flipY bool) {
	if img == nil {
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fallback, false)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = spriteGeoM(img.Bounds().Dx(), img.Bounds().Dy(), r, flipY)
	dst.DrawImage(img, op)
}

// spriteGeoM maps an imgW×imgH image onto r, mirrored vertically if flipY.
func spriteGeoM(imgW, imgH int, r core.Rect, flipY bool) ebiten.GeoM {
	var m ebiten.GeoM
	if imgW <= 0 || imgH <= 0 {
		return m
	}
	sx := float64(r.W) / float64(imgW)
	sy := float64(r.H) / float64(imgH)
	if flipY {
		m.Scale(sx, -sy)
		m.Translate(float64(r.X), float64(r.Bottom()))
		return m
	}
	m.Scale(sx, sy)
	m.Translate(float64(r.X), float64(r.Y))
	return m
}

// centeredX returns the x that centers text in the debug font.
func centeredX(width int, text string) int {
	return (width - len(text)*glyphW) / 2
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(game *gravflip.Game, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}

	var loader media.Loader = media.Nop{}
	if opts.AssetDir != "" {
		loader = media.Dir{Path: opts.AssetDir}
	}

	var sound media.Player = media.Nop{}
	if !opts.Mute {
		sound = newAudioPlayer(audio.NewContext(sampleRate), loader, opts.Logger)
	}
	defer func() {
		if err := sound.Close(); err != nil {
			opts.Logger.Warn("closing audio", "error", err)
		}
	}()
	sound.PlayMusic()

	win := &Window{
		game:     game,
		input:    ebitenInput{},
		sprites:  loadSprites(loader, opts.Logger),
		sound:    sound,
		recorder: storage.NewRecorder(opts.Store, opts.Player, opts.Logger),
	}

	w, h := game.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(opts.TickRate)

	opts.Logger.Info("opening window", "width", w, "height", h, "assets", opts.AssetDir)
	if err := ebiten.RunGame(win); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
