package window

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"

	"github.com/vovakirdan/gravflip/internal/core"
	"github.com/vovakirdan/gravflip/internal/media"
)

const sampleRate = 44100

// Image asset names
const (
	imagePlayer     = "player.png"
	imagePlatform   = "platform.png"
	imageObstacle   = "obstacle.png"
	imageGoal       = "goal.png"
	imageBackground = "background.png"
	imageIntro      = "intro.png"
)

// Audio asset names
const (
	audioMusic     = "bg.mp3"
	audioCollision = "collision.mp3"
	audioWin       = "win.mp3"
)

// sprites holds the images that loaded. A nil entry is drawn as a flat rectangle.
type sprites struct {
	player     *ebiten.Image
	platform   *ebiten.Image
	obstacle   *ebiten.Image
	goal       *ebiten.Image
	background *ebiten.Image
	intro      *ebiten.Image
}

// loadSprites loads every image, logging a warning for each one missing.
func loadSprites(loader media.Loader, logger *log.Logger) sprites {
	load := func(name string) *ebiten.Image {
		img, err := loader.LoadImage(name)
		if err != nil {
			logger.Warn("image unavailable, using flat color", "asset", name, "error", err)
			return nil
		}
		return ebiten.NewImageFromImage(img)
	}

	return sprites{
		player:     load(imagePlayer),
		platform:   load(imagePlatform),
		obstacle:   load(imageObstacle),
		goal:       load(imageGoal),
		background: load(imageBackground),
		intro:      load(imageIntro),
	}
}

// audioPlayer plays decoded mp3 assets through an Ebitengine audio context.
// Sounds that failed to load are skipped silently.
type audioPlayer struct {
	music  *audio.Player
	sounds map[core.Sound]*audio.Player
	logger *log.Logger
}

var _ media.Player = (*audioPlayer)(nil)

// newAudioPlayer decodes the music and sound effects. Only one audio
// context may exist per process, so the caller owns ctx.
func newAudioPlayer(ctx *audio.Context, loader media.Loader, logger *log.Logger) *audioPlayer {
	p := &audioPlayer{
		sounds: make(map[core.Sound]*audio.Player),
		logger: logger,
	}

	if music, err := loadMusic(ctx, loader); err != nil {
		logger.Warn("music unavailable", "asset", audioMusic, "error", err)
	} else {
		p.music = music
	}

	for sound, name := range map[core.Sound]string{
		core.SoundCollision: audioCollision,
		core.SoundWin:       audioWin,
	} {
		sfx, err := loadEffect(ctx, loader, name)
		if err != nil {
			logger.Warn("sound unavailable", "asset", name, "error", err)
			continue
		}
		p.sounds[sound] = sfx
	}
	return p
}

// loadMusic decodes the background track as an infinite loop.
func loadMusic(ctx *audio.Context, loader media.Loader) (*audio.Player, error) {
	data, err := loader.LoadAudio(audioMusic)
	if err != nil {
		return nil, err
	}
	d, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", audioMusic, err)
	}
	loop := audio.NewInfiniteLoop(d, d.Length())
	return ctx.NewPlayer(loop)
}

// loadEffect decodes a short sound fully so it can be rewound and replayed.
func loadEffect(ctx *audio.Context, loader media.Loader, name string) (*audio.Player, error) {
	data, err := loader.LoadAudio(name)
	if err != nil {
		return nil, err
	}
	d, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	pcm, err := io.ReadAll(d)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return ctx.NewPlayerFromBytes(pcm), nil
}

// PlaySound restarts the effect from the beginning.
func (p *audioPlayer) PlaySound(s core.Sound) {
	sfx, ok := p.sounds[s]
	if !ok {
		return
	}
	if err := sfx.Rewind(); err != nil {
		p.logger.Debug("rewind failed", "sound", s, "error", err)
		return
	}
	sfx.Play()
}

// PlayMusic starts the background loop if it is not already playing.
func (p *audioPlayer) PlayMusic() {
	if p.music != nil && !p.music.IsPlaying() {
		p.music.Play()
	}
}

// Close releases every player.
func (p *audioPlayer) Close() error {
	var errs []error
	if p.music != nil {
		errs = append(errs, p.music.Close())
	}
	for _, sfx := range p.sounds {
		errs = append(errs, sfx.Close())
	}
	return errors.Join(errs...)
}
