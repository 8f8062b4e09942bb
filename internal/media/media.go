// Package media defines the presentation capability set used by frontends:
// asset loading and sound playback. Game logic never depends on it; a
// frontend turns each core.Event into a PlaySound call.
package media

import (
	"errors"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"

	// PNG decoder for LoadImage
	_ "image/png"

	"github.com/vovakirdan/gravflip/internal/core"
)

// ErrUnavailable is returned by loaders that have no backing assets.
var ErrUnavailable = errors.New("media: unavailable")

// Loader reads named assets.
type Loader interface {
	LoadImage(name string) (image.Image, error)
	LoadAudio(name string) ([]byte, error)
}

// Player plays sounds and background music.
type Player interface {
	PlaySound(s core.Sound)
	PlayMusic()
	Close() error
}

// Dispatch plays the sound of every event.
func Dispatch(p Player, events []core.Event) {
	for _, ev := range events {
		if ev.Sound != 0 {
			p.PlaySound(ev.Sound)
		}
	}
}

// Dir loads assets from a directory on disk.
type Dir struct {
	Path string
}

// LoadImage decodes a PNG image from the asset directory.
func (d Dir) LoadImage(name string) (image.Image, error) {
	f, err := os.Open(filepath.Join(d.Path, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// LoadAudio reads an encoded audio file from the asset directory.
func (d Dir) LoadAudio(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(d.Path, name))
}

// Nop loads nothing and stays silent.
type Nop struct{}

func (Nop) LoadImage(string) (image.Image, error) { return nil, ErrUnavailable }
func (Nop) LoadAudio(string) ([]byte, error)      { return nil, ErrUnavailable }
func (Nop) PlaySound(core.Sound)                  {}
func (Nop) PlayMusic()                            {}
func (Nop) Close() error                          { return nil }

// Bell rings the terminal bell for every sound. Music is not supported.
type Bell struct {
	Nop

	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a bell that writes to w, usually the terminal or an SSH session.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// PlaySound writes a BEL character.
func (b *Bell) PlaySound(core.Sound) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.w != nil {
		_, _ = io.WriteString(b.w, "\a")
	}
}
