package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravflip/internal/config"
	"github.com/vovakirdan/gravflip/internal/core"
	"github.com/vovakirdan/gravflip/internal/games/gravflip"
	"github.com/vovakirdan/gravflip/internal/media"
	"github.com/vovakirdan/gravflip/internal/storage"
)

type soundRecorder struct {
	media.Nop
	sounds []core.Sound
}

func (r *soundRecorder) PlaySound(s core.Sound) {
	r.sounds = append(r.sounds, s)
}

func testOptions() Options {
	return Options{Config: core.RuntimeConfig{ScreenW: 100, ScreenH: 36, TickRate: 60}}
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(m Model, n int) Model {
	for i := 0; i < n; i++ {
		m = send(m, TickMsg(time.Now()))
	}
	return m
}

// instantWin puts the goal where the player lands on the first frame.
func instantWin() config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Goal = config.RectConfig{X: 120, Y: 600, W: 40, H: 40}
	return cfg
}

func TestModelEnterStartsRound(t *testing.T) {
	g := gravflip.New(config.DefaultGameConfig())
	m := NewModel(g, testOptions())

	m = tick(m, 3)
	if g.Round() != gravflip.RoundFrontPage {
		t.Fatalf("expected front page, got %v", g.Round())
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(m, 1)
	if !m.State().Playing {
		t.Errorf("expected Playing after enter, got %+v", m.State())
	}
}

func TestModelClickStartButton(t *testing.T) {
	g := gravflip.New(config.DefaultGameConfig())
	m := NewModel(g, testOptions())

	// Outside the button
	m = send(m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(m, 1)
	if g.Round() != gravflip.RoundFrontPage {
		t.Fatalf("click outside the button should be ignored")
	}

	// Hover without clicking
	m = send(m, tea.MouseMsg{X: 50, Y: 23, Action: tea.MouseActionMotion})
	m = tick(m, 1)
	if !g.Snapshot().ButtonHover {
		t.Error("pointer over the button should highlight it")
	}
	if g.Round() != gravflip.RoundFrontPage {
		t.Fatalf("motion alone should not start the round")
	}

	m = send(m, tea.MouseMsg{X: 50, Y: 23, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	tick(m, 1)
	if g.Round() != gravflip.RoundPlaying {
		t.Errorf("click on the button should start, got %v", g.Round())
	}
}

func TestModelHeldMovement(t *testing.T) {
	g := gravflip.New(config.DefaultGameConfig())
	opts := testOptions()
	opts.HoldTicks = 4
	m := NewModel(g, opts)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(m, 1)
	startX := g.Player().X

	m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(m, 4)
	if got := g.Player().X; got != startX+20 {
		t.Errorf("X = %d, expected %d after 4 held ticks", got, startX+20)
	}

	tick(m, 3)
	if got := g.Player().X; got != startX+20 {
		t.Errorf("X = %d, movement should stop once the hold expires", got)
	}
}

func TestModelBlurReleasesHeldKeys(t *testing.T) {
	g := gravflip.New(config.DefaultGameConfig())
	m := NewModel(g, testOptions())

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(m, 1)

	m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(m, 2)
	heldX := g.Player().X

	m = send(m, tea.BlurMsg{})
	tick(m, 5)
	if got := g.Player().X; got != heldX {
		t.Errorf("X = %d, expected %d after focus was lost", got, heldX)
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	sound := &soundRecorder{}
	opts := testOptions()
	opts.Store = store
	opts.Player = "tester"
	opts.Sound = sound

	g := gravflip.New(instantWin())
	m := NewModel(g, opts)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(m, 10)
	if !m.State().Won {
		t.Fatalf("expected a win, got %+v", m.State())
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	if runs[0].Outcome != storage.OutcomeWin || runs[0].Player != "tester" {
		t.Errorf("unexpected run: %+v", runs[0])
	}
	if len(sound.sounds) != 1 || sound.sounds[0] != core.SoundWin {
		t.Errorf("expected one win sound, got %v", sound.sounds)
	}

	// Play again and win a second time
	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	tick(m, 5)

	runs, _ = store.RecentRuns(10)
	if len(runs) != 2 {
		t.Errorf("expected 2 saved runs after playing again, got %d", len(runs))
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions()
	opts.ScreenshotDir = dir

	m := NewModel(gravflip.New(config.DefaultGameConfig()), opts)
	send(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 screenshot, got %d", len(entries))
	}
	if !strings.HasPrefix(entries[0].Name(), gravflip.ID+"_") {
		t.Errorf("unexpected file name %q", entries[0].Name())
	}

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), gravflip.Title) {
		t.Errorf("screenshot does not contain the title")
	}
}

func TestModelResizeAndQuit(t *testing.T) {
	m := NewModel(gravflip.New(config.DefaultGameConfig()), testOptions())

	m = send(m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.screen.Width() != 60 || m.screen.Height() != 19 {
		t.Errorf("playfield = %dx%d, expected 60x19", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "left") {
		t.Error("view should include the help line")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}
