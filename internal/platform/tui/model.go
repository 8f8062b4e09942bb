package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gravflip/internal/core"
	"github.com/vovakirdan/gravflip/internal/media"
	"github.com/vovakirdan/gravflip/internal/storage"
)

// Game is the simulation driven by the terminal frontend.
type Game interface {
	ID() string
	Title() string
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Size() (int, int) // Logical playfield size
}

// Options configures a Model.
type Options struct {
	Config             core.RuntimeConfig
	Store              *storage.Store // Nil disables run history
	Player             string         // Name recorded with each run
	Sound              media.Player   // Nil means silent
	Logger             *log.Logger    // Nil discards logs
	HoldTicks          int            // See KeyMapper; 0 uses DefaultHoldTicks
	ScreenshotDir      string         // Empty uses ~/.gravflip/screenshots
	DisableScreenshots bool
	HideHelp           bool
}

// Model is the Bubble Tea model for running the game in a terminal.
type Model struct {
	game       Game
	screen     *core.Screen
	opts       Options
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	recorder   *storage.Recorder
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	if opts.Config.TickRate <= 0 {
		opts.Config.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Sound == nil {
		opts.Sound = media.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		opts:       opts,
		keyMapper:  NewKeyMapper(opts.HoldTicks),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		recorder:   storage.NewRecorder(opts.Store, opts.Player, opts.Logger),
	}
	m.screen = core.NewScreen(m.playfieldSize(opts.Config.ScreenW, opts.Config.ScreenH))
	return m
}

// playfieldSize leaves the last row for the help line.
func (m Model) playfieldSize(w, h int) (int, int) {
	if !m.opts.HideHelp {
		h--
	}
	return max(1, w), max(1, h)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		// Key releases are never reported, so drop holds when focus is lost
		m.keyMapper.Release()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.Press(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if !m.opts.DisableScreenshots && key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		path, err := m.saveScreenshot()
		if err != nil {
			m.opts.Logger.Warn("screenshot failed", "error", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
	}

	return m, nil
}

// handleMouse maps terminal cells back to playfield coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Y >= m.screen.Height() {
		return m, nil
	}

	w, h := m.game.Size()
	vp := core.NewViewport(w, h, m.screen.Width(), m.screen.Height())
	p := vp.ToLogical(msg.X, msg.Y)

	m.inputFrame.PointAt(p.X, p.Y)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.ClickAt(p.X, p.Y)
	}
	return m, nil
}

// handleResize processes window resize events. The playfield is rescaled;
// the round itself is not affected.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Config.ScreenW = msg.Width
	m.opts.Config.ScreenH = msg.Height
	m.screen.Resize(m.playfieldSize(msg.Width, msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.keyMapper.Tick(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	media.Dispatch(m.opts.Sound, result.Events)

	m.recorder.Observe(m.gameState)

	m.inputFrame.Clear()
	return m, tickCmd(m.opts.Config.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".gravflip", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: cannot create directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if !m.opts.HideHelp {
		out += "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
	}
	return out
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without a pressed button
		tea.WithReportFocus(),    // Blur stops held movement
	)

	_, err := p.Run()
	return err
}
