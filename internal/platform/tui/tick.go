// Package tui runs the game in a terminal with Bubble Tea, locally or over
// SSH. The playfield is scaled to the terminal; keys and mouse clicks are
// mapped to one core.InputFrame per tick.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravflip/internal/core"
)

// TickMsg is sent once per simulation frame.
type TickMsg time.Time

// tickCmd schedules the next frame at tickRate frames per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
