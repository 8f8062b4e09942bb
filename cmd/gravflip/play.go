package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gravflip/internal/core"
	"github.com/vovakirdan/gravflip/internal/media"
	"github.com/vovakirdan/gravflip/internal/platform/tui"
)

var (
	flagMute      bool
	flagNoHelp    bool
	flagHoldTicks int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a round in the terminal. The playfield is scaled to fit.

Controls:
  Left/A, Right/D  - Move
  Space            - Flip gravity (only while standing on a platform)
  Enter / click    - Start
  R                - Restart after game over
  N                - Play again after a win
  Ctrl+S           - Save a text screenshot
  Q/Esc/Ctrl+C     - Quit

Terminals report key presses but not releases, so a movement key keeps
the player moving for --hold-ticks frames after the last repeat.

Examples:
  gravflip play
  gravflip play --mute
  gravflip play --config ./my-level.yaml --log-file gravflip.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Do not ring the terminal bell on collisions and wins")
	playCmd.Flags().BoolVar(&flagNoHelp, "no-help", false, "Hide the key help line")
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Frames a movement key stays held after a press")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Logs would corrupt the alternate screen, so they only go to --log-file
	logger, closer, err := newLogger("gravflip", io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	game, err := newGame()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	var sound media.Player = media.NewBell(os.Stdout)
	if flagMute {
		sound = media.Nop{}
	}

	runErr := tui.Run(game, tui.Options{
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		Store:     store,
		Player:    playerName(),
		Sound:     sound,
		Logger:    logger,
		HoldTicks: flagHoldTicks,
		HideHelp:  flagNoHelp,
	})
	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
