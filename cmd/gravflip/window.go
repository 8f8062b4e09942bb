package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravflip/internal/platform/window"
)

var (
	flagAssetDir   string
	flagWindowMute bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 1000x700 window and play with images and sound.

Assets are read from --assets:
  player.png platform.png obstacle.png goal.png background.png intro.png
  bg.mp3 collision.mp3 win.mp3
Missing files are drawn as flat colors or stay silent.

Controls:
  Left/A, Right/D  - Move
  Space            - Flip gravity
  Enter / click    - Start
  R                - Restart after game over
  N                - Play again after a win
  Esc              - Quit

Examples:
  gravflip window
  gravflip window --assets ./assets
  gravflip window --mute --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssetDir, "assets", "assets", "Directory with images and sounds")
	windowCmd.Flags().BoolVar(&flagWindowMute, "mute", false, "Disable music and sound effects")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger("gravflip", os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	game, err := newGame()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	runErr := window.Run(game, window.Options{
		AssetDir: flagAssetDir,
		Store:    store,
		Player:   playerName(),
		Logger:   logger,
		TickRate: flagFPS,
		Mute:     flagWindowMute,
	})
	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
