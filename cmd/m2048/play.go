package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/m2048/internal/games/m2048"
	"github.com/vovakirdan/m2048/internal/platform/tui"
	"github.com/vovakirdan/m2048/internal/registry"
)

var flagSize int

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the given board (default 2048).

Controls:
  Arrows/WASD/hjkl  - Slide tiles
  P                 - Pause
  R                 - Restart (the current run is recorded)
  Ctrl+Y            - Copy the board to the clipboard
  Ctrl+S            - Save a text screenshot to ~/.m2048/screenshots
  Q/Esc/Ctrl+C      - Quit (the current run is recorded)

Examples:
  m2048 play
  m2048 play 2048_large
  m2048 play --size 6
  m2048 play --seed 1145141919810
  m2048 play --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Play a custom N×N board instead of a registered one")
}

func runPlay(_ *cobra.Command, args []string) error {
	game, err := selectGame(args)
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	return tui.Run(game, runtimeConfig(), tui.Options{
		Store:     store,
		Logger:    logger,
		Clipboard: tui.SystemClipboard(),
	})
}

// selectGame resolves --size or the board argument.
func selectGame(args []string) (registry.Game, error) {
	if flagSize != 0 {
		if len(args) > 0 {
			return nil, errors.New("--size cannot be combined with a board name")
		}
		game, err := m2048.NewSized(flagSize)
		if err != nil {
			return nil, err
		}
		return game, nil
	}

	gameID := m2048.IDClassic
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return nil, fmt.Errorf("unknown board %q, run 'm2048 list' to see available boards", gameID)
	}
	return registry.Create(gameID)
}
