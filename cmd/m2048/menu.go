package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/m2048/internal/platform/tui"
	"github.com/vovakirdan/m2048/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a board and Tab for the
scoreboard. Leaving a game returns to the menu.

Examples:
  m2048 menu
  m2048 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()
	opts := tui.Options{
		Store:     store,
		Logger:    logger,
		Clipboard: tui.SystemClipboard(),
	}

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			game, err := registry.Create(result.GameID)
			if err != nil {
				logger.Error("cannot create game", "error", err)
				continue
			}
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			if err := tui.Run(game, cfg, opts); err != nil {
				logger.Error("game exited with error", "error", err)
			}
		}
	}
}
