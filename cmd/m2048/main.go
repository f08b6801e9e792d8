// m2048 plays the 2048 tile-merging puzzle in the terminal.
//
// Usage:
//
//	m2048 list                  - List available boards
//	m2048 play [board]          - Play a board (default 2048)
//	m2048 play --size 6         - Play a custom N×N board
//	m2048 menu                  - Pick boards interactively
//	m2048 scores <board>        - Show high scores for a board
//	m2048 serve                 - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set database path (default: ~/.m2048/scores.db)
//	--config <path>      - Use a custom YAML config
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/m2048/internal/config"
	"github.com/vovakirdan/m2048/internal/core"
	"github.com/vovakirdan/m2048/internal/games/m2048"
	"github.com/vovakirdan/m2048/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "m2048"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "m2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `m2048 is the 2048 tile-merging puzzle for the terminal.

Slide all tiles in one direction; equal neighbours merge once per move and a
new tile appears after every move that changes the board. New tiles grow with
the largest tile you have made.

Available commands:
  list     - Show all boards
  play     - Play a board directly
  menu     - Interactive board picker
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  m2048 play
  m2048 play 2048_large
  m2048 play --size 6 --seed 42
  m2048 scores 2048
  m2048 serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.m2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup applies the log level and loads the game config before any command.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	log.SetDefault(logger)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	m2048.Configure(cfg)
	logger.Debug("config loaded", "size", cfg.Grid.Size, "large_size", cfg.Grid.LargeSize)
	return nil
}

// runtimeConfig returns the terminal size and the --seed flag.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Play continues without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "error", err)
	}
}
