package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/m2048/internal/games/m2048"
	"github.com/vovakirdan/m2048/internal/registry"
	"github.com/vovakirdan/m2048/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <board>",
	Short: "Show high scores for a board",
	Long: `Display the top scores for the given board with the largest tile and
number of moves of each run.

Examples:
  m2048 scores 2048
  m2048 scores 2048_large --limit 20
  m2048 scores 2048_custom
  m2048 scores 2048 --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the board")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) && gameID != m2048.IDCustom {
		return fmt.Errorf("unknown board %q, run 'm2048 list' to see available boards", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer closeStore(store)

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", gameID)
		return nil
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", registry.Title(gameID))

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'm2048 play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %10s  %8s  %7s  %5s  %s\n", "Rank", "Score", "Tile", "Moves", "Size", "Played")
	fmt.Fprintf(out, "  %-4s  %10s  %8s  %7s  %5s  %s\n", "----", "-----", "----", "-----", "----", "------")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %10s  %8s  %7s  %5s  %s\n",
			i+1,
			humanize.Comma(int64(e.Score)),
			humanize.Comma(int64(e.MaxTile)),
			humanize.Comma(int64(e.Moves)),
			fmt.Sprintf("%d×%d", e.GridSize, e.GridSize),
			humanize.Time(e.CreatedAt),
		)
	}

	stats, err := store.GameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs: %s  Best: %s  Best tile: %s  Average: %s  Total moves: %s\n",
		humanize.Comma(int64(stats.GamesCount)),
		humanize.Comma(int64(stats.HighScore)),
		humanize.Comma(int64(stats.BestTile)),
		humanize.Commaf(stats.AvgScore),
		humanize.Comma(stats.TotalMoves),
	)
	return nil
}
