package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shmup/internal/platform/tui"
	"github.com/vovakirdan/tui-shmup/internal/registry"
	"github.com/vovakirdan/tui-shmup/internal/storage"
)

var (
	flagBrowse  bool
	flagAll     bool
	flagClear   bool
	flagSummary bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 runs for a mode (default: shmup), with the wave
each run reached. Use --browse for the interactive scoreboard.

Examples:
  shmup scores
  shmup scores shmup_rush --all
  shmup scores --summary
  shmup scores shmup --clear
  shmup scores --browse`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "List every recorded run instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs for the mode")
	scoresCmd.Flags().BoolVar(&flagSummary, "summary", false, "Show totals for every mode that has been played")
	scoresCmd.MarkFlagsMutuallyExclusive("browse", "all", "clear", "summary")
}

func runScores(_ *cobra.Command, args []string) {
	mode := "shmup"
	if len(args) > 0 {
		mode = args[0]
	}

	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'shmup list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagSummary:
		stats, err := store.GetAllGamesStats()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			return
		}
		printSummary(os.Stdout, stats)
		return
	case flagClear:
		if err := store.ClearScores(mode); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared all runs for %s.\n", game.Title())
		return
	case flagBrowse:
		cfg := terminalRuntime()
		if _, err := tui.RunScoreboard(store, mode, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	var scores []storage.ScoreEntry
	if flagAll {
		scores, err = store.AllScores(mode)
	} else {
		scores, err = store.TopScores(mode, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'shmup play %s' to set the first high score!\n", mode)
		return
	}

	printScores(os.Stdout, scores)

	if stats, err := store.GetGameStats(mode); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Best wave: %d  |  Runs: %d\n", stats.HighScore, stats.BestWave, stats.GamesCount)
	}
}

func printScores(w io.Writer, scores []storage.ScoreEntry) {
	fmt.Fprintf(w, "  %-4s  %-10s  %-4s  %s\n", "Rank", "Score", "Wave", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %-4s  %s\n", "----", "-----", "----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-10d  %-4d  %s\n", i+1, entry.Score, entry.Wave, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// printSummary lists per-mode totals ordered by mode ID.
func printSummary(w io.Writer, stats map[string]*storage.GameStats) {
	if len(stats) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fmt.Fprintf(w, "  %-12s  %-5s  %-10s  %-4s  %-8s  %s\n", "Mode", "Runs", "Best", "Wave", "Average", "Last played")
	for _, id := range ids {
		st := stats[id]
		last := "-"
		if !st.LastPlayed.IsZero() {
			last = st.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "  %-12s  %-5d  %-10d  %-4d  %-8.1f  %s\n", id, st.GamesCount, st.HighScore, st.BestWave, st.AvgScore, last)
	}
}
