package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/registry"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

var (
	flagScoresLimit int
	flagMatches     bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent matches",
	Long: `Display the top scores for a mode. Without a mode, show a summary
of every mode that has been played.

Examples:
  snake scores
  snake scores endless
  snake scores hard --matches
  snake scores kids --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of rows to show")
	scoresCmd.Flags().BoolVar(&flagMatches, "matches", false, "Show recent matches instead of top scores")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and matches for the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		if flagClear {
			return fmt.Errorf("--clear needs a mode")
		}
		if flagMatches {
			return printMatches(out, store, "")
		}
		return printSummary(out, store)
	}

	mode := args[0]
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q (run 'snake modes' to list them)", mode)
	}

	switch {
	case flagClear:
		if err := store.ClearScores(mode); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", config.ModeTitle(mode))
		return nil
	case flagMatches:
		return printMatches(out, store, mode)
	}

	scores, err := store.TopScores(mode, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", config.ModeTitle(mode))
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "\nPlay 'snake play %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetModeStats(mode); err == nil && stats.GamesCount > 0 {
		fmt.Fprintf(out, "\nBest: %d  Matches: %d  Wins: %d  Avg: %.1f\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore)
	}
	return nil
}

func printMatches(out io.Writer, store *storage.Store, mode string) error {
	matches, err := store.RecentMatches(mode, flagScoresLimit)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(out, "No matches recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-11s  %-6s  %-5s  %-8s  %s\n", "Date", "Mode", "Score", "Level", "Duration", "Result")
	fmt.Fprintf(out, "  %-16s  %-11s  %-6s  %-5s  %-8s  %s\n", "----", "----", "-----", "-----", "--------", "------")
	for _, m := range matches {
		result := m.Outcome
		if m.Cause != "" {
			result += " (" + m.Cause + ")"
		}
		fmt.Fprintf(out, "  %-16s  %-11s  %-6d  %-5d  %-8s  %s\n",
			m.CreatedAt.Format("2006-01-02 15:04"), m.Mode, m.Score, m.Level,
			fmt.Sprintf("%ds", m.DurationMS/1000), result)
	}
	return nil
}

func printSummary(out io.Writer, store *storage.Store) error {
	all, err := store.GetAllModesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(out, "No matches recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-7s  %-5s  %-6s  %-7s  %s\n", "Mode", "Matches", "Wins", "Best", "Avg", "Last played")
	fmt.Fprintf(out, "  %-16s  %-7s  %-5s  %-6s  %-7s  %s\n", "----", "-------", "----", "----", "---", "-----------")
	for _, mode := range config.ModeNames() {
		st, ok := all[mode]
		if !ok {
			continue
		}
		fmt.Fprintf(out, "  %-16s  %-7d  %-5d  %-6d  %-7.1f  %s\n",
			config.ModeTitle(mode), st.GamesCount, st.Wins, st.HighScore, st.AvgScore,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
