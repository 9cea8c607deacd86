package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/platformgen/internal/platform/tui"
	"github.com/vovakirdan/platformgen/internal/registry"
	"github.com/vovakirdan/platformgen/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagLimit       int
	flagAll         bool
	flagRunID       int64
)

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show run history for a preset",
	Long: `Display the best recorded runs for the specified preset.

Examples:
  platformgen scores
  platformgen scores gauntlet --limit 20
  platformgen scores -i
  platformgen scores tutorial --clear
  platformgen scores classic --all
  platformgen scores --run 12`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse all presets in a TUI")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the preset's run history")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "List every run in the order it was recorded")
	scoresCmd.Flags().Int64Var(&flagRunID, "run", 0, "Show a single run by ID")
}

func runScores(cmd *cobra.Command, args []string) error {
	if flagRunID > 0 {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("opening run database: %w", err)
		}
		defer store.Close()
		return showRun(os.Stdout, store, flagRunID)
	}

	preset := presetArg(args)
	if !registry.Exists(preset) {
		return fmt.Errorf("unknown preset %q (run 'platformgen list' to see presets)", preset)
	}
	p, err := registry.Create(preset)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(preset); err != nil {
			return err
		}
		fmt.Printf("Cleared run history for %s.\n", p.Title())
		return nil
	}

	if flagInteractive {
		cfg := runtimeConfig(0)
		return tui.RunScoreboard(store, preset, cfg.ScreenW, cfg.ScreenH)
	}

	var runs []storage.RunRecord
	if flagAll {
		runs, err = store.AllRuns(preset)
	} else {
		runs, err = store.TopRuns(preset, flagLimit)
	}
	if err != nil {
		return err
	}

	printHistory(os.Stdout, p.Title(), preset, runs, flagAll)
	if stats, err := store.Stats(preset); err == nil && len(runs) > 0 {
		fmt.Printf("Runs: %d  Wins: %d  Best: %d\n", stats.Runs, stats.Wins, stats.BestScore)
	}
	return nil
}

// printHistory writes a run table. Chronological tables label rows by run ID.
func printHistory(w io.Writer, title, preset string, runs []storage.RunRecord, chronological bool) {
	fmt.Fprintf(w, "Run History - %s\n", title)
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Run 'platformgen play %s' to record the first one!\n", preset)
		return
	}

	label := "Rank"
	if chronological {
		label = "ID"
	}
	fmt.Fprintf(w, "  %-4s  %-8s  %-20s  %-10s  %s\n", label, "Score", "Seed", "Result", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-20s  %-10s  %s\n", "----", "-----", "----", "------", "----")

	for i, r := range runs {
		row := int64(i + 1)
		if chronological {
			row = r.ID
		}
		fmt.Fprintf(w, "  %-4d  %-8d  %-20d  %-10s  %s\n",
			row, r.Score, r.Seed, runResult(r), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(w)
}

// showRun prints one stored run with the command that replays it.
func showRun(w io.Writer, store *storage.Store, id int64) error {
	r, err := store.Run(id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no run with ID %d", id)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Run %d - %s\n\n", r.ID, r.Preset)
	fmt.Fprintf(w, "  seed        %d\n", r.Seed)
	fmt.Fprintf(w, "  result      %s\n", runResult(*r))
	fmt.Fprintf(w, "  score       %d\n", r.Score)
	fmt.Fprintf(w, "  platforms   %d\n", r.Platforms)
	fmt.Fprintf(w, "  hazards     %d\n", r.Hazards)
	fmt.Fprintf(w, "  gems        %d/%d\n", r.GemsCollected, r.Gems)
	fmt.Fprintf(w, "  attempts    %d\n", r.Attempts)
	fmt.Fprintf(w, "  recorded    %s\n\n", r.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Replay with: platformgen play %s --seed %d\n", r.Preset, r.Seed)
	return nil
}

func runResult(r storage.RunRecord) string {
	if r.Won {
		return "won"
	}
	return r.Cause
}
