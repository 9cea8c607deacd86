package main

import (
	"context"
	"fmt"
	"maps"
	"os"
	"os/signal"
	"runtime"
	"slices"

	"github.com/spf13/cobra"
)

var (
	flagCount   int
	flagWorkers int
	flagSave    bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [preset]",
	Short: "Simulate many consecutive seeds concurrently",
	Long: `Play --count seeds starting at --seed on a worker pool and print
aggregate results. Each seed owns its RNG, so the results equal those of
running 'play' once per seed.

Examples:
  platformgen batch --count 500
  platformgen batch gauntlet --seed 1000 --count 100 --workers 4 --save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVar(&flagCount, "count", 100, "Number of seeds to simulate")
	batchCmd.Flags().IntVar(&flagWorkers, "workers", runtime.NumCPU(), "Concurrent workers")
	batchCmd.Flags().BoolVar(&flagSave, "save", false, "Record every run in the run history")
}

func runBatch(cmd *cobra.Command, args []string) error {
	r, logger, err := setup(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	seed := resolveSeed()
	reports, err := r.Batch(ctx, seed, flagCount, flagWorkers)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Println("Nothing to simulate.")
		return nil
	}

	var wins, totalScore, totalPlatforms, retried int
	best := reports[0]
	causes := make(map[string]int)
	for _, rep := range reports {
		if rep.Outcome.Won {
			wins++
		} else {
			causes[rep.Outcome.Cause]++
		}
		if rep.Result.Attempts > 1 {
			retried++
		}
		totalScore += rep.Outcome.Score
		totalPlatforms += len(rep.Result.Platforms)
		if rep.Outcome.Score > best.Outcome.Score {
			best = rep
		}
	}

	n := len(reports)
	fmt.Printf("%s: %d seeds from %d\n", r.Level().Title, n, seed)
	fmt.Println()
	fmt.Printf("  %-14s %d (%.1f%%)\n", "wins", wins, 100*float64(wins)/float64(n))
	for _, cause := range slices.Sorted(maps.Keys(causes)) {
		fmt.Printf("  %-14s %d\n", "died: "+cause, causes[cause])
	}
	fmt.Printf("  %-14s %.1f\n", "avg score", float64(totalScore)/float64(n))
	fmt.Printf("  %-14s %.1f\n", "avg platforms", float64(totalPlatforms)/float64(n))
	fmt.Printf("  %-14s %d\n", "retried", retried)
	fmt.Printf("  %-14s %d (seed %d)\n", "best score", best.Outcome.Score, best.Seed)

	if !flagSave {
		return nil
	}

	store := openStore(logger)
	if store == nil {
		return nil
	}
	defer store.Close()

	for _, rep := range reports {
		if _, err := store.SaveRun(rep.Record()); err != nil {
			return err
		}
	}
	logger.Info("runs recorded", "count", n, "db", flagDBPath)
	return nil
}
