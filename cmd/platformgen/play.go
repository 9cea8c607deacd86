package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/platformgen/internal/platform/tui"
)

var flagNoSave bool

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Simulate a run through a generated layout",
	Long: `Generate a layout, place it into an in-memory scene and walk it with
the level's simulated agent. The agent collects gems, may touch hazards and
may miss jumps into the death boundary. The run is recorded in the run
history unless --no-save is set.

Difficulty options:
  easy   - Fewer hazards, more gems, a steadier agent
  normal - The level as configured
  hard   - More hazards and climbs, fewer gems, a clumsier agent

Examples:
  platformgen play
  platformgen play tutorial --seed 7
  platformgen play gauntlet --difficulty hard --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
}

func runPlay(cmd *cobra.Command, args []string) error {
	r, logger, err := setup(args)
	if err != nil {
		return err
	}

	seed := resolveSeed()
	rep, err := r.Play(seed)
	if err != nil {
		return fmt.Errorf("seed %d: %w", seed, err)
	}

	styled := stdoutStyled()
	fmt.Print(tui.RenderSummary(rep.Result, tui.SummaryOptions{
		Title:  r.Level().Title,
		Seed:   seed,
		Styled: styled,
	}))
	fmt.Println()
	fmt.Println(tui.RenderOutcome(rep.Outcome, styled))

	if flagNoSave {
		return nil
	}

	store := openStore(logger)
	if store == nil {
		return nil
	}
	defer store.Close()

	if _, err := store.SaveRun(rep.Record()); err != nil {
		return err
	}
	if best, err := store.BestScore(rep.Preset); err == nil {
		fmt.Printf("Best for %s: %d\n", rep.Preset, best)
	}
	return nil
}
