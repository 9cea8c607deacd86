package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/platformgen/internal/platform/tui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [preset]",
	Short: "Browse generated layouts interactively",
	Long: `Open a terminal browser over the layout for a seed.

Controls:
  Up/Down    - Move through the chain
  N / n      - Previous / next seed
  P/Space    - Simulate a run (recorded to the run history)
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Examples:
  platformgen inspect
  platformgen inspect gauntlet --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	r, logger, err := setup(args)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return tui.RunInspector(r, store, runtimeConfig(resolveSeed()))
}
