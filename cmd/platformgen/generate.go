package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/platformgen/internal/platform/tui"
)

var flagVerbose bool

var generateCmd = &cobra.Command{
	Use:   "generate [preset]",
	Short: "Generate a layout and print its summary",
	Long: `Generate one layout and print counts, extents, the goal and the
death boundary. Nothing is placed or stored.

Examples:
  platformgen generate
  platformgen generate gauntlet --seed 42
  platformgen generate --config ./my-level.yaml -v`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "List every platform")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	r, _, err := setup(args)
	if err != nil {
		return err
	}

	seed := resolveSeed()
	res, err := r.Generate(seed)
	if err != nil {
		return fmt.Errorf("seed %d: %w", seed, err)
	}

	fmt.Print(tui.RenderSummary(res, tui.SummaryOptions{
		Title:   r.Level().Title,
		Seed:    seed,
		Styled:  stdoutStyled(),
		Verbose: flagVerbose,
	}))
	return nil
}
