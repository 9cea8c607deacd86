// platformgen generates procedural 3D platform-chain levels and simulates
// runs through them.
//
// Usage:
//
//	platformgen list               - List level presets
//	platformgen generate [preset]  - Generate a layout and print its summary
//	platformgen inspect [preset]   - Browse layouts interactively
//	platformgen play [preset]      - Simulate a run and record it
//	platformgen batch [preset]     - Simulate many seeds concurrently
//	platformgen scores [preset]    - Show run history
//	platformgen serve              - Start SSH server for remote inspection
//
// Global flags:
//
//	--seed <value>        - RNG seed (0 = random based on time)
//	--preset <id>         - Level preset (default: classic)
//	--config <path>       - Custom level YAML, overrides --preset
//	--difficulty <name>   - easy, normal or hard
//	--db <path>           - Run history database (default: ~/.platformgen/runs.db)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import presets to register them
	_ "github.com/vovakirdan/platformgen/internal/presets"
)

var (
	// Global flags
	flagSeed       uint64
	flagPreset     string
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformgen",
	Short: "Procedural platform-chain level generator",
	Long: `platformgen builds 3D platforming levels: a chain of platforms
spaced by random offsets, decorated with hazards and gems, capped by a goal
and underlaid by a death boundary. The same preset and seed always produce
the same level.

Available commands:
  list      - Show all level presets
  generate  - Print a layout summary
  inspect   - Interactive layout browser
  play      - Simulate a run and record it
  batch     - Simulate many seeds concurrently
  scores    - View run history
  serve     - Start SSH server for remote inspection

Examples:
  platformgen list
  platformgen generate --seed 42
  platformgen inspect gauntlet
  platformgen play tutorial --difficulty easy
  platformgen batch --count 200 --workers 8
  platformgen serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "classic", "Level preset id")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom level YAML (overrides --preset)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformgen/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
