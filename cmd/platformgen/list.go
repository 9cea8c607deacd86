package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/platformgen/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all level presets",
	Long:  `Shows a list of all level presets registered with platformgen.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	presets := registry.List()

	if len(presets) == 0 {
		fmt.Println("No presets available.")
		return
	}

	fmt.Println("Available presets:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, p := range presets {
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'platformgen generate <id>' to build a layout.")
	fmt.Println("Presets can be overridden in ~/.platformgen/levels/<id>.yaml.")
}
