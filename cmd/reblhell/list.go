package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/reblhell/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	modes := registry.List()
	if len(modes) == 0 {
		fmt.Println("No modes registered.")
		return
	}

	idW, titleW := len("MODE"), len("TITLE")
	for _, m := range modes {
		idW = max(idW, len(m.ID))
		titleW = max(titleW, len(m.Title))
	}

	fmt.Printf("%-*s  %-*s  %s\n", idW, "MODE", titleW, "TITLE", "RULES")
	for _, m := range modes {
		fmt.Printf("%-*s  %-*s  %s\n", idW, m.ID, titleW, m.Title, m.Summary)
	}
	fmt.Println()
	fmt.Println("Run 'reblhell play <mode>' to start.")
}
