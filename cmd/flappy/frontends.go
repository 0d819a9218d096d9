package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List all available frontends",
	Long:  `Shows a list of all frontends that can run the game.`,
	Args:  cobra.NoArgs,
	Run:   runFrontends,
}

func runFrontends(_ *cobra.Command, _ []string) {
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Println("No frontends available.")
		return
	}

	fmt.Println("Available frontends:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "NAME" header
	for _, f := range frontends {
		if len(f.Name) > maxNameLen {
			maxNameLen = len(f.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "NAME", "DESCRIPTION")
	fmt.Printf("  %s  %s\n", strings.Repeat("-", maxNameLen), strings.Repeat("-", 11))

	for _, f := range frontends {
		fmt.Printf("  %-*s  %s\n", maxNameLen, f.Name, f.Description)
	}

	fmt.Println()
	fmt.Println("Use 'flappy play --frontend <name>' to pick one.")
}
