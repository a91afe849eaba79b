package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lava-tower/internal/config"
	"github.com/vovakirdan/lava-tower/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game variants",
	Long:  `Shows every registered variant with its playfield size and features.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-12s  %-9s  %s\n", maxIDLen, "ID", "Title", "Field", "Extras")
	fmt.Printf("  %-*s  %-12s  %-9s  %s\n", maxIDLen, "--", "-----", "-----", "------")

	for _, g := range games {
		field, extras := "", ""
		if cfg, ok := config.DefaultFor(g.ID); ok {
			field = fmt.Sprintf("%.0fx%.0f", cfg.Playfield.Width, cfg.Playfield.Height)
			switch {
			case cfg.Controls.Menu && cfg.Controls.PauseButton:
				extras = "title screen, pause button"
			case cfg.Controls.Menu:
				extras = "title screen"
			}
		}
		fmt.Printf("  %-*s  %-12s  %-9s  %s\n", maxIDLen, g.ID, g.Title, field, extras)
	}

	fmt.Println()
	fmt.Println("Run 'tower play <id>' to play a variant.")
}
