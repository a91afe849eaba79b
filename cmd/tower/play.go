package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lava-tower/internal/config"
	"github.com/vovakirdan/lava-tower/internal/platform/tui"
	"github.com/vovakirdan/lava-tower/internal/registry"
	"github.com/vovakirdan/lava-tower/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: tower).

Controls:
  A/D or Left/Right  - Move
  W/Up/Space         - Jump (also starts from the title screen)
  Enter              - Start
  Mouse click        - Press the on-screen buttons
  P or Esc           - Pause
  R                  - Restart after a win or a loss
  Esc (paused/over)  - Leave the game
  Ctrl+S             - Save a screenshot
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - 5 lives, stronger slow-lava power-up
  normal - Lava starts at 30% heat
  hard   - 2 lives, lava starts at 70% heat
  fixed  - No heat progression

Examples:
  tower play
  tower play tower_plus
  tower play --difficulty hard --seed 42
  tower play --config ./my-tower.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := config.VariantClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'tower list' to see available variants.")
		os.Exit(1)
	}
	exitOnConfigError(gameID)

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "err", err)
		store = nil
	}

	opts := tui.Options{Logger: logger, Debug: flagDebug}
	runErr := tui.Run(game, store, runtimeConfig(), opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
