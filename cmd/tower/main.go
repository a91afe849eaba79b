// tower is Lava Tower, a single-screen platformer for the terminal: climb
// ahead of the rising lava, dodge the rocks, collect every coin, take the
// key and escape through the door.
//
// Usage:
//
//	tower list               - List the game variants
//	tower play [variant]     - Play a variant (default: tower)
//	tower menu               - Pick a variant and difficulty interactively
//	tower serve              - Start SSH server for remote play
//	tower scores <variant>   - Show high scores for a variant
//	tower config <variant>   - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.lava-tower/scores.db)
//	--config <path>      - Load a custom YAML configuration
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>    - Write logs to a file
//	--debug              - Verbose logs and per-tick invariant checks
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lava-tower/internal/config"
	"github.com/vovakirdan/lava-tower/internal/core"
	"github.com/vovakirdan/lava-tower/internal/games/tower"
	"github.com/vovakirdan/lava-tower/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tower",
	Short: "Lava Tower - climb before the lava gets you",
	Long: `Lava Tower is a single-screen platformer for the terminal.

Climb the platforms while the lava rises and rocks fall. Collect every
coin to reveal the key, take it to the door and escape.

Available commands:
  list     - Show the game variants
  play     - Play a variant directly
  menu     - Interactive variant and difficulty picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  tower play
  tower play tower_plus --difficulty hard
  tower menu
  tower serve --ssh :2222
  tower scores tower`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagDifficulty != "" {
			if _, ok := config.ParsePreset(flagDifficulty); !ok {
				return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
			}
		}
		tower.SetConfigPath(flagConfig)
		tower.SetDifficultyPreset(flagDifficulty)
		tower.SetInvariantChecks(flagDebug)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.lava-tower/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game owns the terminal)")
	pf.BoolVar(&flagDebug, "debug", false, "Debug logging and per-tick invariant checks")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the logger for interactive runs. Without --log-file
// everything is discarded because the alternate screen owns the terminal.
func newLogger() (logger *log.Logger, closeLog func() error, err error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tower",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f.Close, nil
}

// checkConfig loads the --config file for each variant and reports the
// first failure. With no variants given it checks every registered one.
func checkConfig(variants ...string) error {
	if flagConfig == "" {
		return nil
	}
	if len(variants) == 0 {
		for _, info := range registry.List() {
			variants = append(variants, info.ID)
		}
	}
	for _, v := range variants {
		if _, err := config.LoadTower(v, flagConfig); err != nil {
			return fmt.Errorf("%s: %w", v, err)
		}
	}
	return nil
}

// exitOnConfigError prints a rejected --config file and exits.
func exitOnConfigError(variants ...string) {
	if err := checkConfig(variants...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
