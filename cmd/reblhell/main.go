// reblhell is a top-down action game played in the terminal.
//
// Usage:
//
//	reblhell                  - Pick a mode and play
//	reblhell list             - List available modes
//	reblhell play [mode]      - Play a mode (default: reblhell)
//	reblhell sim              - Run a headless simulation and print a summary
//	reblhell config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log destination while playing (default: ~/.reblhell/reblhell.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/reblhell/internal/games/reblhell"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reblhell",
	Short: "Reblhell - survive the ring in your terminal",
	Long: `Reblhell is a top-down action game. Enemies spawn in a ring around you
and close in; your Close Shot fires at the nearest one on a timer.

Available commands:
  list     - Show all modes
  play     - Play a mode directly
  sim      - Run the simulation without a terminal UI
  config   - Print the effective configuration

Examples:
  reblhell
  reblhell play
  reblhell play reblhell_hardcore --difficulty hard
  reblhell sim --frames 1200 --seed 7 --strafe
  reblhell config --config ./my-reblhell.yaml`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = time-based when playing)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default info)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.reblhell/reblhell.log", "Log file used while the terminal UI runs")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
