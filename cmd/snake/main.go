// snake is a turn-based terminal snake game.
//
// Usage:
//
//	snake list               - List available variants
//	snake play [variant]     - Play a round (default: plus)
//	snake menu               - Pick variants interactively
//	snake serve              - Start SSH server for remote play
//	snake scores [variant]   - Show high scores for a variant
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible rounds
//	--db <path>         - Set database path (default: ~/.snake/scores.db)
//	--config <path>     - Load a custom snake.yaml
//	--log <path>        - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a turn-based snake game for your terminal",
	Long: `Snake is a turn-based take on the classic: the snake moves one cell
for every direction you enter, eats apples to grow and dies on the walls,
on itself, or on a trap.

Available commands:
  list     - Show all variants
  play     - Play a round
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  snake play
  snake play classic --seed 42
  snake play --plain --screen screen.txt
  snake serve --ssh :2222
  snake scores plus -i`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
