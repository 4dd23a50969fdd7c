// snake is a terminal snake arena with ten levels, four modes and an
// AI rival.
//
// Usage:
//
//	snake play [mode]     - Play a mode directly
//	snake menu            - Pick a mode and level interactively
//	snake sim [mode]      - Run a headless match under the autopilot
//	snake levels          - List the campaign levels
//	snake modes           - List the game modes
//	snake scores [mode]   - Show high scores and recent matches
//	snake config          - Print the effective configuration
//	snake serve           - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Configuration YAML (default: search ~/.snake/configs, ./configs)
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.snake/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake Arena - a snake game for your terminal",
	Long: `Snake Arena is a tick-based snake game played in the terminal.

Ten levels bring walls, portals, moving obstacles, an AI rival snake,
darkness and a boss survival stage. Modes change the pace and the goal.

Examples:
  snake menu
  snake play hard --level 3
  snake sim timeAttack --seed 42
  snake scores endless
  snake serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}
