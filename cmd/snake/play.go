package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/level"
	"github.com/vovakirdan/snake-arena/internal/platform/tui"
	"github.com/vovakirdan/snake-arena/internal/registry"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode directly",
	Long: `Start a match in the given mode (default: endless).

Controls:
  Arrows/WASD/hjkl  - Steer
  P/Space           - Pause
  R                 - Restart (after game over)
  Esc/B             - Leave (while paused or after game over)
  Ctrl+S            - Save a text screenshot to ~/.snake/screenshots
  Q/Ctrl+C          - Quit

Examples:
  snake play
  snake play kids
  snake play hard --level 8
  snake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, fmt.Sprintf("Starting level (1-%d)", level.Count))
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := config.ModeEndless
	if len(args) == 1 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q (run 'snake modes' to list them)", mode)
	}
	if flagLevel < 1 || flagLevel > level.Count {
		return fmt.Errorf("%w: %d", level.ErrInvalidLevel, flagLevel)
	}

	e, err := setup(true, true)
	if err != nil {
		return err
	}
	defer e.Close()

	session := tui.DefaultLauncher(tui.Selection{Mode: mode, Level: flagLevel})
	return tui.Run(session, runtimeConfig())
}
