package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/game"
)

var (
	flagSimLevel int
	flagSimLimit time.Duration
	flagSimSave  bool
)

var simCmd = &cobra.Command{
	Use:   "sim [mode]",
	Short: "Run a headless match under the autopilot",
	Long: `Run a match without a terminal UI. The player is steered by the
food-chasing autopilot and the result is printed when the match ends
or the simulated time limit is reached.

The same --seed always produces the same match.

Examples:
  snake sim
  snake sim timeAttack --seed 42
  snake sim hard --level 8 --limit 10m --save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimLevel, "level", 1, "Starting level")
	simCmd.Flags().DurationVar(&flagSimLimit, "limit", 5*time.Minute, "Simulated time limit")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the result in the scores database")
}

func runSim(cmd *cobra.Command, args []string) error {
	mode := config.ModeEndless
	if len(args) == 1 {
		mode = args[0]
	}

	e, err := setup(false, flagSimSave)
	if err != nil {
		return err
	}
	defer e.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := game.Options{
		Mode:       mode,
		StartLevel: flagSimLevel,
		Seed:       seed,
		Logger:     e.logger,
	}
	if e.store != nil {
		opts.Store = e.store.HighScoreStore(e.cfg.Score.HighScoreKey)
	}
	loop, err := game.NewLoop(e.cfg, opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	rate := flagFPS
	if rate <= 0 {
		rate = 60
	}
	start := time.Now()
	res := game.Simulate(ctx, loop, game.NewAutopilot(loop.Grid(), seed), time.Second/time.Duration(rate), flagSimLimit)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Match %s (%s, seed %d)\n", res.MatchID, config.ModeTitle(res.Mode), seed)
	fmt.Fprintf(out, "  Outcome:  %s", res.Outcome)
	if res.Cause != game.CauseNone {
		fmt.Fprintf(out, " (%s)", res.Cause)
	}
	if ctx.Err() != nil {
		fmt.Fprint(out, " [interrupted]")
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Score:    %d\n", res.Score)
	fmt.Fprintf(out, "  Food:     %d\n", res.FoodEaten)
	fmt.Fprintf(out, "  Level:    %d (cleared %d)\n", res.Level, res.Cleared)
	fmt.Fprintf(out, "  Time:     %v simulated, %v wall\n", res.Elapsed.Round(time.Millisecond), time.Since(start).Round(time.Millisecond))

	if res.Outcome != game.OutcomeContinue && e.store != nil {
		if err := e.store.SaveMatchResult(res); err != nil {
			return err
		}
		fmt.Fprintln(out, "  Saved.")
	}
	return nil
}
