package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/level"
	"github.com/vovakirdan/snake-arena/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign levels",
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the game modes",
	Args:  cobra.NoArgs,
	RunE:  runModes,
}

func runLevels(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-3s  %-14s  %-5s  %-24s  %s\n", "#", "Name", "Speed", "Features", "Description")
	fmt.Fprintf(out, "  %-3s  %-14s  %-5s  %-24s  %s\n", "--", "----", "-----", "--------", "-----------")

	for _, info := range level.Catalog() {
		fmt.Fprintf(out, "  %-3d  %-14s  %-5s  %-24s  %s\n",
			info.Number, info.Name, fmt.Sprintf("x%.1f", info.SpeedMultiplier), features(info), info.Description)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'snake play --level <n>' to start on a level.")
}

func features(info level.Info) string {
	var f []string
	if info.HasAI {
		f = append(f, "rival")
	}
	if info.Portals {
		f = append(f, "portals")
	}
	if info.MovingObstacles {
		f = append(f, "moving")
	}
	if info.DarkMode {
		f = append(f, "dark")
	}
	if info.IsBossLevel {
		f = append(f, "boss")
	}
	if len(f) == 0 {
		return "-"
	}
	return strings.Join(f, ",")
}

func runModes(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-11s  %-16s  %-6s  %-6s  %s\n", "ID", "Title", "Speed", "Ramp", "Goal")
	fmt.Fprintf(out, "  %-11s  %-16s  %-6s  %-6s  %s\n", "--", "-----", "-----", "----", "----")
	for _, info := range registry.List() {
		mode := info.ID
		m, err := cfg.ModeSettings(mode)
		if err != nil {
			return err
		}
		ramp := "no"
		if m.SpeedIncrease {
			ramp = "yes"
		}
		goal := "survive"
		if mode == config.ModeTimeAttack {
			goal = fmt.Sprintf("%d food in %ds", cfg.TimeAttack.FoodTarget, cfg.TimeAttack.DurationSeconds)
		}
		fmt.Fprintf(out, "  %-11s  %-16s  %-6s  %-6s  %s\n",
			mode, info.Title, fmt.Sprintf("x%.1f", m.SpeedMultiplier), ramp, goal)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'snake play <id>' to play a mode.")
	return nil
}
