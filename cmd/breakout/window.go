//go:build window

package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window drawn in board pixels.

Controls are the same as in the terminal; Esc or Q closes the window.

Examples:
  breakout window
  breakout window --scale 1.5`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the board")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}

	store, keeper := openScores(logger)
	opts := window.Options{
		Game:     gameCfg,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Scale:    flagScale,
		Keeper:   keeper,
		Logger:   logger,
	}
	if store != nil {
		opts.Rounds = store
		defer store.Close()
	}

	return window.Run(opts)
}
