package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var flagHoldMS int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  Space      - Start / play again
  Ctrl+S     - Save a screenshot to ~/.breakout/screenshots
  Q/Ctrl+C   - Quit

Terminals do not report key releases, so a direction key counts as
released once it stops repeating for --hold-ms milliseconds.

Examples:
  breakout play
  breakout play --seed 42
  breakout play --config ./my-board.yaml
  breakout play --log-file /tmp/breakout.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldMS, "hold-ms", int(tui.DefaultHoldWindow/time.Millisecond), "Key hold window in milliseconds")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, keeper := openScores(logger)
	opts := tui.Options{
		Game: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Keeper:     keeper,
		HoldWindow: time.Duration(flagHoldMS) * time.Millisecond,
		Logger:     logger,
	}
	if store != nil {
		opts.Rounds = store
		defer store.Close()
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
