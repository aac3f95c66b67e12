package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score and round history",
	Long: `Display the persisted high score with the best and most recent rounds.

In a terminal this opens an interactive table; press tab to switch
between best and recent rounds. With --plain, or when output is not a
terminal, the best rounds are printed once.

Examples:
  breakout scores
  breakout scores --limit 20
  breakout scores --plain`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print instead of opening the interactive view")
}

func runScores(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening score database: %w", err)
	}
	defer store.Close()

	highScore := storage.NewHighScore(store, logger).Load()

	fd := int(os.Stdout.Fd())
	if !flagScoresPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, highScore, flagScoresLimit, width, height)
	}

	return printScores(store, highScore)
}

func printScores(store *storage.Store, highScore int) error {
	rounds, err := store.TopRounds(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving rounds: %w", err)
	}

	fmt.Printf("Breakout - Best: %d\n\n", highScore)

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breakout play' to set the first high score!")
		return nil
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 18},
		}),
		table.WithRows(tui.RoundRows(rounds)),
		table.WithHeight(len(rounds)+1),
	)
	s := table.DefaultStyles()
	s.Selected = s.Cell
	t.SetStyles(s)
	fmt.Println(t.View())

	if stats, statsErr := store.Stats(); statsErr == nil && stats.Rounds > 0 {
		fmt.Printf("\n%d rounds played, average %.1f\n", stats.Rounds, stats.AvgScore)
	}
	return nil
}
