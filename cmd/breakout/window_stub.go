//go:build !window

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window (requires a window build)",
	Long: `The desktop window needs cgo and a display, so it is only part of
builds made with the "window" tag:

  go build -tags window ./cmd/breakout`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return errors.New("this binary was built without window support; rebuild with -tags window")
	},
}
