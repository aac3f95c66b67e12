package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Board: BoardConfig{
			Width:  800,
			Height: 600,
		},
		Bricks: BrickConfig{
			Rows:       5,
			Columns:    10,
			PaddingX:   30,
			PaddingY:   15,
			OffsetTop:  80,
			OffsetLeft: 40,
			Height:     20,
			Colors: []string{
				"rgb(153,51,0)",
				"rgb(255,0,0)",
				"rgb(255,153,204)",
				"rgb(0,255,0)",
				"rgb(255,255,153)",
			},
		},
		Ball: BallConfig{
			Size:     10,
			Speed:    4,
			SpawnGap: 2,
		},
		Paddle: PaddleConfig{
			Width:        80,
			Height:       12,
			Speed:        7,
			BottomOffset: 40,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBreakoutYAML
}
