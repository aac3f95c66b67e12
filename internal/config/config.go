// Package config provides YAML-based game configuration loading for the
// Breakout board geometry and speeds.
package config

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Bricks BrickConfig  `yaml:"bricks"`
	Ball   BallConfig   `yaml:"ball"`
	Paddle PaddleConfig `yaml:"paddle"`
}

// BoardConfig defines the playfield size in board pixels.
type BoardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BrickConfig defines the brick grid layout.
type BrickConfig struct {
	Rows       int      `yaml:"rows"`
	Columns    int      `yaml:"columns"`
	PaddingX   float64  `yaml:"padding_x"`
	PaddingY   float64  `yaml:"padding_y"`
	OffsetTop  float64  `yaml:"offset_top"`
	OffsetLeft float64  `yaml:"offset_left"`
	Height     float64  `yaml:"height"`
	Colors     []string `yaml:"colors"` // One per row, "rgb(r,g,b)" or "#rrggbb"
}

// BallConfig defines ball size and speed.
type BallConfig struct {
	Size     float64 `yaml:"size"`
	Speed    float64 `yaml:"speed"`     // Base speed per tick, also the max |dx| after a paddle hit
	SpawnGap float64 `yaml:"spawn_gap"` // Vertical gap between ball and paddle at spawn
}

// PaddleConfig defines paddle size, speed and position.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from paddle top to board bottom
}

// BrickWidth returns the brick width that fits the columns, paddings and
// side offsets into the board, floored to a whole pixel.
func (c BreakoutConfig) BrickWidth() float64 {
	b := c.Bricks
	if b.Columns <= 0 {
		return 0
	}
	free := c.Board.Width - 2*b.OffsetLeft - float64(b.Columns-1)*b.PaddingX
	return math.Floor(free / float64(b.Columns))
}

// PaddleY returns the fixed y coordinate of the paddle's top edge.
func (c BreakoutConfig) PaddleY() float64 {
	return c.Board.Height - c.Paddle.BottomOffset
}

// BrickColors parses the per-row colors.
func (c BreakoutConfig) BrickColors() ([]core.Color, error) {
	colors := make([]core.Color, 0, len(c.Bricks.Colors))
	for _, s := range c.Bricks.Colors {
		col, err := core.ParseColor(s)
		if err != nil {
			return nil, err
		}
		colors = append(colors, col)
	}
	return colors, nil
}
