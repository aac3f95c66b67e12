// Package breakout implements a single-screen brick breaker: a fixed brick
// grid, one ball, one paddle, a score and a persisted high score.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Brick is a single brick in the grid. Only Alive ever changes.
type Brick struct {
	Row, Col int
	Rect     core.Rect
	Alive    bool
	Color    core.Color
}

// Layout holds geometry derived once from the configuration.
type Layout struct {
	BoardW, BoardH  float64
	Rows, Cols      int
	BrickW, BrickH  float64
	PadX, PadY      float64
	OffTop, OffLeft float64
	PaddleY         float64
	RowColors       []core.Color
}

// NewLayout validates cfg and derives the board geometry.
func NewLayout(cfg config.BreakoutConfig) (Layout, error) {
	if err := cfg.Validate(); err != nil {
		return Layout{}, err
	}
	colors, err := cfg.BrickColors()
	if err != nil {
		return Layout{}, err
	}

	return Layout{
		BoardW:    cfg.Board.Width,
		BoardH:    cfg.Board.Height,
		Rows:      cfg.Bricks.Rows,
		Cols:      cfg.Bricks.Columns,
		BrickW:    cfg.BrickWidth(),
		BrickH:    cfg.Bricks.Height,
		PadX:      cfg.Bricks.PaddingX,
		PadY:      cfg.Bricks.PaddingY,
		OffTop:    cfg.Bricks.OffsetTop,
		OffLeft:   cfg.Bricks.OffsetLeft,
		PaddleY:   cfg.PaddleY(),
		RowColors: colors,
	}, nil
}

// BrickRect returns the fixed position of the brick at (row, col).
func (l Layout) BrickRect(row, col int) core.Rect {
	x := l.OffLeft + float64(col)*(l.BrickW+l.PadX)
	y := l.OffTop + float64(row)*(l.BrickH+l.PadY)
	return core.NewRect(x, y, l.BrickW, l.BrickH)
}

// NewGrid creates a full grid of alive bricks in row-major order.
func (l Layout) NewGrid() []Brick {
	bricks := make([]Brick, 0, l.Rows*l.Cols)
	for row := range l.Rows {
		for col := range l.Cols {
			bricks = append(bricks, Brick{
				Row:   row,
				Col:   col,
				Rect:  l.BrickRect(row, col),
				Alive: true,
				Color: l.RowColors[row%len(l.RowColors)],
			})
		}
	}
	return bricks
}

// CountAlive returns the number of bricks still standing.
func CountAlive(bricks []Brick) int {
	count := 0
	for _, b := range bricks {
		if b.Alive {
			count++
		}
	}
	return count
}
