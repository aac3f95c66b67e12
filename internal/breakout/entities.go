package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Ball is a square ball with its top-left corner at Pos.
type Ball struct {
	Pos  core.Vec // Top-left corner
	Vel  core.Vec // Velocity per tick
	Size float64
}

// Rect returns the ball's bounding box.
func (b Ball) Rect() core.Rect {
	return core.NewRect(b.Pos.X, b.Pos.Y, b.Size, b.Size)
}

// CenterX returns the horizontal center of the ball.
func (b Ball) CenterX() float64 {
	return b.Pos.X + b.Size/2
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Paddle is the player's paddle. Only X changes during play.
type Paddle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Rect returns the paddle's bounding box.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the horizontal center of the paddle.
func (p Paddle) CenterX() float64 {
	return p.X + p.Width/2
}
