package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// movePaddle moves the paddle one step. Right wins when both are held.
func (s *GameSession) movePaddle(in core.InputSnapshot) {
	speed := s.cfg.Paddle.Speed
	maxX := s.layout.BoardW - s.paddle.Width

	if in.Right {
		s.paddle.X = core.ClampF(s.paddle.X+speed, 0, maxX)
	} else if in.Left {
		s.paddle.X = core.ClampF(s.paddle.X-speed, 0, maxX)
	}
}

// bounceSideWalls reflects the ball off the left or right wall.
func (s *GameSession) bounceSideWalls() {
	b := &s.ball
	if b.Pos.X <= 0 {
		b.Pos.X = 0
		b.Vel.X = -b.Vel.X
	} else if b.Pos.X+b.Size >= s.layout.BoardW {
		b.Pos.X = s.layout.BoardW - b.Size
		b.Vel.X = -b.Vel.X
	}
}

// bounceTopWall reflects the ball off the ceiling. There is no floor.
func (s *GameSession) bounceTopWall() {
	b := &s.ball
	if b.Pos.Y <= 0 {
		b.Pos.Y = 0
		b.Vel.Y = -b.Vel.Y
	}
}

// bouncePaddle sends the ball back up when its bottom edge is inside the
// paddle's band and the two overlap horizontally (edges inclusive).
// The return angle depends on where the ball hit: the center sends it
// straight up, the edges send it out at the full base speed sideways.
func (s *GameSession) bouncePaddle() {
	b := &s.ball
	p := s.paddle

	bottom := b.Pos.Y + b.Size
	if bottom < p.Y || bottom > p.Y+p.Height {
		return
	}
	if b.Pos.X+b.Size < p.X || b.Pos.X > p.X+p.Width {
		return
	}

	b.Pos.Y = p.Y - b.Size
	b.Vel.Y = -core.AbsF(b.Vel.Y)

	normalized := (b.CenterX() - p.CenterX()) / (p.Width / 2)
	b.Vel.X = normalized * s.cfg.Ball.Speed
}

// hitBrick destroys the first alive brick the ball overlaps, in row-major
// order. At most one brick falls per tick even if the ball touches several.
func (s *GameSession) hitBrick() {
	ballRect := s.ball.Rect()
	for i := range s.bricks {
		brick := &s.bricks[i]
		if !brick.Alive || !ballRect.Intersects(brick.Rect) {
			continue
		}

		brick.Alive = false
		s.addPoint()
		s.ball.Vel.Y = -s.ball.Vel.Y
		return
	}
}
