package breakout

import "math"

// Snapshot is a read-only copy of the session for presentation and tests.
// Mutating it never affects the session.
type Snapshot struct {
	Tick      uint64
	State     State
	BoardW    float64
	BoardH    float64
	Bricks    []Brick
	Ball      Ball
	Paddle    Paddle
	Score     int
	HighScore int
}

// Snapshot returns the current game state as a Snapshot.
func (s *GameSession) Snapshot() Snapshot {
	bricks := make([]Brick, len(s.bricks))
	copy(bricks, s.bricks)

	return Snapshot{
		Tick:      s.tick,
		State:     s.state,
		BoardW:    s.layout.BoardW,
		BoardH:    s.layout.BoardH,
		Bricks:    bricks,
		Ball:      s.ball,
		Paddle:    s.paddle,
		Score:     s.score,
		HighScore: s.highScore,
	}
}

// BricksRemaining returns the number of alive bricks in the snapshot.
func (snap *Snapshot) BricksRemaining() int {
	return CountAlive(snap.Bricks)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Ball.Pos.X)
	h = h*31 + math.Float64bits(snap.Ball.Pos.Y)
	h = h*31 + math.Float64bits(snap.Ball.Vel.X)
	h = h*31 + math.Float64bits(snap.Ball.Vel.Y)
	h = h*31 + math.Float64bits(snap.Paddle.X)

	for _, b := range snap.Bricks {
		if b.Alive {
			h = h*31 + 1
		} else {
			h = h * 31
		}
	}
	return h
}
