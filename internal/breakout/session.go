package breakout

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ScoreKeeper persists the high score.
// Load returns 0 when nothing usable is stored; Save never fails loudly.
type ScoreKeeper interface {
	Load() int
	Save(score int)
}

type nopKeeper struct{}

func (nopKeeper) Load() int { return 0 }
func (nopKeeper) Save(int)  {}

// GameSession owns every mutable game quantity and advances it one tick at
// a time. It is not safe for concurrent use; hosts drive it from their frame
// loop.
type GameSession struct {
	cfg    config.BreakoutConfig
	layout Layout
	keeper ScoreKeeper
	rng    *rand.Rand

	state     State
	bricks    []Brick // Row-major
	ball      Ball
	paddle    Paddle
	score     int
	highScore int
	tick      uint64
}

// NewSession builds a session in the Start state with a full grid and the
// high score loaded from keeper. A nil keeper keeps the high score in memory.
func NewSession(cfg config.BreakoutConfig, keeper ScoreKeeper, seed int64) (*GameSession, error) {
	layout, err := NewLayout(cfg)
	if err != nil {
		return nil, err
	}
	if keeper == nil {
		keeper = nopKeeper{}
	}

	s := &GameSession{
		cfg:    cfg,
		layout: layout,
		keeper: keeper,
		rng:    rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15)), //#nosec G115 G404 -- gameplay RNG, sign bits irrelevant
		state:  StateStart,
	}
	s.highScore = keeper.Load()
	s.bricks = layout.NewGrid()
	s.resetObjects()
	return s, nil
}

// resetObjects centers the paddle and places the ball above it, heading
// upward with a random horizontal direction.
func (s *GameSession) resetObjects() {
	p := s.cfg.Paddle
	b := s.cfg.Ball

	s.paddle = Paddle{
		X:      (s.layout.BoardW - p.Width) / 2,
		Y:      s.layout.PaddleY,
		Width:  p.Width,
		Height: p.Height,
	}

	dir := 1.0
	if s.rng.IntN(2) == 0 {
		dir = -1.0
	}
	s.ball = Ball{
		Pos: core.Vec{
			X: s.layout.BoardW/2 - b.Size/2,
			Y: s.layout.PaddleY - b.Size - b.SpawnGap,
		},
		Vel:  core.Vec{X: dir * b.Speed, Y: -b.Speed},
		Size: b.Size,
	}
}

// Action applies the discrete start/restart event.
//
//	Start    -> Playing (nothing is reset)
//	GameOver -> Playing (score, grid, ball and paddle are reset)
//
// It is a no-op while Playing.
func (s *GameSession) Action() {
	switch s.state {
	case StateStart:
		s.state = StatePlaying
	case StateGameOver:
		s.score = 0
		s.bricks = s.layout.NewGrid()
		s.resetObjects()
		s.state = StatePlaying
	}
}

// Step applies one frame of input: the action event first, then Update.
func (s *GameSession) Step(in core.InputSnapshot) {
	if in.Action {
		s.Action()
	}
	s.Update(in)
}

// Update advances the simulation by one tick. It does nothing unless the
// game is Playing.
func (s *GameSession) Update(in core.InputSnapshot) {
	if s.state != StatePlaying {
		return
	}
	s.tick++

	s.movePaddle(in)
	s.ball.Move()
	s.bounceSideWalls()
	s.bounceTopWall()
	s.bouncePaddle()
	s.hitBrick()

	if s.ball.Pos.Y > s.layout.BoardH {
		s.state = StateGameOver
	}
}

// State returns the current game state.
func (s *GameSession) State() State {
	return s.state
}

// Score returns the current round's score.
func (s *GameSession) Score() int {
	return s.score
}

// HighScore returns the best score seen, including the current round.
func (s *GameSession) HighScore() int {
	return s.highScore
}

// Layout returns the board geometry.
func (s *GameSession) Layout() Layout {
	return s.layout
}

// addPoint scores one brick and persists a new high score.
func (s *GameSession) addPoint() {
	s.score++
	if s.score > s.highScore {
		s.highScore = s.score
		s.keeper.Save(s.highScore)
	}
}
