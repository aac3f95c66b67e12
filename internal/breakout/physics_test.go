package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestPaddleMovement(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		in    core.InputSnapshot
		want  float64
	}{
		{"right", 100, core.InputSnapshot{Right: true}, 107},
		{"left", 100, core.InputSnapshot{Left: true}, 93},
		{"idle", 100, core.InputSnapshot{}, 100},
		{"right wins over left", 100, core.InputSnapshot{Left: true, Right: true}, 107},
		{"clamped at left wall", 3, core.InputSnapshot{Left: true}, 0},
		{"stays at left wall", 0, core.InputSnapshot{Left: true}, 0},
		{"clamped at right wall", 718, core.InputSnapshot{Right: true}, 720},
		{"stays at right wall", 720, core.InputSnapshot{Right: true}, 720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newPlayingSession(t, nil)
			s.paddle.X = tt.start

			s.Update(tt.in)

			assert.Equal(t, tt.want, s.paddle.X)
		})
	}
}

func TestPaddleStaysOnBoard(t *testing.T) {
	s := newPlayingSession(t, nil)

	for range 200 {
		s.movePaddle(core.InputSnapshot{Right: true})
		require.LessOrEqual(t, s.paddle.X+s.paddle.Width, 800.0)
	}
	for range 200 {
		s.movePaddle(core.InputSnapshot{Left: true})
		require.GreaterOrEqual(t, s.paddle.X, 0.0)
	}
}

func TestWallReflections(t *testing.T) {
	tests := []struct {
		name    string
		pos     core.Vec
		vel     core.Vec
		wantPos core.Vec
		wantVel core.Vec
	}{
		{
			name:    "left wall",
			pos:     core.Vec{X: 2, Y: 300},
			vel:     core.Vec{X: -4, Y: -4},
			wantPos: core.Vec{X: 0, Y: 296},
			wantVel: core.Vec{X: 4, Y: -4},
		},
		{
			name:    "right wall",
			pos:     core.Vec{X: 788, Y: 300},
			vel:     core.Vec{X: 4, Y: -4},
			wantPos: core.Vec{X: 790, Y: 296},
			wantVel: core.Vec{X: -4, Y: -4},
		},
		{
			name:    "top wall",
			pos:     core.Vec{X: 400, Y: 2},
			vel:     core.Vec{X: 1, Y: -4},
			wantPos: core.Vec{X: 401, Y: 0},
			wantVel: core.Vec{X: 1, Y: 4},
		},
		{
			name:    "top left corner",
			pos:     core.Vec{X: 1, Y: 1},
			vel:     core.Vec{X: -4, Y: -4},
			wantPos: core.Vec{X: 0, Y: 0},
			wantVel: core.Vec{X: 4, Y: 4},
		},
		{
			name:    "open space",
			pos:     core.Vec{X: 400, Y: 300},
			vel:     core.Vec{X: 3, Y: 4},
			wantPos: core.Vec{X: 403, Y: 304},
			wantVel: core.Vec{X: 3, Y: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newPlayingSession(t, nil)
			s.ball.Pos = tt.pos
			s.ball.Vel = tt.vel

			s.Update(core.InputSnapshot{})

			assert.Equal(t, tt.wantPos, s.ball.Pos)
			assert.Equal(t, tt.wantVel, s.ball.Vel)
			assert.Equal(t, StatePlaying, s.State())
		})
	}
}

func TestPaddleBounceAngle(t *testing.T) {
	// Paddle spans [360, 440] with its center at 400.
	tests := []struct {
		name    string
		ballX   float64
		wantVel float64
	}{
		{"center goes straight up", 395, 0},
		{"left edge", 355, -4},
		{"right edge", 435, 4},
		{"halfway right", 415, 2},
		{"halfway left", 375, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newPlayingSession(t, nil)
			require.Equal(t, 360.0, s.paddle.X)
			s.ball.Pos = core.Vec{X: tt.ballX, Y: 548}
			s.ball.Vel = core.Vec{X: 0, Y: 4}

			s.Update(core.InputSnapshot{})

			assert.InDelta(t, tt.wantVel, s.ball.Vel.X, 1e-9)
			assert.Equal(t, -4.0, s.ball.Vel.Y)
			assert.Equal(t, 550.0, s.ball.Pos.Y, "ball rests on top of the paddle")
		})
	}
}

func TestPaddleBounceKeepsUpwardBall(t *testing.T) {
	s := newPlayingSession(t, nil)
	s.ball.Pos = core.Vec{X: 395, Y: 556}
	s.ball.Vel = core.Vec{X: 0, Y: -4}

	s.Update(core.InputSnapshot{})

	assert.Equal(t, -4.0, s.ball.Vel.Y, "dy is forced upward, not negated")
	assert.Equal(t, 550.0, s.ball.Pos.Y)
}

func TestPaddleMissedBall(t *testing.T) {
	tests := []struct {
		name string
		pos  core.Vec
	}{
		{"left of paddle", core.Vec{X: 340, Y: 548}},
		{"right of paddle", core.Vec{X: 445, Y: 548}},
		{"below paddle band", core.Vec{X: 395, Y: 560}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newPlayingSession(t, nil)
			s.ball.Pos = tt.pos
			s.ball.Vel = core.Vec{X: 0, Y: 4}

			s.Update(core.InputSnapshot{})

			assert.Equal(t, 4.0, s.ball.Vel.Y)
		})
	}
}

func TestBrickHit(t *testing.T) {
	s := newPlayingSession(t, nil)
	// Brick (0,0) spans x [40,85], y [80,100]
	s.ball.Pos = core.Vec{X: 50, Y: 104}
	s.ball.Vel = core.Vec{X: 3, Y: -5}

	s.Update(core.InputSnapshot{})

	assert.False(t, s.bricks[0].Alive)
	assert.Equal(t, 49, CountAlive(s.bricks))
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 5.0, s.ball.Vel.Y)
	assert.Equal(t, 3.0, s.ball.Vel.X, "brick hits never change dx")
}

func TestBrickTouchingEdgeIsNotAHit(t *testing.T) {
	s := newPlayingSession(t, nil)
	// Ball top lands exactly on the brick's bottom edge
	s.ball.Pos = core.Vec{X: 50, Y: 104}
	s.ball.Vel = core.Vec{X: 0, Y: -4}

	s.Update(core.InputSnapshot{})

	assert.True(t, s.bricks[0].Alive)
	assert.Equal(t, 0, s.Score())
}

func TestOneBrickPerFrame(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.PaddingX = 0
	cfg.Bricks.PaddingY = 0

	s, err := NewSession(cfg, nil, 1)
	require.NoError(t, err)
	s.Action()

	// With no padding, bricks are 72 wide; (0,0)/(0,1) meet at x=112 and
	// rows 0/1 meet at y=100. The ball covers all four corners.
	s.ball.Pos = core.Vec{X: 107, Y: 96}
	s.ball.Vel = core.Vec{X: 0, Y: -1}

	s.Update(core.InputSnapshot{})

	assert.Equal(t, 1, s.Score())
	assert.False(t, s.bricks[0].Alive, "first brick in row-major order falls")
	assert.True(t, s.bricks[1].Alive)
	assert.True(t, s.bricks[10].Alive)
	assert.True(t, s.bricks[11].Alive)
	assert.Equal(t, 1.0, s.ball.Vel.Y)
}

func TestDeadBricksAreIgnored(t *testing.T) {
	s := newPlayingSession(t, nil)
	s.bricks[0].Alive = false
	s.ball.Pos = core.Vec{X: 50, Y: 94}
	s.ball.Vel = core.Vec{X: 0, Y: -4}

	s.Update(core.InputSnapshot{})

	assert.Equal(t, 0, s.Score())
	assert.Equal(t, -4.0, s.ball.Vel.Y)
}

func TestWallAndBrickBounceInSameFrame(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.OffsetLeft = 0
	cfg.Bricks.OffsetTop = 0

	s, err := NewSession(cfg, nil, 1)
	require.NoError(t, err)
	s.Action()

	// Brick (0,0) now sits in the top-left corner
	s.ball.Pos = core.Vec{X: 2, Y: 2}
	s.ball.Vel = core.Vec{X: -4, Y: -4}

	s.Update(core.InputSnapshot{})

	assert.False(t, s.bricks[0].Alive)
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 4.0, s.ball.Vel.X, "side wall reflected dx")
	assert.Equal(t, -4.0, s.ball.Vel.Y, "top wall then brick reflected dy twice")
}

func TestHighScorePersistsOnlyWhenExceeded(t *testing.T) {
	keeper := &memKeeper{value: 1}
	s := newPlayingSession(t, keeper)

	hit := func(i int) {
		r := s.bricks[i].Rect
		s.ball.Pos = core.Vec{X: r.X + 5, Y: r.Bottom() - 2}
		s.ball.Vel = core.Vec{X: 0, Y: 1}
		s.Update(core.InputSnapshot{})
	}

	hit(0)
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 1, s.HighScore())
	assert.Empty(t, keeper.saves, "tying the record does not save")

	hit(1)
	assert.Equal(t, 2, s.HighScore())
	assert.Equal(t, []int{2}, keeper.saves)

	hit(2)
	assert.Equal(t, []int{2, 3}, keeper.saves)
	assert.Equal(t, 3, keeper.Load())
}
