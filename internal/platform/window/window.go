//go:build window

package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// RoundRecorder stores finished rounds. *storage.Store implements it.
type RoundRecorder interface {
	SaveRound(score int) (int64, error)
}

// Options configures the window host.
type Options struct {
	Game     config.BreakoutConfig
	TickRate int
	Seed     int64
	Scale    float64 // Window size relative to the board
	Keeper   breakout.ScoreKeeper
	Rounds   RoundRecorder
	Logger   *log.Logger
}

var (
	backgroundColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	highlightColor  = color.RGBA{R: 255, G: 255, B: 255, A: 89}
	outlineColor    = color.RGBA{R: 0, G: 0, B: 0, A: 153}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 120}
)

// Game implements ebiten.Game around a GameSession.
type Game struct {
	session *breakout.GameSession
	tracker *core.InputTracker
	rounds  RoundRecorder
	logger  *log.Logger

	pressed  []ebiten.Key
	released []ebiten.Key
}

// NewGame creates a window game with a fresh session.
func NewGame(opts Options) (*Game, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	session, err := breakout.NewSession(opts.Game, opts.Keeper, seed)
	if err != nil {
		return nil, fmt.Errorf("window: cannot start game: %w", err)
	}

	return &Game{
		session: session,
		tracker: core.NewInputTracker(),
		rounds:  opts.Rounds,
		logger:  logger,
	}, nil
}

// Update feeds key events to the tracker and advances one frame.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	for _, k := range g.pressed {
		g.tracker.Press(GameKey(k))
	}
	g.released = inpututil.AppendJustReleasedKeys(g.released[:0])
	for _, k := range g.released {
		g.tracker.Release(GameKey(k))
	}

	prev := g.session.State()
	g.session.Step(g.tracker.Snapshot())

	if prev == breakout.StatePlaying && g.session.State() == breakout.StateGameOver {
		g.recordRound(g.session.Score())
	}
	return nil
}

func (g *Game) recordRound(score int) {
	g.logger.Info("round over", "score", score, "high_score", g.session.HighScore())
	if g.rounds == nil || score <= 0 {
		return
	}
	if _, err := g.rounds.SaveRound(score); err != nil {
		g.logger.Warn("could not save round", "score", score, "error", err)
	}
}

// Draw renders the current snapshot in board pixels.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	screen.Fill(backgroundColor)

	for _, b := range snap.Bricks {
		if b.Alive {
			drawBrick(screen, b)
		}
	}

	p := snap.Paddle
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), color.White, false)

	ball := snap.Ball
	vector.DrawFilledRect(screen, float32(ball.Pos.X), float32(ball.Pos.Y), float32(ball.Size), float32(ball.Size), color.White, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 20, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Best: %d", snap.HighScore), int(snap.BoardW)-100, 8)

	switch snap.State {
	case breakout.StateStart:
		drawOverlay(screen, snap, breakout.TitleText, breakout.StartPrompt)
	case breakout.StateGameOver:
		drawOverlay(screen, snap, breakout.GameOverText, breakout.RestartText)
	}
}

// drawBrick fills a brick with a lighter top half and a dark outline.
func drawBrick(screen *ebiten.Image, b breakout.Brick) {
	r := b.Rect
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)

	vector.DrawFilledRect(screen, x, y, w, h, toRGBA(b.Color), false)
	vector.DrawFilledRect(screen, x+2, y+2, w-4, h/2-2, highlightColor, false)
	vector.StrokeRect(screen, x, y, w, h, 1, outlineColor, false)
}

// drawOverlay dims the board and prints two centered lines.
func drawOverlay(screen *ebiten.Image, snap breakout.Snapshot, title, subtitle string) {
	const charW = 6 // Debug font glyph width

	vector.DrawFilledRect(screen, 0, 0, float32(snap.BoardW), float32(snap.BoardH), overlayColor, false)

	cx, cy := int(snap.BoardW/2), int(snap.BoardH/2)
	ebitenutil.DebugPrintAt(screen, title, cx-len(title)*charW/2, cy-20)
	ebitenutil.DebugPrintAt(screen, subtitle, cx-len(subtitle)*charW/2, cy+10)
}

// Layout returns the board size; Ebiten scales it to the window.
// Implements ebiten.Game interface.
func (g *Game) Layout(_, _ int) (int, int) {
	l := g.session.Layout()
	return int(l.BoardW), int(l.BoardH)
}

// GameKey maps an Ebiten key to a game key.
func GameKey(k ebiten.Key) core.Key {
	switch k {
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return core.KeyLeft
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return core.KeyRight
	case ebiten.KeySpace:
		return core.KeyAction
	}
	return core.KeyNone
}

func toRGBA(c core.Color) color.RGBA {
	if !c.IsSet() {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetWindowTitle("Breakout")
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
