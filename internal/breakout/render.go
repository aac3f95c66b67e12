package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	BrickChar  = '█'
	PaddleChar = '▀'
	BallChar   = '●'
)

// Minimum terminal size that keeps the grid legible.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// Overlay text
const (
	TitleText    = "BREAKOUT"
	StartPrompt  = "Press SPACE to begin"
	GameOverText = "GAME OVER"
	RestartText  = "Press SPACE to play again"
)

// Render draws a snapshot into a character screen, scaling board pixels to
// cells. The screen is cleared first.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorDefault)
		return
	}

	v := newViewport(snap, dst)

	for _, b := range snap.Bricks {
		if !b.Alive {
			continue
		}
		x, y, w, h := v.cells(b.Rect)
		dst.FillRect(x, y, w, h, BrickChar, b.Color)
	}

	px, py, pw, _ := v.cells(snap.Paddle.Rect())
	dst.FillRect(px, py, pw, 1, PaddleChar, core.ColorWhite)

	bx, by := v.point(snap.Ball.CenterX(), snap.Ball.Pos.Y+snap.Ball.Size/2)
	dst.SetCell(bx, by, core.Cell{Rune: BallChar, Color: core.ColorWhite})

	renderHUD(snap, dst)
	renderOverlay(snap, dst)
}

// viewport maps board pixels onto screen cells.
type viewport struct {
	sx, sy float64 // Cells per pixel
	w, h   int
}

func newViewport(snap Snapshot, dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / snap.BoardW,
		sy: float64(dst.Height()) / snap.BoardH,
		w:  dst.Width(),
		h:  dst.Height(),
	}
}

// cells converts a board rectangle to a cell rectangle at least one cell in
// each direction.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x = int(math.Round(r.X * v.sx))
	y = int(math.Round(r.Y * v.sy))
	w = max(1, int(math.Round(r.W*v.sx)))
	h = max(1, int(math.Round(r.H*v.sy)))
	return x, y, w, h
}

// point converts a board point to the cell containing it, clamped to the screen.
func (v viewport) point(px, py float64) (x, y int) {
	x = core.Clamp(int(px*v.sx), 0, v.w-1)
	y = int(py * v.sy)
	return x, y
}

// renderHUD draws the score and high score.
func renderHUD(snap Snapshot, dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorDefault)

	best := fmt.Sprintf("Best: %d", snap.HighScore)
	dst.DrawText(dst.Width()-len(best)-1, 0, best, core.ColorDefault)
}

// renderOverlay draws state messages.
func renderOverlay(snap Snapshot, dst *core.Screen) {
	switch snap.State {
	case StateStart:
		drawCenteredBox(dst, TitleText, StartPrompt, core.ColorDefault)
	case StateGameOver:
		drawCenteredBox(dst, GameOverText, RestartText, core.ColorYellow)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, c)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorDefault)
}
