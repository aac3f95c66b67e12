package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

type fakeRounds struct {
	saved []int
	err   error
}

func (f *fakeRounds) SaveRound(score int) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.saved = append(f.saved, score)
	return int64(len(f.saved)), nil
}

func newTestModel(t *testing.T, rounds RoundRecorder) Model {
	t.Helper()
	m, err := NewModel(Options{
		Game: config.DefaultBreakoutConfig(),
		Runtime: core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  25,
			TickRate: 60,
			Seed:     7,
		},
		Rounds:        rounds,
		ScreenshotDir: t.TempDir(),
	})
	require.NoError(t, err)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func TestModelRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Paddle.Width = 0

	_, err := NewModel(Options{Game: cfg, Runtime: core.DefaultConfig()})
	assert.Error(t, err)
}

func TestModelStartsOnSpace(t *testing.T) {
	m := newTestModel(t, nil)
	assert.Equal(t, breakout.StateStart, m.Snapshot().State)
	assert.Contains(t, m.View(), breakout.StartPrompt)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, breakout.StateStart, m.Snapshot().State, "input applies on the next tick")

	m = update(t, m, TickMsg(time.Now()))
	assert.Equal(t, breakout.StatePlaying, m.Snapshot().State)
	assert.Equal(t, uint64(1), m.Snapshot().Tick)
	assert.NotContains(t, m.View(), breakout.StartPrompt)
}

func TestModelMovesPaddle(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg(time.Now()))
	startX := m.Snapshot().Paddle.X

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, TickMsg(time.Now()))

	assert.Equal(t, startX+14, m.Snapshot().Paddle.X)
}

func TestModelReleasesStaleKeys(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg(time.Now()))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg(time.Now()))
	x := m.Snapshot().Paddle.X

	// A tick far in the future expires the hold
	m = update(t, m, TickMsg(time.Now().Add(time.Minute)))
	assert.Equal(t, x, m.Snapshot().Paddle.X)
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	nm := next.(Model)

	assert.True(t, nm.IsQuitting())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, nm.View())
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})

	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 30, m.screen.Height(), "one row is reserved for help")

	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.Contains(t, m.View(), "Window too small")
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.shotDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "breakout_"))

	data, err := os.ReadFile(filepath.Join(m.shotDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), breakout.TitleText)
	assert.Contains(t, m.View(), "saved ")
}

func TestModelObserveRound(t *testing.T) {
	tests := []struct {
		name  string
		prev  breakout.State
		cur   breakout.State
		score int
		want  []int
	}{
		{"round ends with points", breakout.StatePlaying, breakout.StateGameOver, 12, []int{12}},
		{"round ends scoreless", breakout.StatePlaying, breakout.StateGameOver, 0, nil},
		{"still playing", breakout.StatePlaying, breakout.StatePlaying, 5, nil},
		{"already over", breakout.StateGameOver, breakout.StateGameOver, 5, nil},
		{"restart", breakout.StateGameOver, breakout.StatePlaying, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rounds := &fakeRounds{}
			m := newTestModel(t, rounds)

			m.observeRound(tt.prev, tt.cur, tt.score)

			assert.Equal(t, tt.want, rounds.saved)
		})
	}
}

func TestModelObserveRoundSaveError(t *testing.T) {
	rounds := &fakeRounds{err: errors.New("disk full")}
	m := newTestModel(t, rounds)

	assert.NotPanics(t, func() {
		m.observeRound(breakout.StatePlaying, breakout.StateGameOver, 3)
	})
}

func TestModelWithoutRecorder(t *testing.T) {
	m := newTestModel(t, nil)

	assert.NotPanics(t, func() {
		m.observeRound(breakout.StatePlaying, breakout.StateGameOver, 3)
	})
}
