package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// RoundRecorder stores finished rounds. *storage.Store implements it.
type RoundRecorder interface {
	SaveRound(score int) (int64, error)
}

// Options configures a game model.
type Options struct {
	Game    config.BreakoutConfig
	Runtime core.RuntimeConfig

	// Keeper persists the high score. Nil keeps it in memory.
	Keeper breakout.ScoreKeeper

	// Rounds records finished rounds. Nil disables round history.
	Rounds RoundRecorder

	// HoldWindow is the synthesized key release delay.
	HoldWindow time.Duration

	// ScreenshotDir is where ctrl+s writes frames.
	// Defaults to ~/.breakout/screenshots.
	ScreenshotDir string

	Logger   *log.Logger
	Renderer *lipgloss.Renderer
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one game session.
type Model struct {
	session  *breakout.GameSession
	tracker  *core.InputTracker
	hold     *KeyHold
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	rounds   RoundRecorder
	logger   *log.Logger
	renderer *lipgloss.Renderer
	config   core.RuntimeConfig
	shotDir  string
	status   string
	quitting bool
}

// NewModel creates a new Bubble Tea model with a fresh game session.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	session, err := breakout.NewSession(opts.Game, opts.Keeper, cfg.Seed)
	if err != nil {
		return Model{}, fmt.Errorf("tui: cannot start game: %w", err)
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".breakout", "screenshots")
	}

	tracker := core.NewInputTracker()
	h := help.New()
	h.ShowAll = false

	m := Model{
		session:  session,
		tracker:  tracker,
		hold:     NewKeyHold(tracker, opts.HoldWindow),
		screen:   core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		keys:     DefaultKeyMap(),
		help:     h,
		rounds:   opts.Rounds,
		logger:   logger,
		renderer: opts.Renderer,
		config:   cfg,
		shotDir:  shotDir,
	}
	m.help.Width = cfg.ScreenW

	logger.Debug("session created", "seed", cfg.Seed, "high_score", session.HighScore())
	return m, nil
}

// gameRows is the screen height left for the board below the help line.
func gameRows(screenH int) int {
	return max(screenH-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, at time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
		return m, nil
	}

	m.hold.Press(m.keys.GameKey(msg), at)
	return m, nil
}

// handleResize processes window resize events. The game keeps running;
// only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.hold.Expire(now)

	in := m.tracker.Snapshot()
	if in.Action {
		m.status = ""
	}

	prev := m.session.State()
	m.session.Step(in)
	m.observeRound(prev, m.session.State(), m.session.Score())

	return m, tickCmd(m.config.TickRate)
}

// observeRound records a round once, on the frame it ends.
func (m Model) observeRound(prev, cur breakout.State, score int) {
	if prev != breakout.StatePlaying || cur != breakout.StateGameOver {
		return
	}
	m.logger.Info("round over", "score", score, "high_score", m.session.HighScore())

	if m.rounds == nil || score <= 0 {
		return
	}
	if _, err := m.rounds.SaveRound(score); err != nil {
		m.logger.Warn("could not save round", "score", score, "error", err)
	}
}

// saveScreenshot writes the current frame as plain text and returns a
// status line for the help bar.
func (m Model) saveScreenshot() string {
	breakout.Render(m.session.Snapshot(), m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", m.shotDir, "error", err)
		return "screenshot failed"
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("breakout_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return "screenshot failed"
	}
	m.logger.Debug("screenshot saved", "path", path)
	return "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	breakout.Render(m.session.Snapshot(), m.screen)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status
	}
	return RenderScreen(m.screen, m.renderer) + "\n" + m.helpStyle().Render(footer)
}

func (m Model) helpStyle() lipgloss.Style {
	if m.renderer == nil {
		return helpStyle
	}
	return m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
}

// Snapshot returns the session's current state.
func (m Model) Snapshot() breakout.Snapshot {
	return m.session.Snapshot()
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
