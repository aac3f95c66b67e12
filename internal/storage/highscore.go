package storage

import (
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// HighScoreKey is the fixed key the high score is stored under.
const HighScoreKey = "breakoutHighScore"

// HighScore persists a single high score in the key-value table as a
// base-10 string. Failures are logged and never returned to the game.
// One HighScore may be shared by concurrent sessions. Save never lowers the
// stored value.
type HighScore struct {
	mu     sync.Mutex
	store  *Store
	key    string
	logger *log.Logger
}

// NewHighScore creates a high score keeper backed by store.
// A nil logger discards log output.
func NewHighScore(store *Store, logger *log.Logger) *HighScore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HighScore{store: store, key: HighScoreKey, logger: logger}
}

// Load returns the stored high score. Missing, unreadable or non-numeric
// values load as 0.
func (h *HighScore) Load() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load()
}

func (h *HighScore) load() int {
	raw, ok, err := h.store.Get(h.key)
	if err != nil {
		h.logger.Debug("high score unavailable", "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	return parseScore(raw, h.logger)
}

// Save stores score unless a higher score is already stored.
func (h *HighScore) Save(score int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if current := h.load(); current > score {
		h.logger.Debug("keeping higher stored score", "stored", current, "score", score)
		return
	}
	if err := h.store.Set(h.key, strconv.Itoa(score)); err != nil {
		h.logger.Warn("could not save high score", "score", score, "error", err)
	}
}

// parseScore reads a stored score. Anything that is not a non-negative
// integer counts as 0.
func parseScore(raw string, logger *log.Logger) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		logger.Debug("ignoring malformed high score", "value", raw)
		return 0
	}
	return max(n, 0)
}

// MemoryHighScore keeps the high score in memory. Hosts fall back to it when
// the database cannot be opened.
type MemoryHighScore struct {
	mu    sync.Mutex
	score int
}

// Load returns the in-memory high score.
func (m *MemoryHighScore) Load() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score
}

// Save raises the in-memory high score to score.
func (m *MemoryHighScore) Save(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = max(m.score, score)
}
