package breakout

// State is the game's top-level mode.
type State int

const (
	StateStart    State = iota // Title screen, waiting for the first action
	StatePlaying               // Ball in play
	StateGameOver              // Ball lost, waiting for restart
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}
