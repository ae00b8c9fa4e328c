package colorshift

import (
	"github.com/vovakirdan/colorshift/internal/games/colorshift/core"
)

// StateType represents the current play state.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StatePaused      StateType = "paused"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Board     string // Color letters, one line per row
	Selection []core.Coord
	Cursor    core.Coord
	Status    string
	Touches   int
	Moves     int
	State     StateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:      g.tick,
		Board:     g.board.String(),
		Selection: g.session.Selection(),
		Cursor:    g.cursor,
		Status:    g.board.Status(),
		Touches:   g.touches,
		Moves:     g.moves,
		State:     state,
	}
}
