package tui

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/colorshift/internal/registry"
	"github.com/vovakirdan/colorshift/internal/storage"
)

// Journal records one play session in the store.
// A nil store turns every call into a no-op, so play never depends on it.
type Journal struct {
	mu     sync.Mutex
	store  *storage.Store
	logger *log.Logger
	id     string
	game   registry.Game
	open   bool
}

// NewJournal creates a journal writing to store. Both arguments may be nil.
func NewJournal(store *storage.Store, logger *log.Logger) *Journal {
	if logger == nil {
		logger = log.Default()
	}
	return &Journal{
		store:  store,
		logger: logger,
	}
}

// Start opens a session entry for game. Calling it again while a session
// is open does nothing.
func (j *Journal) Start(game registry.Game, player string, seed int64) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.open {
		return
	}
	j.id = uuid.NewString()
	j.game = game
	if j.store == nil {
		return
	}

	if err := j.store.OpenSession(j.id, game.ID(), player, seed); err != nil {
		j.logger.Warn("could not journal session", "session", j.id, "error", err)
		return
	}
	j.open = true
	j.logger.Debug("session opened", "session", j.id, "player", player, "seed", seed)
}

// Finish closes the session entry with the game's counters.
// Only the first call after Start writes anything.
func (j *Journal) Finish() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.open {
		return
	}
	j.open = false

	var touches, moves int
	if sr, ok := j.game.(registry.StatsReporter); ok {
		touches, moves = sr.Stats()
	}

	if err := j.store.CloseSession(j.id, touches, moves); err != nil {
		j.logger.Warn("could not close session", "session", j.id, "error", err)
		return
	}
	j.logger.Debug("session closed", "session", j.id, "touches", touches, "moves", moves)
}

// ID returns the identifier of the current session, empty before Start.
func (j *Journal) ID() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.id
}
