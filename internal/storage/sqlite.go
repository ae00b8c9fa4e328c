// Package storage provides the SQLite-backed session journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrSessionNotFound is returned when closing a session that was never opened.
var ErrSessionNotFound = errors.New("storage: session not found")

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the session journal.
type Store struct {
	db *sql.DB
}

// SessionEntry is one journaled play session.
// Board contents are not stored.
type SessionEntry struct {
	ID        string
	GameID    string
	Player    string
	Seed      int64
	Touches   int
	Moves     int
	StartedAt time.Time
	EndedAt   time.Time // Zero while the session is open
}

// Open reports whether the session has not been closed yet.
func (e SessionEntry) Open() bool {
	return e.EndedAt.IsZero()
}

// Duration returns how long a closed session lasted.
func (e SessionEntry) Duration() time.Duration {
	if e.Open() {
		return 0
	}
	return e.EndedAt.Sub(e.StartedAt)
}

// Totals aggregates all journaled sessions of a game.
type Totals struct {
	Sessions int
	Touches  int
	Moves    int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL,
			touches INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			started_at TEXT NOT NULL,
			ended_at TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_game_id ON sessions(game_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// OpenSession journals the start of a session.
func (s *Store) OpenSession(id, gameID, player string, seed int64) error {
	_, err := s.db.Exec(
		"INSERT INTO sessions (id, game_id, player, seed, started_at) VALUES (?, ?, ?, ?, ?)",
		id, gameID, player, seed, time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot open session %s: %w", id, err)
	}
	return nil
}

// CloseSession records the end of a session and its final counters.
// Returns ErrSessionNotFound if the session was never opened.
func (s *Store) CloseSession(id string, touches, moves int) error {
	result, err := s.db.Exec(
		"UPDATE sessions SET touches = ?, moves = ?, ended_at = ? WHERE id = ?",
		touches, moves, time.Now().UTC().Format(timeLayout), id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot close session %s: %w", id, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return nil
}

// SessionByID retrieves a single session.
// Returns nil, nil if not found.
func (s *Store) SessionByID(id string) (*SessionEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, game_id, player, seed, touches, moves, started_at, ended_at
		 FROM sessions
		 WHERE id = ?`,
		id,
	)

	e, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get session: %w", err)
	}
	return &e, nil
}

// RecentSessions retrieves the most recently started sessions.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, seed, touches, moves, started_at, ended_at
		 FROM sessions
		 ORDER BY started_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		e, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Totals sums the counters of every session of the given game.
func (s *Store) Totals(gameID string) (Totals, error) {
	var t Totals
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(touches), 0), COALESCE(SUM(moves), 0)
		 FROM sessions
		 WHERE game_id = ?`,
		gameID,
	).Scan(&t.Sessions, &t.Touches, &t.Moves)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot get totals: %w", err)
	}
	return t, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(sc scanner) (SessionEntry, error) {
	var e SessionEntry
	var startedAt, endedAt any
	if err := sc.Scan(&e.ID, &e.GameID, &e.Player, &e.Seed, &e.Touches, &e.Moves, &startedAt, &endedAt); err != nil {
		return SessionEntry{}, err
	}
	e.StartedAt = parseTime(startedAt)
	e.EndedAt = parseTime(endedAt)
	return e, nil
}

// parseTime handles both time.Time and string column values.
// NULL and unparsable values yield the zero time.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	case []byte:
		if parsed, err := time.Parse(timeLayout, string(v)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
