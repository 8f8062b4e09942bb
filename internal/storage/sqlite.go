// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeWin      Outcome = "win"
	OutcomeGameOver Outcome = "gameover"
)

// Valid reports whether o is a known outcome.
func (o Outcome) Valid() bool {
	return o == OutcomeWin || o == OutcomeGameOver
}

// ErrInvalidOutcome is returned when saving a run with an unknown outcome.
var ErrInvalidOutcome = errors.New("storage: invalid outcome")

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is a single finished round.
type Run struct {
	ID        uuid.UUID
	Outcome   Outcome
	Seconds   int    // Score at the moment the round ended
	Player    string // Local user or SSH username
	CreatedAt time.Time
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	Runs          int
	Wins          int
	GameOvers     int
	BestSeconds   int     // Fastest win, 0 if there are no wins
	AvgWinSeconds float64 // Mean winning time, 0 if there are no wins
	LastPlayed    time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			outcome TEXT NOT NULL,
			seconds INTEGER NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(outcome, seconds);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
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

// SaveRun records a finished run. A zero ID or CreatedAt is filled in.
// Returns the run as stored.
func (s *Store) SaveRun(run Run) (Run, error) {
	if !run.Outcome.Valid() {
		return Run{}, fmt.Errorf("%w: %q", ErrInvalidOutcome, run.Outcome)
	}
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	run.CreatedAt = run.CreatedAt.UTC()

	_, err := s.db.Exec(
		"INSERT INTO runs (id, outcome, seconds, player, created_at) VALUES (?, ?, ?, ?, ?)",
		run.ID.String(), string(run.Outcome), run.Seconds, run.Player, run.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot save run: %w", err)
	}

	return run, nil
}

// BestTimes retrieves the fastest winning runs.
// Results are ordered by seconds ascending, earliest first on ties.
func (s *Store) BestTimes(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryRuns(
		`SELECT id, outcome, seconds, player, created_at
		 FROM runs
		 WHERE outcome = ?
		 ORDER BY seconds ASC, created_at ASC
		 LIMIT ?`,
		string(OutcomeWin), limit,
	)
}

// RecentRuns retrieves the most recent runs of either outcome.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryRuns(
		`SELECT id, outcome, seconds, player, created_at
		 FROM runs
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
}

// PlayerRuns retrieves the most recent runs of a single player.
func (s *Store) PlayerRuns(player string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryRuns(
		`SELECT id, outcome, seconds, player, created_at
		 FROM runs
		 WHERE player = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		player, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			id        string
			outcome   string
			createdAt string
		)
		if err := rows.Scan(&id, &outcome, &r.Seconds, &r.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		r.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("storage: bad run id %q: %w", id, err)
		}
		r.Outcome = Outcome(outcome)
		if parsed, err := time.Parse(timeLayout, createdAt); err == nil {
			r.CreatedAt = parsed
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed sql.NullString
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MIN(CASE WHEN outcome = ? THEN seconds END), 0),
		        COALESCE(AVG(CASE WHEN outcome = ? THEN seconds END), 0),
		        MAX(created_at)
		 FROM runs`,
		string(OutcomeWin), string(OutcomeWin), string(OutcomeWin),
	).Scan(&stats.Runs, &stats.Wins, &stats.BestSeconds, &stats.AvgWinSeconds, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	stats.GameOvers = stats.Runs - stats.Wins
	if lastPlayed.Valid {
		if parsed, err := time.Parse(timeLayout, lastPlayed.String); err == nil {
			stats.LastPlayed = parsed
		}
	}

	return stats, nil
}

// ClearRuns deletes the whole run history.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
