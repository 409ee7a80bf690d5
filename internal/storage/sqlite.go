// Package storage provides a SQLite-backed journal of finished maze runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The journal is history only: the in-game best time is kept by the
// session and is never loaded from here.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Run is one solved maze.
type Run struct {
	ID         string
	Difficulty string
	Size       int
	Algorithm  string
	Seed       int64
	Moves      int
	Seconds    int
	Player     string
	CreatedAt  time.Time
}

// Stats aggregates the runs of one difficulty, or of all runs.
type Stats struct {
	Difficulty string // Empty for all difficulties
	Runs       int
	Fastest    int // Seconds; 0 when Runs is 0
	AvgSeconds float64
	AvgMoves   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
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
			difficulty TEXT NOT NULL,
			size INTEGER NOT NULL,
			algorithm TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL,
			seconds INTEGER NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_fastest ON runs(difficulty, seconds, moves);
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

// SaveRun records a finished run. An empty ID gets a new UUID and a zero
// CreatedAt is set to now. Returns the ID of the stored run.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	if r.Difficulty == "" || r.Size <= 0 || r.Moves < 0 || r.Seconds < 0 {
		return "", fmt.Errorf("storage: invalid run %+v", r)
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, difficulty, size, algorithm, seed, moves, seconds, player, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Difficulty, r.Size, r.Algorithm, r.Seed, r.Moves, r.Seconds, r.Player,
		r.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

const runColumns = `id, difficulty, size, algorithm, seed, moves, seconds, player, created_at`

// RecentRuns returns the latest runs across all difficulties, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
}

// FastestRuns returns the quickest runs for a difficulty. Ties on time
// are broken by fewer moves, then by the earlier run.
func (s *Store) FastestRuns(difficulty string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs
		 WHERE difficulty = ?
		 ORDER BY seconds ASC, moves ASC, created_at ASC, rowid ASC
		 LIMIT ?`,
		difficulty, limit,
	)
}

// RunByID returns a single run, or nil when it does not exist.
func (s *Store) RunByID(id string) (*Run, error) {
	runs, err := s.queryRuns(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Difficulty, &r.Size, &r.Algorithm, &r.Seed,
			&r.Moves, &r.Seconds, &r.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Stats aggregates runs for a difficulty; an empty difficulty covers all runs.
func (s *Store) Stats(difficulty string) (*Stats, error) {
	st := &Stats{Difficulty: difficulty}

	where, args := "", []any{}
	if difficulty != "" {
		where, args = "WHERE difficulty = ?", append(args, difficulty)
	}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(seconds), 0), COALESCE(AVG(seconds), 0),
		        COALESCE(AVG(moves), 0), MAX(created_at)
		 FROM runs `+where,
		args...,
	).Scan(&st.Runs, &st.Fastest, &st.AvgSeconds, &st.AvgMoves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)
	return st, nil
}

// ClearRuns deletes the runs of a difficulty, or every run when difficulty
// is empty. Returns the number of deleted runs.
func (s *Store) ClearRuns(difficulty string) (int64, error) {
	var res sql.Result
	var err error
	if difficulty == "" {
		res, err = s.db.Exec("DELETE FROM runs")
	} else {
		res, err = s.db.Exec("DELETE FROM runs WHERE difficulty = ?", difficulty)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted runs: %w", err)
	}
	return n, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed.UTC()
		}
	case []byte:
		return parseTime(string(t))
	}
	return time.Time{}
}

