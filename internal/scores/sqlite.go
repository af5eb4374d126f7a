// Package scores persists finished games in a SQLite database.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package scores

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Entry is one recorded run.
type Entry struct {
	ID        int64
	Run       uuid.UUID
	Score     int
	Level     int
	CreatedAt time.Time
}

// NewRun returns a fresh run id.
func NewRun() uuid.UUID {
	return uuid.New()
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("scores: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("scores: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("scores: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("scores: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
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

// SaveScore records the score and level reached by a run. Saving the same
// run again overwrites its previous result.
func (s *Store) SaveScore(run uuid.UUID, score, level int) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, score, level) VALUES (?, ?, ?)
		 ON CONFLICT(run_id) DO UPDATE SET score = excluded.score, level = excluded.level`,
		run.String(), score, level,
	)
	if err != nil {
		return fmt.Errorf("scores: cannot save run %s: %w", run, err)
	}
	return nil
}

// TopScores returns the best runs, highest score first. Ties go to the
// earlier run.
func (s *Store) TopScores(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, score, level, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var run string
		var createdAt any
		if err := rows.Scan(&e.ID, &run, &e.Score, &e.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("scores: cannot scan row: %w", err)
		}
		if e.Run, err = uuid.Parse(run); err != nil {
			return nil, fmt.Errorf("scores: bad run id %q: %w", run, err)
		}

		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse(time.DateTime, v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scores: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the best score ever recorded, or 0 when there is none.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score); err != nil {
		return 0, fmt.Errorf("scores: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}
