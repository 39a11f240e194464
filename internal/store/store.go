// Package store handles SQLite persistence for completed games and
// their guess history.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps SQLite access for game records.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database at path, applies
// recommended pragmas, and runs migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY,
			player TEXT NOT NULL,
			word TEXT NOT NULL,
			word_length INTEGER NOT NULL,
			attempts INTEGER NOT NULL,
			success INTEGER NOT NULL,
			time_taken REAL NOT NULL,
			difficulty TEXT NOT NULL,
			hints_used INTEGER NOT NULL,
			played_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS guesses (
			game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
			attempt INTEGER NOT NULL,
			guess TEXT NOT NULL,
			feedback TEXT NOT NULL,
			PRIMARY KEY (game_id, attempt)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_games_played_at ON games(played_at);`,
		`CREATE INDEX IF NOT EXISTS idx_games_player ON games(player);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
