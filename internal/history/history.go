package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded query.
type Entry struct {
	ID        string    `json:"id"`
	Op        string    `json:"op"`
	Input     string    `json:"input"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store is a SQLite-backed query ledger.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if necessary) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS queries (
		id TEXT PRIMARY KEY,
		op TEXT NOT NULL,
		input TEXT NOT NULL,
		result TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating queries table: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_queries_op ON queries(op)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating op index: %w", err)
	}

	// Pragmas for performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA synchronous=NORMAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting synchronous mode: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Record inserts one executed query with its rendered result.
func (s *Store) Record(op, input, result string) error {
	_, err := s.db.Exec(
		"INSERT INTO queries (id, op, input, result, created_at) VALUES (?, ?, ?, ?, ?)",
		uuid.NewString(), op, input, result, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("recording query: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first. A limit of 0 means
// no limit.
func (s *Store) List(limit int) ([]Entry, error) {
	q := "SELECT id, op, input, result, created_at FROM queries ORDER BY created_at DESC, id"
	var args []any
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Op, &e.Input, &e.Result, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading history rows: %w", err)
	}
	return entries, nil
}

// Clear removes all recorded queries.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM queries"); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

// Stats summarizes the ledger.
type Stats struct {
	Path    string         `json:"path"`
	Entries int            `json:"entries"`
	ByOp    map[string]int `json:"byOp"`
}

// GetStats returns counts of recorded queries, total and per operation.
func (s *Store) GetStats() (Stats, error) {
	stats := Stats{Path: s.path, ByOp: make(map[string]int)}

	if err := s.db.QueryRow("SELECT COUNT(*) FROM queries").Scan(&stats.Entries); err != nil {
		return stats, fmt.Errorf("counting history: %w", err)
	}

	rows, err := s.db.Query("SELECT op, COUNT(*) FROM queries GROUP BY op")
	if err != nil {
		return stats, fmt.Errorf("counting history by op: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var op string
		var n int
		if err := rows.Scan(&op, &n); err != nil {
			return stats, fmt.Errorf("scanning history count: %w", err)
		}
		stats.ByOp[op] = n
	}
	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("reading history counts: %w", err)
	}
	return stats, nil
}
