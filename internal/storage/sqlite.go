package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStorage implements Storage using a single SQLite database with
// one row per snapshot key.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage creates a SQLiteStorage with the given database path.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS snapshots (
			key TEXT PRIMARY KEY NOT NULL,
			value TEXT NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStorage{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Load reads the snapshot for key into v.
// Returns ErrNoSnapshot if no row exists for the key.
func (s *SQLiteStorage) Load(key string, v any) error {
	var value string
	err := s.db.QueryRow("SELECT value FROM snapshots WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoSnapshot
		}
		return err
	}
	return json.Unmarshal([]byte(value), v)
}

// Save writes v as the snapshot for key, replacing any previous row.
func (s *SQLiteStorage) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(data))
	return err
}
