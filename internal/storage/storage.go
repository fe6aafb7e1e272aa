package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Snapshot keys. Each collection is persisted wholesale under its own key.
const (
	KeyLeads     = "raulo_crm_leads"
	KeyProjects  = "raulo_crm_projects"
	KeyCampaigns = "raulo_crm_campaigns"
	KeyReports   = "raulo_crm_reports"
	KeyFolders   = "raulo_crm_folders"
)

// ErrNoSnapshot is returned by Load when no snapshot exists for a key.
var ErrNoSnapshot = errors.New("no snapshot for key")

// Storage persists JSON snapshots of whole collections by key.
type Storage interface {
	Load(key string, v any) error
	Save(key string, v any) error
}

// JSONStorage implements Storage using one JSON file per key.
type JSONStorage struct {
	dir string
}

// NewJSONStorage creates a JSONStorage rooted at the given directory.
func NewJSONStorage(dir string) *JSONStorage {
	return &JSONStorage{dir: dir}
}

// Dir returns the storage directory.
func (s *JSONStorage) Dir() string {
	return s.dir
}

func (s *JSONStorage) pathFor(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the snapshot for key into v.
// Returns ErrNoSnapshot if the file doesn't exist.
func (s *JSONStorage) Load(key string, v any) error {
	data, err := os.ReadFile(s.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNoSnapshot
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// Save writes v as the snapshot for key.
// Creates the directory if it doesn't exist.
func (s *JSONStorage) Save(key string, v any) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.pathFor(key), data, 0644)
}

// DefaultDataDir returns the default data directory: ~/.config/crm
func DefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "crm"), nil
}

// OpenStorage opens the appropriate storage backend under dir.
// Prefers SQLite if the database file exists, otherwise falls back
// to per-key JSON files.
func OpenStorage(dir string) (Storage, error) {
	sqlitePath := filepath.Join(dir, "crm.db")
	if _, err := os.Stat(sqlitePath); err == nil {
		return NewSQLiteStorage(sqlitePath)
	}
	return NewJSONStorage(dir), nil
}
