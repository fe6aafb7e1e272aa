package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/raulo/crm/internal/model"
	"github.com/raulo/crm/internal/storage"
)

func TestJSONStorage_RoundTrip(t *testing.T) {
	s := storage.NewJSONStorage(t.TempDir())

	leads := []model.Lead{
		{ID: "1", Name: "Acme", Phone: "12345", City: "Mumbai", Status: model.LeadNew, SocialMediaLinks: []string{}},
	}
	if err := s.Save(storage.KeyLeads, leads); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var loaded []model.Lead
	if err := s.Load(storage.KeyLeads, &loaded); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Name != "Acme" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestJSONStorage_NoSnapshot(t *testing.T) {
	s := storage.NewJSONStorage(t.TempDir())

	var leads []model.Lead
	if err := s.Load(storage.KeyLeads, &leads); !errors.Is(err, storage.ErrNoSnapshot) {
		t.Errorf("expected ErrNoSnapshot, got %v", err)
	}
}

func TestJSONStorage_OneFilePerKey(t *testing.T) {
	dir := t.TempDir()
	s := storage.NewJSONStorage(dir)

	if err := s.Save(storage.KeyFolders, model.SeedFolders()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, storage.KeyFolders+".json")); err != nil {
		t.Errorf("expected snapshot file for key: %v", err)
	}
}

func TestJSONStorage_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	s := storage.NewJSONStorage(dir)

	path := filepath.Join(dir, storage.KeyLeads+".json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	var leads []model.Lead
	err := s.Load(storage.KeyLeads, &leads)
	if err == nil {
		t.Fatal("expected an error for corrupt data")
	}
	if errors.Is(err, storage.ErrNoSnapshot) {
		t.Error("corrupt data is not the same as a missing snapshot")
	}
}

func TestOpenStorage_PrefersSQLiteWhenPresent(t *testing.T) {
	dir := t.TempDir()

	st, err := storage.OpenStorage(dir)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if _, ok := st.(*storage.JSONStorage); !ok {
		t.Fatalf("expected JSON backend for an empty dir, got %T", st)
	}

	db, err := storage.NewSQLiteStorage(filepath.Join(dir, "crm.db"))
	if err != nil {
		t.Fatalf("create db failed: %v", err)
	}
	db.Close()

	st, err = storage.OpenStorage(dir)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	sq, ok := st.(*storage.SQLiteStorage)
	if !ok {
		t.Fatalf("expected SQLite backend once crm.db exists, got %T", st)
	}
	sq.Close()
}
