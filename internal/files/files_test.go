package files_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raulo/crm/internal/files"
)

func TestRegistry_StoreAndOpen(t *testing.T) {
	reg := files.NewRegistry()
	defer reg.Close()

	locator, err := reg.Store("doc1", strings.NewReader("proposal body"))
	if err != nil {
		t.Fatalf("store failed: %v", err)
	}

	opened, err := reg.Open("doc1")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if opened != locator {
		t.Errorf("locator mismatch: %q vs %q", opened, locator)
	}

	data, err := os.ReadFile(opened)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "proposal body" {
		t.Errorf("content: got %q", data)
	}
}

func TestRegistry_StoreFile(t *testing.T) {
	reg := files.NewRegistry()
	defer reg.Close()

	src := filepath.Join(t.TempDir(), "daily.pdf")
	if err := os.WriteFile(src, []byte("report body"), 0644); err != nil {
		t.Fatal(err)
	}

	locator, err := reg.StoreFile("r1", src)
	if err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if locator == src {
		t.Error("registry must stage a copy, not the original path")
	}

	data, err := os.ReadFile(locator)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "report body" {
		t.Errorf("content: got %q", data)
	}
}

func TestRegistry_StoreFile_Missing(t *testing.T) {
	reg := files.NewRegistry()
	defer reg.Close()

	if _, err := reg.StoreFile("r1", filepath.Join(t.TempDir(), "absent.pdf")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestRegistry_NotAttached(t *testing.T) {
	reg := files.NewRegistry()
	defer reg.Close()

	if _, err := reg.Open("from-a-previous-session"); !errors.Is(err, files.ErrNotAttached) {
		t.Errorf("expected ErrNotAttached, got %v", err)
	}
}

func TestRegistry_CloseRemovesTempFiles(t *testing.T) {
	reg := files.NewRegistry()

	locator, err := reg.Store("doc1", strings.NewReader("x"))
	if err != nil {
		t.Fatal(err)
	}

	reg.Close()

	if _, err := os.Stat(locator); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected temp file removed, stat err=%v", err)
	}
	if _, err := reg.Open("doc1"); !errors.Is(err, files.ErrNotAttached) {
		t.Errorf("expected registry emptied, got %v", err)
	}
}
