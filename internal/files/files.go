// Package files keeps the session-only attachment registry. Attached
// files are never persisted as bytes: the registry maps a document id
// to a transient temp-file locator that dies with the process, so
// opening a document attached in an earlier session degrades to an
// explicit error rather than a crash.
package files

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// ErrNotAttached is returned when an id has no locator in this session.
var ErrNotAttached = errors.New("document not attached in this session")

// Registry maps document ids to transient file locators.
type Registry struct {
	mu       sync.Mutex
	locators map[string]string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{locators: make(map[string]string)}
}

// Store copies the contents of r into a temp file and registers it
// under id. Returns the locator path.
func (reg *Registry) Store(id string, r io.Reader) (string, error) {
	tmp, err := os.CreateTemp("", "crm-doc-*")
	if err != nil {
		return "", fmt.Errorf("create locator for %s: %w", id, err)
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, r); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("store document %s: %w", id, err)
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.locators[id] = tmp.Name()
	return tmp.Name(), nil
}

// StoreFile stages the file at path under id. The file must exist and
// be readable; only its session copy is registered, never the original.
func (reg *Registry) StoreFile(id, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("stage document %s: %w", id, err)
	}
	defer f.Close()
	return reg.Store(id, f)
}

// Open returns the locator registered for id.
// Returns ErrNotAttached for ids from earlier sessions.
func (reg *Registry) Open(id string) (string, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	locator, ok := reg.locators[id]
	if !ok {
		return "", ErrNotAttached
	}
	return locator, nil
}

// Close removes every temp file the registry created.
func (reg *Registry) Close() {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	for id, locator := range reg.locators {
		os.Remove(locator)
		delete(reg.locators, id)
	}
}
