package store

import (
	"fmt"
	"strings"

	"github.com/raulo/crm/internal/model"
	"github.com/raulo/crm/internal/storage"
)

// childKey is the sibling-index key for a case-insensitive name lookup
// under one parent.
func childKey(parentID, name string) string {
	return parentID + "\x00" + strings.ToLower(strings.TrimSpace(name))
}

// rebuildChildIndex rebuilds the sibling index from scratch. The first
// sibling with a given name wins, matching in-order scan semantics.
func (s *Store) rebuildChildIndex() {
	s.childIndex = make(map[string]string, len(s.folders))
	for _, f := range s.folders {
		if f.ParentID == nil {
			continue
		}
		key := childKey(*f.ParentID, f.Name)
		if _, exists := s.childIndex[key]; !exists {
			s.childIndex[key] = f.ID
		}
	}
}

// Root returns the root folder of the tree.
func (s *Store) Root() model.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.root()
}

func (s *Store) root() model.Folder {
	for _, f := range s.folders {
		if f.Type == model.FolderRoot {
			return f
		}
	}
	// A tree always has a root; reset to the seed if it's gone.
	s.folders = model.SeedFolders()
	s.rebuildChildIndex()
	s.persist(storage.KeyFolders, s.folders)
	return s.folders[0]
}

func (s *Store) findFolder(id string) (model.Folder, bool) {
	for _, f := range s.folders {
		if f.ID == id {
			return f, true
		}
	}
	return model.Folder{}, false
}

// FindFolder returns the folder with the given id.
func (s *Store) FindFolder(id string) (model.Folder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findFolder(id)
}

// ChildrenOf returns the direct children of a folder in insertion order.
func (s *Store) ChildrenOf(parentID string) []model.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.childrenOf(parentID)
}

func (s *Store) childrenOf(parentID string) []model.Folder {
	var result []model.Folder
	for _, f := range s.folders {
		if f.ParentID != nil && *f.ParentID == parentID {
			result = append(result, f)
		}
	}
	return result
}

// PathTo returns the root-to-node folder path for id, or nil if the
// folder does not exist.
func (s *Store) PathTo(id string) []model.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()

	node, ok := s.findFolder(id)
	if !ok {
		return nil
	}

	path := []model.Folder{node}
	for node.ParentID != nil {
		parent, ok := s.findFolder(*node.ParentID)
		if !ok {
			break
		}
		path = append([]model.Folder{parent}, path...)
		node = parent
	}
	return path
}

// EnsureChild finds a child of parentID by case-insensitive name, or
// creates one with the given type. Idempotent: repeated calls with the
// same name never duplicate a sibling.
func (s *Store) EnsureChild(parentID, name string, typ model.FolderType) model.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()
	child := s.ensureChild(parentID, name, typ)
	s.persist(storage.KeyFolders, s.folders)
	return child
}

func (s *Store) ensureChild(parentID, name string, typ model.FolderType) model.Folder {
	key := childKey(parentID, name)
	if id, ok := s.childIndex[key]; ok {
		if f, found := s.findFolder(id); found {
			return f
		}
	}

	pid := parentID
	child := model.NewFolder(model.NewFolderParams{
		Name:     strings.TrimSpace(name),
		Type:     typ,
		ParentID: &pid,
	})
	s.folders = append(s.folders, child)
	s.childIndex[key] = child.ID
	return child
}

// AddFolder appends a new child under parentID.
// Returns ErrNotFound if the parent does not exist.
func (s *Store) AddFolder(parentID, name string, typ model.FolderType) (model.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findFolder(parentID); !ok {
		return model.Folder{}, fmt.Errorf("add folder under %s: %w", parentID, ErrNotFound)
	}

	pid := parentID
	folder := model.NewFolder(model.NewFolderParams{
		Name:     name,
		Type:     typ,
		ParentID: &pid,
	})
	s.folders = append(s.folders, folder)

	key := childKey(parentID, name)
	if _, exists := s.childIndex[key]; !exists {
		s.childIndex[key] = folder.ID
	}

	s.persist(storage.KeyFolders, s.folders)
	return folder, nil
}

// RenameFolder changes a folder's display name in place. Sibling-name
// uniqueness is not re-checked, so duplicate siblings are possible
// after a rename; the index keeps pointing at the first match.
func (s *Store) RenameFolder(id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.folders {
		if s.folders[i].ID == id {
			s.folders[i].Name = name
			s.rebuildChildIndex()
			s.persist(storage.KeyFolders, s.folders)
			return nil
		}
	}
	return fmt.Errorf("rename folder %s: %w", id, ErrNotFound)
}

// DeleteFolder removes a folder and its entire subtree, purging the
// leads classified under it:
//   - category under a city: leads with that city and category
//   - city: leads with that city, country-agnostic
//   - country: leads with that country, or leads without a country
//     whose city is among the country's child cities
//
// Lead purge and structural removal commit together.
func (s *Store) DeleteFolder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	node, ok := s.findFolder(id)
	if !ok {
		return fmt.Errorf("delete folder %s: %w", id, ErrNotFound)
	}
	// The tree itself is never destroyed.
	if node.Type == model.FolderRoot {
		return fmt.Errorf("delete folder %s: %w", id, ErrRootDelete)
	}

	var parent model.Folder
	if node.ParentID != nil {
		parent, _ = s.findFolder(*node.ParentID)
	}

	keep := func(l model.Lead) bool { return true }
	switch {
	case node.Type == model.FolderCategory && parent.Type == model.FolderCity:
		keep = func(l model.Lead) bool {
			return !(l.City == parent.Name && l.Category == node.Name)
		}
	case node.Type == model.FolderCity:
		keep = func(l model.Lead) bool {
			return l.City != node.Name
		}
	case node.Type == model.FolderCountry:
		cityNames := make(map[string]bool)
		for _, c := range s.childrenOf(node.ID) {
			cityNames[c.Name] = true
		}
		// Known data-quality risk: the city-membership fallback can
		// catch a same-named city in another country when the lead
		// has no country field.
		keep = func(l model.Lead) bool {
			return !(l.Country == node.Name || (l.Country == "" && cityNames[l.City]))
		}
	}

	kept := make([]model.Lead, 0, len(s.leads))
	for _, l := range s.leads {
		if keep(l) {
			kept = append(kept, l)
		}
	}
	s.leads = kept

	// Remove the node and every descendant from the arena.
	doomed := map[string]bool{id: true}
	for changed := true; changed; {
		changed = false
		for _, f := range s.folders {
			if f.ParentID != nil && doomed[*f.ParentID] && !doomed[f.ID] {
				doomed[f.ID] = true
				changed = true
			}
		}
	}
	remaining := s.folders[:0]
	for _, f := range s.folders {
		if !doomed[f.ID] {
			remaining = append(remaining, f)
		}
	}
	s.folders = remaining
	s.rebuildChildIndex()

	s.persist(storage.KeyLeads, s.leads)
	s.persist(storage.KeyFolders, s.folders)
	return nil
}
