package store_test

import (
	"errors"
	"testing"

	"github.com/raulo/crm/internal/model"
	"github.com/raulo/crm/internal/store"
)

func countChildrenNamed(s *store.Store, parentID, name string) int {
	count := 0
	for _, f := range s.ChildrenOf(parentID) {
		if f.Name == name {
			count++
		}
	}
	return count
}

func TestEnsureChild_Idempotent(t *testing.T) {
	s := openTestStore(t)

	first := s.EnsureChild("in", "Pune", model.FolderCity)
	second := s.EnsureChild("in", "Pune", model.FolderCity)

	if first.ID != second.ID {
		t.Errorf("expected the same node, got %s and %s", first.ID, second.ID)
	}
	if got := countChildrenNamed(s, "in", "Pune"); got != 1 {
		t.Errorf("expected exactly 1 Pune child, got %d", got)
	}
}

func TestEnsureChild_CaseInsensitive(t *testing.T) {
	s := openTestStore(t)

	// Mumbai already exists in the seed tree.
	node := s.EnsureChild("in", "  mumbai ", model.FolderCity)
	if node.ID != "mumbai" {
		t.Errorf("expected existing Mumbai node, got %s", node.ID)
	}
	if got := countChildrenNamed(s, "in", "Mumbai"); got != 1 {
		t.Errorf("expected exactly 1 Mumbai child, got %d", got)
	}
}

func TestAddFolder_MissingParent(t *testing.T) {
	s := openTestStore(t)

	_, err := s.AddFolder("nonexistent", "Pune", model.FolderCity)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRenameFolder(t *testing.T) {
	s := openTestStore(t)

	if err := s.RenameFolder("delhi", "New Delhi"); err != nil {
		t.Fatalf("rename failed: %v", err)
	}

	f, ok := s.FindFolder("delhi")
	if !ok {
		t.Fatal("folder disappeared after rename")
	}
	if f.Name != "New Delhi" {
		t.Errorf("expected renamed folder, got %q", f.Name)
	}

	if err := s.RenameFolder("nonexistent", "X"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRenameFolder_AllowsDuplicateSiblings(t *testing.T) {
	s := openTestStore(t)

	// Renaming does not re-check sibling-name uniqueness.
	if err := s.RenameFolder("delhi", "Mumbai"); err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if got := countChildrenNamed(s, "in", "Mumbai"); got != 2 {
		t.Errorf("expected 2 Mumbai siblings after rename, got %d", got)
	}
}

func TestDeleteFolder_CategoryCascade(t *testing.T) {
	s := openTestStore(t)
	s.DeleteLeads(leadIDs(s)) // start from a clean lead collection

	s.AddLead(model.Lead{ID: "cafe", Name: "Cafe Lead", Phone: "1", City: "Mumbai", Category: "Cafes"})
	s.AddLead(model.Lead{ID: "re", Name: "RE Lead", Phone: "2", City: "Mumbai", Category: "Real Estate"})

	// mum-cafe is the Cafes category under Mumbai.
	if err := s.DeleteFolder("mum-cafe"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, ok := s.FindFolder("mum-cafe"); ok {
		t.Error("deleted folder still present")
	}
	if _, ok := s.FindFolder("mum-real"); !ok {
		t.Error("sibling category must survive the delete")
	}

	leads := s.Leads()
	if len(leads) != 1 || leads[0].ID != "re" {
		t.Fatalf("expected only the Real Estate lead to survive, got %d leads", len(leads))
	}
}

func TestDeleteFolder_CityCascade(t *testing.T) {
	s := openTestStore(t)
	s.DeleteLeads(leadIDs(s))

	s.AddLead(model.Lead{ID: "d", Name: "Delhi Lead", Phone: "1", City: "Delhi", Category: "Real Estate"})
	s.AddLead(model.Lead{ID: "m", Name: "Mumbai Lead", Phone: "2", City: "Mumbai", Category: "Cafes"})

	if err := s.DeleteFolder("delhi"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, ok := s.FindFolder("del-real"); ok {
		t.Error("descendant category must be removed with its city")
	}

	leads := s.Leads()
	if len(leads) != 1 || leads[0].ID != "m" {
		t.Fatalf("expected only the Mumbai lead to survive, got %d leads", len(leads))
	}
}

func TestDeleteFolder_CountryCascadeWithCityFallback(t *testing.T) {
	s := openTestStore(t)
	s.DeleteLeads(leadIDs(s))

	s.AddLead(model.Lead{ID: "tagged", Name: "Tagged", Phone: "1", City: "Mumbai", Country: "India", Category: "Cafes"})
	s.AddLead(model.Lead{ID: "legacy", Name: "Legacy", Phone: "2", City: "Delhi", Category: "Real Estate"})
	s.AddLead(model.Lead{ID: "other", Name: "Other Country", Phone: "3", City: "Dubai", Country: "UAE", Category: "Cafes"})

	if err := s.DeleteFolder("in"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	leads := s.Leads()
	if len(leads) != 1 || leads[0].ID != "other" {
		t.Fatalf("expected only the UAE lead to survive, got %d leads", len(leads))
	}
}

func TestDeleteFolder_NotFound(t *testing.T) {
	s := openTestStore(t)

	if err := s.DeleteFolder("nonexistent"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteFolder_RootRejected(t *testing.T) {
	s := openTestStore(t)
	folders := len(s.Folders())
	leads := len(s.Leads())

	if err := s.DeleteFolder("root"); !errors.Is(err, store.ErrRootDelete) {
		t.Fatalf("expected ErrRootDelete, got %v", err)
	}

	if got := len(s.Folders()); got != folders {
		t.Errorf("tree must be untouched, got %d folders, had %d", got, folders)
	}
	if got := len(s.Leads()); got != leads {
		t.Errorf("leads must be untouched, got %d, had %d", got, leads)
	}
}

func TestPathTo(t *testing.T) {
	s := openTestStore(t)

	path := s.PathTo("mum-cafe")
	if len(path) != 4 {
		t.Fatalf("expected 4-node path, got %d", len(path))
	}

	want := []string{"Global Database", "India", "Mumbai", "Cafes"}
	for i, f := range path {
		if f.Name != want[i] {
			t.Errorf("path[%d]: got %q, want %q", i, f.Name, want[i])
		}
	}

	if got := s.PathTo("nonexistent"); got != nil {
		t.Errorf("expected nil path for unknown id, got %v", got)
	}
}

func leadIDs(s *store.Store) []string {
	var ids []string
	for _, l := range s.Leads() {
		ids = append(ids, l.ID)
	}
	return ids
}
