package store

import (
	"fmt"
	"strings"

	"github.com/raulo/crm/internal/model"
	"github.com/raulo/crm/internal/storage"
)

// AddLead prepends a lead. Newest-first ordering is a user-facing
// contract, not an implementation detail.
func (s *Store) AddLead(lead model.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append([]model.Lead{lead}, s.leads...)
	s.persist(storage.KeyLeads, s.leads)
}

// UpdateLead merges partial fields into the lead matching id.
// Returns ErrNotFound for an unknown id.
func (s *Store) UpdateLead(id string, updates model.LeadUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.leads {
		if s.leads[i].ID == id {
			updates.Apply(&s.leads[i])
			s.persist(storage.KeyLeads, s.leads)
			return nil
		}
	}
	return fmt.Errorf("update lead %s: %w", id, ErrNotFound)
}

// DeleteLead removes the lead matching id.
// Returns ErrNotFound for an unknown id.
func (s *Store) DeleteLead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads = append(s.leads[:i], s.leads[i+1:]...)
			s.persist(storage.KeyLeads, s.leads)
			return nil
		}
	}
	return fmt.Errorf("delete lead %s: %w", id, ErrNotFound)
}

// DeleteLeads removes every lead whose id is in ids. Unknown ids are
// skipped.
func (s *Store) DeleteLeads(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	kept := s.leads[:0]
	for _, l := range s.leads {
		if !idSet[l.ID] {
			kept = append(kept, l)
		}
	}
	s.leads = kept
	s.persist(storage.KeyLeads, s.leads)
}

// UpdateLeads applies the same partial merge to every lead whose id is
// in ids. Unknown ids are skipped.
func (s *Store) UpdateLeads(ids []string, updates model.LeadUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	for i := range s.leads {
		if idSet[s.leads[i].ID] {
			updates.Apply(&s.leads[i])
		}
	}
	s.persist(storage.KeyLeads, s.leads)
}

// LeadsForFolder returns the leads classified under the folder with the
// given id, per the name-based join rules:
//   - root: every lead
//   - country: country match, or city-membership fallback for leads
//     that predate the country field
//   - city: exact city match (country-agnostic)
//   - category: category match, scoped to the parent city
func (s *Store) LeadsForFolder(id string) []model.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	node, ok := s.findFolder(id)
	if !ok {
		return nil
	}

	var result []model.Lead
	switch node.Type {
	case model.FolderRoot:
		result = append(result, s.leads...)

	case model.FolderCountry:
		cityNames := make(map[string]bool)
		for _, f := range s.folders {
			if f.ParentID != nil && *f.ParentID == node.ID {
				cityNames[f.Name] = true
			}
		}
		for _, l := range s.leads {
			if l.Country == node.Name || (l.Country == "" && cityNames[l.City]) {
				result = append(result, l)
			}
		}

	case model.FolderCity:
		for _, l := range s.leads {
			if l.City == node.Name {
				result = append(result, l)
			}
		}

	case model.FolderCategory:
		cityName := ""
		if node.ParentID != nil {
			if parent, ok := s.findFolder(*node.ParentID); ok && parent.Type == model.FolderCity {
				cityName = parent.Name
			}
		}
		for _, l := range s.leads {
			if l.Category == node.Name && (cityName == "" || l.City == cityName) {
				result = append(result, l)
			}
		}
	}
	return result
}

// MatchesQuery reports whether a lead matches a free-text search over
// name, phone, city, category and email.
func MatchesQuery(l model.Lead, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Name), q) ||
		strings.Contains(l.Phone, q) ||
		strings.Contains(strings.ToLower(l.City), q) ||
		strings.Contains(strings.ToLower(l.Category), q) ||
		strings.Contains(strings.ToLower(l.Email), q)
}
