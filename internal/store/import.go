package store

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/raulo/crm/internal/model"
	"github.com/raulo/crm/internal/storage"
)

var titleCaser = cases.Title(language.English, cases.NoLower)

// SanitizeCity normalizes a raw city value: anything after the first
// comma or opening parenthesis is dropped (so "Andheri (East), Mumbai"
// becomes "Andheri"), an " - " suffix segment is stripped, and each
// word is title-cased. An empty result becomes "Unknown".
func SanitizeCity(raw string) string {
	if raw == "" {
		return "Unknown"
	}
	clean := raw
	if i := strings.IndexAny(clean, ",("); i >= 0 {
		clean = clean[:i]
	}
	if i := strings.Index(clean, " - "); i >= 0 {
		clean = clean[:i]
	}
	clean = titleCaser.String(strings.TrimSpace(clean))
	if clean == "" {
		return "Unknown"
	}
	return clean
}

// ImportLeads sanitizes a batch of candidate leads, forces them into
// the target country, auto-creates any missing folder path, and
// prepends the batch to the lead collection. The tree sync and the
// commit happen under one lock so no reader sees a half-applied
// import. Returns the number of leads imported.
func (s *Store) ImportLeads(batch []model.Lead, country string) int {
	if len(batch) == 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	processed := make([]model.Lead, len(batch))
	for i, l := range batch {
		l.City = SanitizeCity(l.City)
		l.Category = strings.TrimSpace(l.Category)
		if l.Category == "" {
			l.Category = "General"
		}
		// Mixed-country batches are not supported; every row lands in
		// the import's target country.
		l.Country = country
		processed[i] = l
	}

	countryNode := s.ensureChild(s.root().ID, country, model.FolderCountry)
	for _, l := range processed {
		cityNode := s.ensureChild(countryNode.ID, l.City, model.FolderCity)
		s.ensureChild(cityNode.ID, l.Category, model.FolderCategory)
	}

	ready := make([]model.Lead, len(processed))
	for i, l := range processed {
		if l.ID == "" {
			l.ID = model.GenerateID()
		}
		if l.Name == "" {
			l.Name = "Unknown"
		}
		if l.Status == "" {
			l.Status = model.LeadNew
		}
		if l.SocialMediaLinks == nil {
			l.SocialMediaLinks = []string{}
		}
		ready[i] = l
	}
	s.leads = append(ready, s.leads...)

	s.persist(storage.KeyFolders, s.folders)
	s.persist(storage.KeyLeads, s.leads)
	return len(ready)
}
