package search

import (
	"github.com/raulo/crm/internal/model"
	"github.com/sahilm/fuzzy"
)

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Lead           *model.Lead
	MatchedIndexes []int
	Score          int
}

// leadNames implements fuzzy.Source for a lead slice.
type leadNames []*model.Lead

func (ln leadNames) String(i int) string {
	return ln[i].Name
}

func (ln leadNames) Len() int {
	return len(ln)
}

// FuzzySearchLeads searches leads by name using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearchLeads(leads []model.Lead, query string) []SearchResult {
	if query == "" {
		return nil
	}

	src := make(leadNames, len(leads))
	for i := range leads {
		src[i] = &leads[i]
	}

	matches := fuzzy.FindFrom(query, src)

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Lead:           src[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
