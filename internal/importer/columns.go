package importer

import "strings"

// Logical column names produced by header detection.
const (
	colName     = "name"
	colPhone    = "phone"
	colEmail    = "email"
	colCity     = "city"
	colCategory = "category"
	colSocial   = "social"
	colRemarks  = "remarks"
	colStatus   = "status"
	colMeeting  = "meeting"
)

// headerKeywords maps logical columns to the substrings that identify
// them in a header cell. Order matters: the first matching column
// claims the cell.
var headerKeywords = []struct {
	col      string
	keywords []string
}{
	{colName, []string{"name", "company", "lead"}},
	{colPhone, []string{"phone", "mobile", "contact"}},
	{colEmail, []string{"email", "mail"}},
	{colCity, []string{"city", "location"}},
	{colCategory, []string{"category", "niche", "industry"}},
	{colSocial, []string{"social", "link", "url", "web", "instagram", "facebook"}},
	{colRemarks, []string{"remark", "note", "comment", "description"}},
	{colStatus, []string{"status"}},
	{colMeeting, []string{"date", "meeting", "appointment", "schedule", "time"}},
}

// IdentifyColumns inspects a candidate header row and builds a logical
// column → index map. Returns nil when no cell matches any keyword, in
// which case the row is data and mapping falls back to per-cell
// heuristics.
func IdentifyColumns(headerRow []string) map[string]int {
	m := make(map[string]int)

	for i, raw := range headerRow {
		h := strings.ToLower(strings.TrimSpace(raw))
		if h == "" {
			continue
		}
	match:
		for _, entry := range headerKeywords {
			for _, kw := range entry.keywords {
				if strings.Contains(h, kw) {
					m[entry.col] = i
					break match
				}
			}
		}
	}

	if len(m) == 0 {
		return nil
	}
	return m
}
