// Package reconcile detects leads that have drifted away from the
// folder tree. The name-based join tolerates drift by design, so this
// is a diagnostic pass, never an invariant check: nothing is mutated.
package reconcile

import (
	"strings"

	"github.com/raulo/crm/internal/model"
)

// Orphan is a lead whose classification matches no folder path.
type Orphan struct {
	Lead   model.Lead
	Reason string
}

// Scan reports leads whose city has no city node, or whose category
// has no category node under that city.
func Scan(folders []model.Folder, leads []model.Lead) []Orphan {
	byID := make(map[string]model.Folder, len(folders))
	for _, f := range folders {
		byID[f.ID] = f
	}

	cities := make(map[string]string) // lowercased city name -> node id
	categories := make(map[string]bool)
	for _, f := range folders {
		switch f.Type {
		case model.FolderCity:
			cities[strings.ToLower(f.Name)] = f.ID
		case model.FolderCategory:
			if f.ParentID == nil {
				continue
			}
			parent := byID[*f.ParentID]
			categories[strings.ToLower(parent.Name)+"/"+strings.ToLower(f.Name)] = true
		}
	}

	var orphans []Orphan
	for _, l := range leads {
		city := strings.ToLower(l.City)
		if _, ok := cities[city]; !ok {
			orphans = append(orphans, Orphan{Lead: l, Reason: "city has no folder: " + l.City})
			continue
		}
		if !categories[city+"/"+strings.ToLower(l.Category)] {
			orphans = append(orphans, Orphan{Lead: l, Reason: "category has no folder under " + l.City + ": " + l.Category})
		}
	}
	return orphans
}
