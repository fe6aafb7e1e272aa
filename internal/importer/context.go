package importer

import "github.com/raulo/crm/internal/model"

// ContextFor derives the import context from the root-to-node folder
// path the import was triggered on. A city node forces the city; a
// category node forces the category (and the city, when its parent is
// a city); the nearest country ancestor sets the target country.
func ContextFor(path []model.Folder, defaultCountry string) Context {
	ctx := Context{Country: defaultCountry}
	if len(path) == 0 {
		return ctx
	}

	for _, f := range path {
		if f.Type == model.FolderCountry {
			ctx.Country = f.Name
		}
	}

	node := path[len(path)-1]
	switch node.Type {
	case model.FolderCity:
		ctx.ForcedCity = node.Name
	case model.FolderCategory:
		ctx.ForcedCategory = node.Name
		if len(path) >= 2 && path[len(path)-2].Type == model.FolderCity {
			ctx.ForcedCity = path[len(path)-2].Name
		}
	}
	return ctx
}
