package model

// FolderType is the level of a folder in the classification tree.
type FolderType string

const (
	FolderRoot     FolderType = "root"
	FolderCountry  FolderType = "country"
	FolderCity     FolderType = "city"
	FolderCategory FolderType = "category"
)

// ChildType returns the folder type allowed directly under t,
// or empty for category folders (leaves).
func (t FolderType) ChildType() FolderType {
	switch t {
	case FolderRoot:
		return FolderCountry
	case FolderCountry:
		return FolderCity
	case FolderCity:
		return FolderCategory
	}
	return ""
}

// Folder is one node of the country → city → category tree.
// Folders are kept in a flat slice; ParentID references the parent
// instead of nested ownership, and sibling order is slice order.
type Folder struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Type     FolderType `json:"type"`
	ParentID *string    `json:"parentId"` // nil only for the root node
}

// NewFolderParams holds parameters for creating a new Folder.
type NewFolderParams struct {
	Name     string
	Type     FolderType
	ParentID *string
}

// NewFolder creates a Folder with a generated ID.
func NewFolder(params NewFolderParams) Folder {
	return Folder{
		ID:       GenerateID(),
		Name:     params.Name,
		Type:     params.Type,
		ParentID: params.ParentID,
	}
}
