package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/raulo/crm/internal/importer"
	"github.com/raulo/crm/internal/model"
	"github.com/raulo/crm/internal/store"
)

// Pane identifies which side of the dashboard has focus.
type Pane int

const (
	PaneTree Pane = iota
	PaneLeads
)

// treeItem is one visible row of the folder tree, carrying its depth
// for indentation.
type treeItem struct {
	Folder model.Folder
	Depth  int
}

// App is the main bubbletea model for the dashboard.
type App struct {
	store          *store.Store
	keys           KeyMap
	styles         Styles
	user           model.User
	defaultCountry string

	focus      Pane
	treeItems  []treeItem
	treeCursor int
	leads      []model.Lead
	leadCursor int

	filter        textinput.Model
	filtering     bool
	statusFilter  string // empty = all
	statusMessage string

	// For gg command
	lastKeyWasG bool

	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Store          *store.Store
	User           model.User
	DefaultCountry string  // target country when importing outside a country node
	Keys           *KeyMap // optional, uses default if nil
	Styles         *Styles // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	filter := textinput.New()
	filter.Placeholder = "filter leads"
	filter.CharLimit = 64

	country := params.DefaultCountry
	if country == "" {
		country = "India"
	}

	app := App{
		store:          params.Store,
		keys:           keys,
		styles:         styles,
		user:           params.User,
		defaultCountry: country,
		filter:         filter,
		width:          80,
		height:         24,
	}

	app.refreshTree()
	app.refreshLeads()
	return app
}

// WithDimensions returns the app with fixed dimensions, for tests.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// refreshTree rebuilds the visible tree rows, depth-first in sibling
// insertion order.
func (a *App) refreshTree() {
	a.treeItems = nil

	var walk func(id string, depth int)
	walk = func(id string, depth int) {
		for _, child := range a.store.ChildrenOf(id) {
			a.treeItems = append(a.treeItems, treeItem{Folder: child, Depth: depth})
			walk(child.ID, depth+1)
		}
	}

	root := a.store.Root()
	a.treeItems = append(a.treeItems, treeItem{Folder: root, Depth: 0})
	walk(root.ID, 1)

	if a.treeCursor >= len(a.treeItems) {
		a.treeCursor = len(a.treeItems) - 1
	}
	if a.treeCursor < 0 {
		a.treeCursor = 0
	}
}

// refreshLeads rebuilds the lead rows for the selected folder, applying
// the text and status filters.
func (a *App) refreshLeads() {
	a.leads = nil
	if len(a.treeItems) == 0 {
		return
	}

	selected := a.treeItems[a.treeCursor].Folder
	for _, l := range a.store.LeadsForFolder(selected.ID) {
		if a.statusFilter != "" && string(l.Status) != a.statusFilter {
			continue
		}
		if !store.MatchesQuery(l, a.filter.Value()) {
			continue
		}
		a.leads = append(a.leads, l)
	}

	if a.leadCursor >= len(a.leads) {
		a.leadCursor = len(a.leads) - 1
	}
	if a.leadCursor < 0 {
		a.leadCursor = 0
	}
}

// SelectedFolder returns the folder under the tree cursor.
func (a App) SelectedFolder() model.Folder {
	if len(a.treeItems) == 0 {
		return model.Folder{}
	}
	return a.treeItems[a.treeCursor].Folder
}

// Leads returns the currently visible lead rows.
func (a App) Leads() []model.Lead {
	return a.leads
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if a.filtering {
			return a.updateFilter(msg)
		}
		return a.updateNormal(msg)
	}

	return a, nil
}

func (a App) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		a.filtering = false
		a.filter.Blur()
		if msg.String() == "esc" {
			a.filter.SetValue("")
		}
		a.refreshLeads()
		return a, nil
	}

	var cmd tea.Cmd
	a.filter, cmd = a.filter.Update(msg)
	a.refreshLeads()
	return a, cmd
}

func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.lastKeyWasG = false
			a.moveCursor(-1 << 30)
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-1)

	case key.Matches(msg, a.keys.Down):
		a.moveCursor(1)

	case key.Matches(msg, a.keys.Bottom):
		a.moveCursor(1 << 30)

	case key.Matches(msg, a.keys.SwitchPane):
		if a.focus == PaneTree {
			a.focus = PaneLeads
		} else {
			a.focus = PaneTree
		}

	case key.Matches(msg, a.keys.Filter):
		a.filtering = true
		a.filter.Focus()

	case key.Matches(msg, a.keys.CycleStatus):
		a.cycleStatusFilter()
		a.refreshLeads()

	case key.Matches(msg, a.keys.YankPhone):
		if a.focus == PaneLeads && a.leadCursor < len(a.leads) {
			lead := a.leads[a.leadCursor]
			if err := clipboard.WriteAll(lead.Phone); err == nil {
				a.statusMessage = "yanked phone of " + lead.Name
			}
		}

	case key.Matches(msg, a.keys.Import):
		raw, err := clipboard.ReadAll()
		if err != nil {
			a.statusMessage = "clipboard unavailable"
			break
		}
		a.importText(raw)

	case key.Matches(msg, a.keys.Delete):
		a.deleteSelected()

	case key.Matches(msg, a.keys.Reload):
		a.refreshTree()
		a.refreshLeads()
	}

	return a, nil
}

// moveCursor moves the focused pane's cursor, clamped to its rows.
func (a *App) moveCursor(delta int) {
	clamp := func(v, max int) int {
		if v < 0 {
			return 0
		}
		if v > max {
			return max
		}
		return v
	}

	if a.focus == PaneTree {
		if len(a.treeItems) == 0 {
			return
		}
		a.treeCursor = clamp(a.treeCursor+delta, len(a.treeItems)-1)
		a.leadCursor = 0
		a.refreshLeads()
		return
	}

	if len(a.leads) == 0 {
		return
	}
	a.leadCursor = clamp(a.leadCursor+delta, len(a.leads)-1)
}

// cycleStatusFilter steps through All → each lead status → All.
func (a *App) cycleStatusFilter() {
	if a.statusFilter == "" {
		a.statusFilter = string(model.LeadStatuses[0])
		return
	}
	for i, s := range model.LeadStatuses {
		if string(s) == a.statusFilter {
			if i == len(model.LeadStatuses)-1 {
				a.statusFilter = ""
			} else {
				a.statusFilter = string(model.LeadStatuses[i+1])
			}
			return
		}
	}
	a.statusFilter = ""
}

// importText imports pasted rows into the selected folder. The tree
// location decides the import context: a city node forces the city, a
// category node forces category and city, the nearest country ancestor
// sets the target country.
func (a *App) importText(raw string) {
	selected := a.SelectedFolder()
	ctx := importer.ContextFor(a.store.PathTo(selected.ID), a.defaultCountry)

	result := importer.ParseText(raw, ctx)
	if result.Empty() {
		a.statusMessage = "no importable rows in clipboard"
		return
	}

	count := a.store.ImportLeads(result.Leads, ctx.Country)
	a.statusMessage = fmt.Sprintf("imported %d leads into %s", count, selected.Name)
	a.refreshTree()
	a.refreshLeads()
}

// deleteSelected removes the item under the cursor in the focused pane.
// The root folder cannot be deleted.
func (a *App) deleteSelected() {
	if a.focus == PaneTree {
		folder := a.SelectedFolder()
		if folder.Type == model.FolderRoot {
			a.statusMessage = "cannot delete the root folder"
			return
		}
		if err := a.store.DeleteFolder(folder.ID); err != nil {
			a.statusMessage = err.Error()
			return
		}
		a.statusMessage = "deleted folder " + folder.Name
		a.refreshTree()
		a.refreshLeads()
		return
	}

	if a.leadCursor >= len(a.leads) {
		return
	}
	lead := a.leads[a.leadCursor]
	if err := a.store.DeleteLead(lead.ID); err != nil {
		a.statusMessage = err.Error()
		return
	}
	a.statusMessage = "deleted lead " + lead.Name
	a.refreshLeads()
}
