package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the dashboard.
type Styles struct {
	App          lipgloss.Style
	Pane         lipgloss.Style
	PaneActive   lipgloss.Style
	Title        lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Meta         lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style
	Empty        lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Grayscale with a single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"}
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(border).
			Padding(0, 1),

		PaneActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Item: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(1),

		ItemSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		Meta: lipgloss.NewStyle().
			Foreground(subtle),

		Status: lipgloss.NewStyle().
			Foreground(accent),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),
	}
}
