package tui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (a App) View() string {
	treeWidth := a.width / 3
	if treeWidth < 24 {
		treeWidth = 24
	}
	leadWidth := a.width - treeWidth - 8
	if leadWidth < 30 {
		leadWidth = 30
	}
	paneHeight := a.height - 7
	if paneHeight < 4 {
		paneHeight = 4
	}

	title := a.styles.Title.Render("Raulo CRM")
	if a.user.Name != "" {
		title += a.styles.Meta.Render("  " + a.user.Name)
	}

	treePane := a.renderTreePane(treeWidth, paneHeight)
	leadPane := a.renderLeadPane(leadWidth, paneHeight)
	panes := lipgloss.JoinHorizontal(lipgloss.Top, treePane, leadPane)

	status := a.renderStatusLine()
	help := a.styles.Help.Render("j/k move · tab switch pane · / filter · s status · Y yank phone · i import · d delete · q quit")

	return a.styles.App.Render(strings.Join([]string{title, panes, status, help}, "\n"))
}

func (a App) renderTreePane(width, height int) string {
	var lines []string
	for i, item := range a.treeItems {
		label := truncate(strings.Repeat("  ", item.Depth)+item.Folder.Name, width-4)
		if i == a.treeCursor && a.focus == PaneTree {
			lines = append(lines, a.styles.ItemSelected.Render(label))
		} else if i == a.treeCursor {
			lines = append(lines, a.styles.Status.Render(label))
		} else {
			lines = append(lines, a.styles.Item.Render(label))
		}
	}
	lines = fitLines(lines, a.treeCursor, height)

	style := a.styles.Pane
	if a.focus == PaneTree {
		style = a.styles.PaneActive
	}
	return style.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

func (a App) renderLeadPane(width, height int) string {
	var lines []string
	if len(a.leads) == 0 {
		lines = append(lines, a.styles.Empty.Render("no leads here"))
	}
	for i, l := range a.leads {
		row := fmt.Sprintf("%-24s %-16s %s", truncate(l.Name, 24), truncate(l.Phone, 16), l.Status)
		row = truncate(row, width-4)
		if i == a.leadCursor && a.focus == PaneLeads {
			lines = append(lines, a.styles.ItemSelected.Render(row))
		} else {
			lines = append(lines, a.styles.Item.Render(row))
		}
	}
	lines = fitLines(lines, a.leadCursor, height)

	style := a.styles.Pane
	if a.focus == PaneLeads {
		style = a.styles.PaneActive
	}
	return style.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

func (a App) renderStatusLine() string {
	parts := []string{fmt.Sprintf("%d leads", len(a.leads))}
	if a.statusFilter != "" {
		parts = append(parts, "status: "+a.statusFilter)
	}
	if a.filtering {
		parts = append(parts, a.filter.View())
	} else if a.filter.Value() != "" {
		parts = append(parts, "filter: "+a.filter.Value())
	}
	if a.statusMessage != "" {
		parts = append(parts, a.statusMessage)
	}
	return a.styles.Meta.Render(strings.Join(parts, "  ·  "))
}

// fitLines trims the line list to height rows, keeping the cursor row
// visible.
func fitLines(lines []string, cursor, height int) []string {
	if len(lines) <= height {
		return lines
	}
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start:end]
}

// truncate shortens s to max runes. Slicing runes, not bytes, so a
// multibyte name at the boundary never renders invalid UTF-8.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI color codes, for plain-text view assertions.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
