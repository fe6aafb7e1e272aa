package importer

import "testing"

func TestIdentifyColumns(t *testing.T) {
	m := IdentifyColumns([]string{"Company Name", "Mobile", "E-Mail", "City", "Niche", "Instagram URL", "Notes", "Status", "Meeting Date"})
	if m == nil {
		t.Fatal("expected a column map")
	}

	want := map[string]int{
		colName:     0,
		colPhone:    1,
		colEmail:    2,
		colCity:     3,
		colCategory: 4,
		colSocial:   5,
		colRemarks:  6,
		colStatus:   7,
		colMeeting:  8,
	}
	for col, idx := range want {
		if got, ok := m[col]; !ok || got != idx {
			t.Errorf("%s: got index %d (present=%v), want %d", col, got, ok, idx)
		}
	}
}

func TestIdentifyColumns_NoMatch(t *testing.T) {
	if m := IdentifyColumns([]string{"Acme Corp", "Mumbai", "9876543210"}); m != nil {
		t.Errorf("expected nil for a data row, got %v", m)
	}
}

func TestIdentifyColumns_DuplicateKeywordLastWins(t *testing.T) {
	m := IdentifyColumns([]string{"Phone", "Alt Phone"})
	if got := m[colPhone]; got != 1 {
		t.Errorf("expected the later column to win, got index %d", got)
	}
}

func TestIdentifyColumns_FirstKeywordClaimsCell(t *testing.T) {
	// "Lead Contact" matches both name ("lead") and phone ("contact");
	// the name entry comes first in priority order.
	m := IdentifyColumns([]string{"Lead Contact"})
	if got, ok := m[colName]; !ok || got != 0 {
		t.Errorf("expected name to claim the cell, got %v", m)
	}
	if _, ok := m[colPhone]; ok {
		t.Errorf("phone must not claim an already-matched cell, got %v", m)
	}
}

func TestSplitPastedRow(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"a\tb\tc", []string{"a", "b", "c"}},
		{"a, b, c", []string{"a", "b", "c"}},
		{`"x, y",z`, []string{"x, y", "z"}},
		{"single", []string{"single"}},
	}
	for _, tc := range tests {
		got := splitPastedRow(tc.line)
		if len(got) != len(tc.want) {
			t.Errorf("splitPastedRow(%q): got %v, want %v", tc.line, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("splitPastedRow(%q)[%d]: got %q, want %q", tc.line, i, got[i], tc.want[i])
			}
		}
	}
}

func TestClassifyCell(t *testing.T) {
	tests := []struct {
		cell string
		want CellTag
	}{
		{"info@supreme.com", TagEmail},
		{"www.supreme.com", TagSocialLink},
		{"instagram.com/supreme", TagSocialLink},
		{"098765 43210", TagPhone},
		{"+91-98765-43210", TagPhone},
		{"25/12/2024", TagDate},
		{"15-2024", TagUnclassified},
		{"Acme Corp", TagUnclassified},
		{"", TagUnclassified},
	}
	for _, tc := range tests {
		if got, _ := classifyCell(tc.cell); got != tc.want {
			t.Errorf("classifyCell(%q): got %v, want %v", tc.cell, got, tc.want)
		}
	}
}
