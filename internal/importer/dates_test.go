package importer

import (
	"strings"
	"testing"
)

func TestParseImportDate_SpreadsheetSerial(t *testing.T) {
	got, ok := ParseImportDate("45230")
	if !ok {
		t.Fatal("expected serial 45230 to parse")
	}
	// Exact hour depends on the local zone; the serial lands on
	// 2023-10-30/31 either way.
	if !strings.HasPrefix(got, "2023-10-3") {
		t.Errorf("expected a late-October 2023 date, got %q", got)
	}
}

func TestParseImportDate_SerialBand(t *testing.T) {
	// Bare numerics outside the plausible band are not dates.
	for _, v := range []string{"9876543210", "123", "29999", "70001", "0"} {
		if got, ok := ParseImportDate(v); ok {
			t.Errorf("ParseImportDate(%q): expected no date, got %q", v, got)
		}
	}
}

func TestParseImportDate_DMY(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"25/12/2024", "2024-12-25T09:00"},
		{"25-12-2024 14:30", "2024-12-25T14:30"},
		{"25.12.2024 2:30 PM", "2024-12-25T14:30"},
		{"5/1/2025 12:15 AM", "2025-01-05T00:15"},
		{"5/1/2025 12:15 PM", "2025-01-05T12:15"},
	}
	for _, tc := range tests {
		got, ok := ParseImportDate(tc.in)
		if !ok {
			t.Errorf("ParseImportDate(%q): expected ok", tc.in)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseImportDate(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseImportDate_FallbackLayouts(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-06-15", "2024-06-15T00:00"},
		{"2024-06-15 10:30", "2024-06-15T10:30"},
		{"January 5, 2024", "2024-01-05T00:00"},
	}
	for _, tc := range tests {
		got, ok := ParseImportDate(tc.in)
		if !ok {
			t.Errorf("ParseImportDate(%q): expected ok", tc.in)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseImportDate(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseImportDate_Garbage(t *testing.T) {
	for _, v := range []string{"", "   ", "call later", "not a date"} {
		if got, ok := ParseImportDate(v); ok {
			t.Errorf("ParseImportDate(%q): expected no date, got %q", v, got)
		}
	}
}
