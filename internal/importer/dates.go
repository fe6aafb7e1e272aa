package importer

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const meetingLayout = "2006-01-02T15:04"

// Days between the spreadsheet epoch (1899-12-30) and the Unix epoch.
const serialUnixOffset = 25569

// dmyPattern captures DD[-/.]MM[-/.]YYYY with an optional
// HH:MM[:SS] [AM|PM] time part.
var dmyPattern = regexp.MustCompile(
	`^(\d{1,2})[-./](\d{1,2})[-./](\d{4})(?:\s+(\d{1,2})[:.](\d{2})(?:[:.](\d{2}))?\s*((?i:am|pm))?)?`)

var bareNumber = regexp.MustCompile(`^\d+(\.\d+)?$`)

// fallbackLayouts are tried last, covering ISO and common prose dates.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ParseImportDate turns a raw cell into a normalized YYYY-MM-DDTHH:MM
// meeting timestamp. It accepts a bare spreadsheet serial (only within
// the 30000–70000 band, so phone numbers never read as dates), a
// DD/MM/YYYY-style value with optional time (defaulting to 09:00), or
// a handful of generic date layouts. Returns ok=false for anything
// unparseable; that is not an error, the field is simply omitted.
func ParseImportDate(val string) (string, bool) {
	str := strings.TrimSpace(val)
	if str == "" {
		return "", false
	}

	// Spreadsheet serial, e.g. "45230". 30000 is ~1982, 70000 is ~2091.
	if bareNumber.MatchString(str) {
		num, err := strconv.ParseFloat(str, 64)
		if err == nil && num > 30000 && num < 70000 {
			secs := int64(math.Round((num - serialUnixOffset) * 86400))
			return time.Unix(secs, 0).Format(meetingLayout), true
		}
		return "", false
	}

	if m := dmyPattern.FindStringSubmatch(str); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])

		// Meetings without a time default to 09:00.
		hour := 9
		min := 0
		if m[4] != "" {
			hour, _ = strconv.Atoi(m[4])
			min, _ = strconv.Atoi(m[5])
		}
		switch strings.ToLower(m[7]) {
		case "pm":
			if hour < 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		}

		t := time.Date(year, time.Month(month), day, hour, min, 0, 0, time.Local)
		if t.Year() > 1900 && t.Year() < 2100 {
			return t.Format(meetingLayout), true
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			if t.Year() > 1900 && t.Year() < 2100 {
				return t.Format(meetingLayout), true
			}
		}
	}

	return "", false
}
