package importer

import (
	"regexp"
	"strings"
)

// CellTag labels what a heuristically classified cell holds.
type CellTag int

const (
	TagUnclassified CellTag = iota
	TagEmail
	TagSocialLink
	TagPhone
	TagDate
)

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	socialPrefix = regexp.MustCompile(`(?i)^(http|www|instagram|facebook|linkedin)`)
	phonePattern = regexp.MustCompile(`^[\d+\-() ]{7,}$`)
	loosePhone   = regexp.MustCompile(`\d{5,}`)
)

// classifyCell tags one cell, trying each classifier in strict priority
// order: email, social link, phone, date. The column-position
// assignment downstream depends on this exact order. For a date, the
// normalized timestamp is returned alongside the tag.
func classifyCell(cell string) (CellTag, string) {
	str := strings.TrimSpace(cell)
	if str == "" {
		return TagUnclassified, ""
	}

	if emailPattern.MatchString(str) {
		return TagEmail, ""
	}

	if socialPrefix.MatchString(str) {
		return TagSocialLink, ""
	}

	// Phone-like runs of digits and separators, excluding values that
	// look like dates ("15/2024") or carry a time separator.
	if phonePattern.MatchString(str) &&
		!strings.Contains(str, "/20") &&
		!strings.Contains(str, "-20") &&
		!strings.Contains(str, ":") {
		return TagPhone, ""
	}

	if date, ok := ParseImportDate(str); ok {
		return TagDate, date
	}

	return TagUnclassified, ""
}
