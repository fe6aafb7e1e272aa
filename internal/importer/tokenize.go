package importer

import "strings"

// parseLine splits one line on delim, honoring double-quote-enclosed
// fields: the in-quote flag toggles on every '"', the delimiter only
// splits outside quotes, and wrapping quotes are stripped from the
// resulting fields.
func parseLine(line string, delim rune) []string {
	var result []string
	var cur strings.Builder
	inQuote := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuote = !inQuote
		case ch == delim && !inQuote:
			result = append(result, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	result = append(result, strings.TrimSpace(cur.String()))

	for i, f := range result {
		result[i] = strings.TrimSpace(strings.Trim(f, `"`))
	}
	return result
}

// splitPastedRow tokenizes one pasted line: tab-separated normally,
// falling back to quote-aware comma splitting for single-column lines
// that contain commas.
func splitPastedRow(line string) []string {
	cols := strings.Split(line, "\t")
	if len(cols) < 2 && strings.Contains(line, ",") {
		return parseLine(line, ',')
	}
	for i, c := range cols {
		cols[i] = strings.TrimSpace(c)
	}
	return cols
}

// isBlankRow reports whether every cell in the row is empty.
func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
