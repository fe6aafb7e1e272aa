// Package importer turns semi-structured tabular input (pasted text,
// CSV files, spreadsheets) into candidate lead batches ready for a
// store commit. Header keywords map columns when a header row exists;
// otherwise each cell is classified heuristically.
package importer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/raulo/crm/internal/model"
)

// Context carries where an import was triggered from: the target
// country, plus a forced city and/or category when the import started
// on a city or category folder.
type Context struct {
	Country        string
	ForcedCity     string
	ForcedCategory string
}

// Result is a parsed batch of candidate leads. A batch that produced
// zero valid rows is a detectable no-op, not a silent one.
type Result struct {
	Leads []model.Lead
}

// Empty reports whether the batch produced no usable rows.
func (r Result) Empty() bool {
	return len(r.Leads) == 0
}

// maxLineBytes bounds one input line. Pasted spreadsheet rows can blow
// past bufio's 64KB default, which would silently drop the rest of the
// batch.
const maxLineBytes = 4 * 1024 * 1024

// ParseText parses pasted delimited text (tab- or comma-separated,
// optionally quoted) into a candidate batch. Malformed rows are
// dropped, never fatal.
func ParseText(raw string, ctx Context) Result {
	var rows [][]string
	scanner := bufio.NewScanner(strings.NewReader(strings.TrimSpace(raw)))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, splitPastedRow(line))
	}
	return mapRows(rows, ctx)
}

// ParseCSV parses a CSV stream into a candidate batch.
func ParseCSV(r io.Reader, ctx Context) (Result, error) {
	var rows [][]string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rows = append(rows, parseLine(line, ','))
	}
	if err := scanner.Err(); err != nil {
		return Result{}, fmt.Errorf("read csv: %w", err)
	}
	return mapRows(rows, ctx), nil
}

// mapRows runs header detection on the first row and maps the rest.
func mapRows(rows [][]string, ctx Context) Result {
	if len(rows) == 0 {
		return Result{}
	}

	headers := IdentifyColumns(rows[0])
	start := 0
	if headers != nil {
		// The header row itself is never imported as data.
		start = 1
	}

	var leads []model.Lead
	for _, row := range rows[start:] {
		if isBlankRow(row) {
			continue
		}
		leads = append(leads, mapRow(row, headers, ctx))
	}
	return Result{Leads: leads}
}

// mapRow maps one data row to a candidate lead, either via the header
// column map or via per-cell heuristics.
func mapRow(row []string, headers map[string]int, ctx Context) model.Lead {
	if headers != nil {
		return mapHeaderRow(row, headers, ctx)
	}
	return mapHeuristicRow(row, ctx)
}

func mapHeaderRow(row []string, headers map[string]int, ctx Context) model.Lead {
	val := func(col string) string {
		idx, ok := headers[col]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	lead := model.Lead{
		Name:             val(colName),
		Phone:            val(colPhone),
		Email:            val(colEmail),
		City:             val(colCity),
		Category:         val(colCategory),
		Remarks:          val(colRemarks),
		SocialMediaLinks: []string{},
	}
	if lead.Name == "" {
		lead.Name = "Unknown"
	}
	if ctx.ForcedCity != "" {
		lead.City = ctx.ForcedCity
	}
	if ctx.ForcedCategory != "" {
		lead.Category = ctx.ForcedCategory
	}
	if social := val(colSocial); social != "" {
		lead.SocialMediaLinks = []string{social}
	}
	if status := val(colStatus); status != "" {
		lead.Status = model.LeadStatus(status)
	} else {
		lead.Status = model.LeadNew
	}
	if date, ok := ParseImportDate(val(colMeeting)); ok {
		lead.MeetingDate = date
	}
	return lead
}

func mapHeuristicRow(row []string, ctx Context) model.Lead {
	var email, social, phone, meetingDate string
	var remaining []string

	for _, cell := range row {
		str := strings.TrimSpace(cell)
		if str == "" {
			continue
		}

		tag, date := classifyCell(str)
		switch {
		case tag == TagEmail && email == "":
			email = str
		case tag == TagSocialLink && social == "":
			social = str
		case tag == TagPhone && phone == "":
			phone = str
		case tag == TagDate && meetingDate == "":
			meetingDate = date
		default:
			remaining = append(remaining, str)
		}
	}

	// Second pass: a loose digit run claims the phone if the strict
	// pattern found nothing.
	if phone == "" {
		for i, c := range remaining {
			if loosePhone.MatchString(c) {
				phone = c
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}

	// Remaining columns are positional: Name | City | Category | Remarks,
	// with forced context fields shifting the remarks start left.
	var name, city, category, remarks string
	if len(remaining) > 0 {
		name = remaining[0]
	}
	if len(remaining) > 1 && ctx.ForcedCity == "" {
		city = remaining[1]
	}
	if len(remaining) > 2 && ctx.ForcedCategory == "" {
		category = remaining[2]
	}

	remarkStart := 3
	if ctx.ForcedCity != "" {
		remarkStart--
	}
	if ctx.ForcedCategory != "" {
		remarkStart--
	}
	if len(remaining) > remarkStart {
		remarks = strings.Join(remaining[remarkStart:], " ")
	}

	if name == "" {
		name = "Unknown"
	}
	if ctx.ForcedCity != "" {
		city = ctx.ForcedCity
	}
	if ctx.ForcedCategory != "" {
		category = ctx.ForcedCategory
	}

	lead := model.Lead{
		Name:             name,
		Phone:            phone,
		Email:            email,
		City:             city,
		Category:         category,
		Remarks:          remarks,
		Status:           model.LeadNew,
		MeetingDate:      meetingDate,
		SocialMediaLinks: []string{},
	}
	if social != "" {
		lead.SocialMediaLinks = []string{social}
	}
	return lead
}
