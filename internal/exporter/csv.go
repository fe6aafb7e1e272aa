// Package exporter writes lead batches back out as CSV, the inverse of
// the import pipeline.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/raulo/crm/internal/model"
)

var header = []string{
	"Name", "Phone", "Email", "City", "Country", "Category",
	"Status", "Meeting Date", "Social Links", "Remarks",
}

// WriteCSV writes leads to w with a header row. Social links are
// joined with spaces so the row stays one cell per field.
func WriteCSV(w io.Writer, leads []model.Lead) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, l := range leads {
		record := []string{
			l.Name,
			l.Phone,
			l.Email,
			l.City,
			l.Country,
			l.Category,
			string(l.Status),
			l.MeetingDate,
			strings.Join(l.SocialMediaLinks, " "),
			l.Remarks,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write lead %s: %w", l.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
