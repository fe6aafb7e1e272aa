package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseWorkbook parses the first sheet of an xlsx/xls workbook into a
// candidate batch. Cells are read raw, so date cells arrive as
// spreadsheet serial numbers and flow through the serial branch of the
// date parser.
func ParseWorkbook(path string, ctx Context) (Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Result{}, nil
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return Result{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	return mapRows(rows, ctx), nil
}

// ParseFile dispatches on the file extension: xlsx/xls workbooks are
// parsed natively, anything else is read as CSV text.
func ParseFile(path string, ctx Context) (Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return ParseWorkbook(path, ctx)
	default:
		f, err := os.Open(path)
		if err != nil {
			return Result{}, fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()
		return ParseCSV(f, ctx)
	}
}
