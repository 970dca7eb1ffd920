package parser

import (
	"activity-log/errors"
	"activity-log/models"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const utf8BOM = "\ufeff"

// ParseFile opens path and decodes it according to its extension.
// sheet selects the worksheet for spreadsheet input; empty means the first one.
func ParseFile(path, sheet string) (*models.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ParseCSV(file)
	case ".xlsx", ".xlsm":
		return ParseXLSX(file, sheet)
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ParseCSV reads CSV data from the reader and returns it as a table.
// The first non-blank record is taken as the header row.
func ParseCSV(r io.Reader) (*models.Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var records [][]string
	lineNum := 0
	for {
		record, err := reader.Read()
		lineNum++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &errors.ParseError{
				Line:   lineNum,
				Record: record,
				Err:    err,
			}
		}
		records = append(records, record)
	}

	return buildTable(records)
}

// buildTable turns decoded rows into a table, padding short rows and
// skipping blank ones.
func buildTable(records [][]string) (*models.Table, error) {
	headerAt := -1
	for i, rec := range records {
		if !isBlank(rec) {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return nil, errors.ErrEmptyTable
	}

	header := make([]string, len(records[headerAt]))
	for i, h := range records[headerAt] {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		header[i] = strings.TrimSpace(h)
	}

	rows := make([][]string, 0, len(records)-headerAt-1)
	for _, rec := range records[headerAt+1:] {
		if isBlank(rec) {
			continue
		}
		row := make([]string, len(header))
		copy(row, rec)
		rows = append(rows, row)
	}

	return &models.Table{Columns: header, Rows: rows}, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
