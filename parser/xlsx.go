package parser

import (
	"activity-log/errors"
	"activity-log/models"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX decodes a workbook and returns the named sheet as a table.
// Cells are read raw, so date cells arrive as Excel serial numbers and are
// handled by ParseDateTime.
func ParseXLSX(r io.Reader, sheet string) (*models.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.ErrEmptyTable
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
	}
	return buildTable(rows)
}
