package parser_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	customerrors "activity-log/errors"
	"activity-log/models"
	"activity-log/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	tests := map[string]struct {
		input         string
		expected      *models.Table
		expectedError error
	}{
		"ValidInput_HeaderAndRows": {
			input: `
Date, Collector, Access
2024-01-02, Jane Doe, Collector
2024-01-03, John Roe, Collector (All Accounts)
`,
			expected: &models.Table{
				Columns: []string{"Date", "Collector", "Access"},
				Rows: [][]string{
					{"2024-01-02", "Jane Doe", "Collector"},
					{"2024-01-03", "John Roe", "Collector (All Accounts)"},
				},
			},
		},
		"ShortRowsArePadded": {
			input: `
Date,Collector,Access
2024-01-02,Jane Doe
`,
			expected: &models.Table{
				Columns: []string{"Date", "Collector", "Access"},
				Rows:    [][]string{{"2024-01-02", "Jane Doe", ""}},
			},
		},
		"BlankRowsSkipped": {
			input: "\n,,\nDate,Client\n,\n2024-01-02,ACME\n",
			expected: &models.Table{
				Columns: []string{"Date", "Client"},
				Rows:    [][]string{{"2024-01-02", "ACME"}},
			},
		},
		"ByteOrderMarkStripped": {
			input: "\ufeffDate,Client\n2024-01-02,ACME\n",
			expected: &models.Table{
				Columns: []string{"Date", "Client"},
				Rows:    [][]string{{"2024-01-02", "ACME"}},
			},
		},
		"Error_Empty": {
			input:         "\n\n",
			expectedError: customerrors.ErrEmptyTable,
		},
		"Error_BadQuote": {
			input:         "Date,Client\n2024-01-02,\"ACME\n",
			expectedError: &customerrors.ParseError{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parser.ParseCSV(strings.NewReader(strings.TrimLeft(tt.input, " ")))

			if tt.expectedError != nil {
				var pe *customerrors.ParseError
				if errors.As(tt.expectedError, &pe) {
					assert.ErrorAs(t, err, &pe)
				} else {
					assert.ErrorIs(t, err, tt.expectedError)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Date", "Collector", "PTP Amount"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{45293.5, "Jane Doe", 500}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{45294, "John Roe"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	got, err := parser.ParseXLSX(bytes.NewReader(buf.Bytes()), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Collector", "PTP Amount"}, got.Columns)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "Jane Doe", got.Rows[0][1])
	assert.Equal(t, "500", got.Rows[0][2])
	assert.Equal(t, "", got.Rows[1][2])

	ts, hasDate, ok := parser.ParseDateTime(got.Rows[0][0])
	require.True(t, ok)
	assert.True(t, hasDate)
	assert.Equal(t, time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC), ts)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "activity.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Date,Client\n2024-01-02,ACME\n"), 0o644))
	got, err := parser.ParseFile(csvPath, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Client"}, got.Columns)

	txtPath := filepath.Join(dir, "activity.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("x"), 0o644))
	_, err = parser.ParseFile(txtPath, "")
	assert.ErrorIs(t, err, customerrors.ErrUnsupportedFormat)

	_, err = parser.ParseFile(filepath.Join(dir, "missing.csv"), "")
	assert.Error(t, err)
}

func TestParseDateTime(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected time.Time
		hasDate  bool
		ok       bool
	}{
		"ISODate": {
			input: "2024-01-02", expected: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), hasDate: true, ok: true,
		},
		"ISODateTime": {
			input: "2024-01-02 08:15:30", expected: time.Date(2024, 1, 2, 8, 15, 30, 0, time.UTC), hasDate: true, ok: true,
		},
		"ISODateTime_T": {
			input: "2024-01-02T10:00:00", expected: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), hasDate: true, ok: true,
		},
		"USDate12Hour": {
			input: "1/2/2024 3:04:05 PM", expected: time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC), hasDate: true, ok: true,
		},
		"ClockOnly": {
			input: "8:01:00", expected: time.Date(0, 1, 1, 8, 1, 0, 0, time.UTC), hasDate: false, ok: true,
		},
		"ExcelSerialDateTime": {
			input: "45293.5", expected: time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC), hasDate: true, ok: true,
		},
		"ExcelSerialClockOnly": {
			input: "0.25", expected: time.Date(0, 1, 1, 6, 0, 0, 0, time.UTC), hasDate: false, ok: true,
		},
		"Blank": {
			input: "  ", ok: false,
		},
		"Garbage": {
			input: "not a date", ok: false,
		},
		"NegativeSerial": {
			input: "-3", ok: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, hasDate, ok := parser.ParseDateTime(tt.input)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.hasDate, hasDate)
			assert.True(t, tt.expected.Equal(got), "got %v, want %v", got, tt.expected)
		})
	}
}
