package formatter

import (
	"activity-log/errors"
	"activity-log/models"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Format names accepted by Render.
const (
	Text = "text"
	JSON = "json"
	CSV  = "csv"
)

// Render dispatches to the formatter for format.
func Render(table *models.Table, format string) (string, error) {
	switch format {
	case JSON:
		return FormatJSON(table), nil
	case CSV:
		return FormatCSV(table), nil
	case Text:
		return FormatText(table), nil
	default:
		return "", fmt.Errorf("%w: %s", errors.ErrInvalidFormat, format)
	}
}

// FormatText returns the table as aligned columns separated by " | ".
func FormatText(table *models.Table) string {
	widths := columnWidths(table)
	var sb strings.Builder

	writeTextLine(&sb, table.Columns, widths)
	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	writeTextLine(&sb, seps, widths)

	for i := range table.Rows {
		cells := make([]string, len(table.Columns))
		for j := range table.Columns {
			cells[j] = table.Cell(i, j)
		}
		writeTextLine(&sb, cells, widths)
	}

	return sb.String()
}

// FormatJSON returns the table as an indented array of objects.
func FormatJSON(table *models.Table) string {
	jsonBytes, _ := json.MarshalIndent(table, "", "  ")
	return string(jsonBytes) + "\n"
}

// FormatCSV returns the table as CSV with a header row.
func FormatCSV(table *models.Table) string {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	writer.Write(table.Columns)
	for i := range table.Rows {
		row := make([]string, len(table.Columns))
		for j := range table.Columns {
			row[j] = table.Cell(i, j)
		}
		writer.Write(row)
	}

	writer.Flush()
	return sb.String()
}

// columnWidths returns the display width of each column
func columnWidths(table *models.Table) []int {
	widths := make([]int, len(table.Columns))
	for j, c := range table.Columns {
		widths[j] = utf8.RuneCountInString(c)
		for i := range table.Rows {
			if w := utf8.RuneCountInString(table.Cell(i, j)); w > widths[j] {
				widths[j] = w
			}
		}
	}
	return widths
}

// writeTextLine pads each cell to its column width
func writeTextLine(sb *strings.Builder, cells []string, widths []int) {
	for j, cell := range cells {
		if j > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(cell)
		if j < len(cells)-1 {
			sb.WriteString(strings.Repeat(" ", widths[j]-utf8.RuneCountInString(cell)))
		}
	}
	sb.WriteString("\n")
}
