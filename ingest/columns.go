package ingest

import (
	"activity-log/errors"
	"activity-log/models"
	"strings"
	"unicode"
)

// resolveColumns maps each required name to its index in table. Strict
// lookups go through Table.Index; lenient ones compare normalized headers.
func resolveColumns(table *models.Table, required []string, strict bool) (map[string]int, error) {
	lookup := table.Index
	if !strict {
		index := make(map[string]int, len(table.Columns))
		for i, c := range table.Columns {
			key := normalizedHeader(c)
			if _, seen := index[key]; !seen {
				index[key] = i
			}
		}
		lookup = func(name string) int {
			if i, ok := index[normalizedHeader(name)]; ok {
				return i
			}
			return -1
		}
	}

	cols := make(map[string]int, len(required))
	for _, name := range required {
		i := lookup(name)
		if i < 0 {
			return nil, &errors.MissingColumnError{
				Column:    name,
				Available: append([]string(nil), table.Columns...),
			}
		}
		cols[name] = i
	}
	return cols, nil
}

// normalizedHeader lowercases name and drops everything but letters and digits.
func normalizedHeader(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
