package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Table is a rectangular set of string cells with named columns. It is the
// shape handed in by file decoders and handed out to formatters.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Index returns the position of the named column, or -1. Surrounding
// whitespace in either name is ignored; case is not.
func (t *Table) Index(name string) int {
	name = strings.TrimSpace(name)
	for i, c := range t.Columns {
		if strings.TrimSpace(c) == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at row r, column c. Short rows read as empty.
func (t *Table) Cell(r, c int) string {
	if r < 0 || r >= len(t.Rows) || c < 0 || c >= len(t.Rows[r]) {
		return ""
	}
	return t.Rows[r][c]
}

// MarshalJSON encodes the table as an array of objects whose keys follow
// column order.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := range t.Rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for j, col := range t.Columns {
			if j > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(col)
			if err != nil {
				return nil, err
			}
			val, err := json.Marshal(t.Cell(i, j))
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
