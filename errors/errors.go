package errors

import (
	"fmt"
	"strings"
)

// ParseError wraps a specific error with context about where it occurred.
type ParseError struct {
	Line   int
	Record []string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %v (record: %v)", e.Line, e.Err, e.Record)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingColumnError reports a required column absent from the input table.
// Available lists the column names that were present, for diagnostics.
type MissingColumnError struct {
	Column    string
	Available []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column %q (available: %s)", e.Column, strings.Join(e.Available, ", "))
}

func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

// Define specific error types for better error handling
var (
	ErrMissingColumn         = fmt.Errorf("missing column")
	ErrEmptyTable            = fmt.Errorf("empty table")
	ErrUnsupportedFormat     = fmt.Errorf("unsupported input format")
	ErrInvalidHMS            = fmt.Errorf("invalid HH:MM:SS duration")
	ErrInvalidReport         = fmt.Errorf("invalid report kind")
	ErrInvalidFormat         = fmt.Errorf("invalid output format")
	ErrInvalidAccessPolicy   = fmt.Errorf("invalid access policy")
	ErrInvalidNullDatePolicy = fmt.Errorf("invalid null date policy")
)
