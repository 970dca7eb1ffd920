// Package ingest validates a decoded activity table and converts its rows
// into typed records, dropping rows that fall outside the reporting window.
package ingest

import (
	"activity-log/errors"
	"activity-log/models"
	"activity-log/parser"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Column names of the activity log export.
const (
	ColDate             = "Date"
	ColFirstLoginTime   = "First Login Time"
	ColCollector        = "Collector"
	ColAccess           = "Access"
	ColRemarkBy         = "Remark By"
	ColStatus           = "Status"
	ColCallStatus       = "Call Status"
	ColAccountNo        = "Account No."
	ColPTPAmount        = "PTP Amount"
	ColBalance          = "Balance"
	ColRemarkType       = "Remark Type"
	ColTalkTimeDuration = "Talk Time Duration"
	ColClient           = "Client"
)

// Flow identifies which report the records are ingested for.
type Flow int

const (
	Login Flow = iota
	Collector
)

func (f Flow) String() string {
	if f == Login {
		return "login"
	}
	return "collector"
}

// ParseFlow maps a report name to a Flow.
func ParseFlow(s string) (Flow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "login":
		return Login, nil
	case "collector":
		return Collector, nil
	default:
		return Collector, fmt.Errorf("%w: %s", errors.ErrInvalidReport, s)
	}
}

// RequiredColumns lists the columns each flow needs, in check order.
func RequiredColumns(f Flow) []string {
	if f == Login {
		return []string{ColDate, ColFirstLoginTime, ColCollector, ColAccess}
	}
	return []string{
		ColDate, ColRemarkBy, ColStatus, ColCallStatus, ColAccountNo,
		ColPTPAmount, ColBalance, ColRemarkType, ColTalkTimeDuration, ColClient,
	}
}

// NullDatePolicy decides what happens to records whose Date cannot be parsed.
type NullDatePolicy int

const (
	// ExcludeNullDates drops them and reports the count.
	ExcludeNullDates NullDatePolicy = iota
	// KeepNullDates retains them; they never match the excluded weekday.
	KeepNullDates
)

func (p NullDatePolicy) String() string {
	if p == KeepNullDates {
		return "keep"
	}
	return "exclude"
}

// ParseNullDatePolicy maps a flag value to a NullDatePolicy.
func ParseNullDatePolicy(s string) (NullDatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "exclude":
		return ExcludeNullDates, nil
	case "keep":
		return KeepNullDates, nil
	default:
		return ExcludeNullDates, fmt.Errorf("%w: %s", errors.ErrInvalidNullDatePolicy, s)
	}
}

// Options configures Ingest.
type Options struct {
	// Strict requires header names to match exactly. When false, headers are
	// matched ignoring case, spacing and punctuation.
	Strict          bool
	NullDates       NullDatePolicy
	ExcludedWeekday time.Weekday
}

// DefaultOptions returns strict matching, null-date exclusion and Sunday as
// the excluded weekday.
func DefaultOptions() Options {
	return Options{
		Strict:          true,
		NullDates:       ExcludeNullDates,
		ExcludedWeekday: time.Sunday,
	}
}

// Result is the outcome of one ingestion pass.
type Result struct {
	Records []models.ActivityRecord
	// Total is the number of data rows in the input table.
	Total           int
	WeekdayDropped  int
	NullDateDropped int
	// Coerced counts non-blank values per column that failed to parse and
	// were replaced with a null or zero.
	Coerced map[string]int
}

// Ingest checks that table carries the columns flow needs and converts its
// rows into records. A missing column fails the whole call with a
// *errors.MissingColumnError; bad cell values never do. table is not modified.
func Ingest(table *models.Table, flow Flow, opts Options, logger zerolog.Logger) (*Result, error) {
	logger.Debug().
		Str("flow", flow.String()).
		Strs("columns", table.Columns).
		Bool("strict", opts.Strict).
		Msg("ingesting activity table")

	cols, err := resolveColumns(table, RequiredColumns(flow), opts.Strict)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Records: make([]models.ActivityRecord, 0, len(table.Rows)),
		Total:   len(table.Rows),
		Coerced: make(map[string]int),
	}

	for i := range table.Rows {
		cell := func(name string) string {
			return strings.TrimSpace(table.Cell(i, cols[name]))
		}

		rec := models.ActivityRecord{}
		rec.Date, rec.HasDate = parseDate(cell(ColDate), ColDate, res)

		if !rec.HasDate {
			if opts.NullDates == ExcludeNullDates {
				res.NullDateDropped++
				continue
			}
		} else if rec.Date.Weekday() == opts.ExcludedWeekday {
			res.WeekdayDropped++
			continue
		}

		if flow == Login {
			fillLogin(&rec, cell, res)
		} else {
			fillCollector(&rec, cell, res)
		}
		res.Records = append(res.Records, rec)
	}

	logger.Info().
		Str("flow", flow.String()).
		Int("rows", res.Total).
		Int("kept", len(res.Records)).
		Int("weekday_dropped", res.WeekdayDropped).
		Int("null_date_dropped", res.NullDateDropped).
		Interface("coerced", res.Coerced).
		Msg("ingestion complete")

	return res, nil
}

func fillLogin(rec *models.ActivityRecord, cell func(string) string, res *Result) {
	raw := cell(ColFirstLoginTime)
	t, hasDate, ok := parser.ParseDateTime(raw)
	if !ok && raw != "" {
		res.Coerced[ColFirstLoginTime]++
	}
	rec.FirstLoginTime = t
	rec.HasLoginTime = ok
	rec.LoginHasDate = hasDate
	rec.Collector = cell(ColCollector)
	rec.Access = cell(ColAccess)
}

func fillCollector(rec *models.ActivityRecord, cell func(string) string, res *Result) {
	rec.RemarkBy = cell(ColRemarkBy)
	rec.Status = cell(ColStatus)
	rec.CallStatus = cell(ColCallStatus)
	rec.AccountNo = cell(ColAccountNo)
	rec.RemarkType = cell(ColRemarkType)
	rec.Client = cell(ColClient)
	rec.PTPAmount = parseDecimal(cell(ColPTPAmount), ColPTPAmount, res)
	rec.Balance = parseDecimal(cell(ColBalance), ColBalance, res)
	rec.TalkTimeSeconds = parseSeconds(cell(ColTalkTimeDuration), ColTalkTimeDuration, res)
}

func parseDate(raw, col string, res *Result) (time.Time, bool) {
	t, _, ok := parser.ParseDateTime(raw)
	if !ok {
		if raw != "" {
			res.Coerced[col]++
		}
		return time.Time{}, false
	}
	return t, true
}

func parseDecimal(raw, col string, res *Result) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		res.Coerced[col]++
		return decimal.Zero
	}
	return d
}

func parseSeconds(raw, col string, res *Result) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		res.Coerced[col]++
		return 0
	}
	return v
}
