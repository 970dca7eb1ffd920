package parser

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Layouts carrying a calendar date, tried in order.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04 PM",
	"1/2/2006",
}

// Layouts carrying only a clock time.
var clockLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04:05 PM",
	"3:04 PM",
}

// Excel day zero, accounting for the 1900 leap-year bug.
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// maxExcelSerial is 9999-12-31.
const maxExcelSerial = 2958465

// ParseDateTime coerces a spreadsheet cell into a time. hasDate reports
// whether the value carried a calendar date; a bare clock time is placed on
// year 0. ok is false when nothing could be parsed; it never returns an error.
func ParseDateTime(value string) (t time.Time, hasDate bool, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true, true
		}
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, false, true
		}
	}

	serial, err := strconv.ParseFloat(value, 64)
	if err != nil || serial < 0 || serial > maxExcelSerial || math.IsNaN(serial) {
		return time.Time{}, false, false
	}
	return fromExcelSerial(serial)
}

func fromExcelSerial(serial float64) (time.Time, bool, bool) {
	days := math.Floor(serial)
	secs := math.Round((serial - days) * 86400)
	if days == 0 {
		return time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(secs) * time.Second), false, true
	}
	t := excelEpoch.AddDate(0, 0, int(days)).Add(time.Duration(secs) * time.Second)
	return t, true, true
}
