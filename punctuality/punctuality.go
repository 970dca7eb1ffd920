// Package punctuality classifies first-login times against the two-shift
// schedule and builds the login summary.
package punctuality

import (
	"activity-log/models"
	"activity-log/normalize"
	"time"
)

// Status is the punctuality verdict for one login.
type Status string

const (
	OnTime  Status = "ON TIME"
	Late    Status = "LATE"
	Unknown Status = "UNKNOWN"
)

// Schedule holds the shift starts and the end of each grace window, as
// offsets from midnight.
type Schedule struct {
	FirstStart  time.Duration
	FirstGrace  time.Duration
	SecondStart time.Duration
	SecondGrace time.Duration
}

// DefaultSchedule is the 08:00 and 10:00 shift pair with 30 minutes of grace.
var DefaultSchedule = Schedule{
	FirstStart:  8 * time.Hour,
	FirstGrace:  8*time.Hour + 30*time.Minute,
	SecondStart: 10 * time.Hour,
	SecondGrace: 10*time.Hour + 30*time.Minute,
}

// Classify maps a time of day to a Status. Branches are evaluated in order
// and the first match wins; the gap between the first grace window and the
// second shift is Unknown.
func (s Schedule) Classify(tod time.Duration) Status {
	switch {
	case tod <= s.FirstStart:
		return OnTime
	case tod > s.FirstStart && tod <= s.FirstGrace:
		return Late
	case tod >= s.SecondStart && tod <= s.SecondGrace:
		return OnTime
	case tod > s.SecondGrace:
		return Late
	}
	return Unknown
}

// Classify uses DefaultSchedule.
func Classify(tod time.Duration) Status {
	return DefaultSchedule.Classify(tod)
}

// Options configures Summarize.
type Options struct {
	Schedule Schedule
	Access   normalize.AccessFilter
}

// Summarize builds one LoginSummaryRow per record kept by the access filter.
// Records without a parseable login time get an empty time and Unknown.
// A zero Schedule means DefaultSchedule.
func Summarize(records []models.ActivityRecord, opts Options) []models.LoginSummaryRow {
	schedule := opts.Schedule
	if schedule == (Schedule{}) {
		schedule = DefaultSchedule
	}

	rows := make([]models.LoginSummaryRow, 0, len(records))
	for _, rec := range records {
		access, keep := opts.Access.Apply(rec.Access)
		if !keep {
			continue
		}

		status := Unknown
		if rec.HasLoginTime {
			status = schedule.Classify(normalize.SinceMidnight(rec.FirstLoginTime))
		}

		rows = append(rows, models.LoginSummaryRow{
			LoginDate:      loginDate(rec),
			Collector:      normalize.GivenName(rec.Collector),
			Access:         access,
			FirstLoginTime: normalize.ClockString(rec.FirstLoginTime, rec.HasLoginTime),
			OnTimeStatus:   string(status),
		})
	}
	return rows
}

func loginDate(rec models.ActivityRecord) string {
	switch {
	case rec.HasLoginTime && rec.LoginHasDate:
		return rec.FirstLoginTime.Format(time.DateOnly)
	case rec.HasDate:
		return rec.Date.Format(time.DateOnly)
	}
	return ""
}
