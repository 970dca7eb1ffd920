package punctuality_test

import (
	"testing"
	"time"

	"activity-log/models"
	"activity-log/normalize"
	"activity-log/punctuality"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(h, m, s int) time.Duration {
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
}

func TestClassify(t *testing.T) {
	tests := map[string]struct {
		tod      time.Duration
		expected punctuality.Status
	}{
		"Midnight":          {tod: 0, expected: punctuality.OnTime},
		"EarlyMorning":      {tod: clock(7, 30, 0), expected: punctuality.OnTime},
		"FirstShiftStart":   {tod: clock(8, 0, 0), expected: punctuality.OnTime},
		"FirstShiftLate":    {tod: clock(8, 0, 1), expected: punctuality.Late},
		"FirstGraceEnd":     {tod: clock(8, 30, 0), expected: punctuality.Late},
		"AfterFirstGrace":   {tod: clock(8, 30, 1), expected: punctuality.Unknown},
		"BeforeSecondShift": {tod: clock(9, 59, 59), expected: punctuality.Unknown},
		"SecondShiftStart":  {tod: clock(10, 0, 0), expected: punctuality.OnTime},
		"SecondGraceEnd":    {tod: clock(10, 30, 0), expected: punctuality.OnTime},
		"SecondShiftLate":   {tod: clock(10, 30, 1), expected: punctuality.Late},
		"Evening":           {tod: clock(23, 59, 59), expected: punctuality.Late},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, punctuality.Classify(tt.tod))
		})
	}
}

func TestClassify_Total(t *testing.T) {
	valid := map[punctuality.Status]bool{punctuality.OnTime: true, punctuality.Late: true, punctuality.Unknown: true}
	for tod := time.Duration(0); tod < 24*time.Hour; tod += 17 * time.Second {
		assert.True(t, valid[punctuality.Classify(tod)], "unexpected status at %v", tod)
	}
}

func TestSchedule_Custom(t *testing.T) {
	s := punctuality.Schedule{
		FirstStart:  clock(9, 0, 0),
		FirstGrace:  clock(9, 15, 0),
		SecondStart: clock(13, 0, 0),
		SecondGrace: clock(13, 15, 0),
	}
	assert.Equal(t, punctuality.OnTime, s.Classify(clock(8, 30, 0)))
	assert.Equal(t, punctuality.Late, s.Classify(clock(9, 10, 0)))
	assert.Equal(t, punctuality.Unknown, s.Classify(clock(10, 0, 0)))
	assert.Equal(t, punctuality.OnTime, s.Classify(clock(13, 15, 0)))
}

func TestSummarize(t *testing.T) {
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	records := []models.ActivityRecord{
		{
			Date: day, HasDate: true,
			FirstLoginTime: time.Date(2024, 1, 3, 7, 55, 0, 0, time.UTC), HasLoginTime: true, LoginHasDate: true,
			Collector: "Jane Doe", Access: "Collector (All Accounts)",
		},
		{
			Date: day, HasDate: true,
			FirstLoginTime: time.Date(0, 1, 1, 10, 45, 0, 0, time.UTC), HasLoginTime: true,
			Collector: "John Roe", Access: "Collector",
		},
		{
			Date: day, HasDate: true,
			Collector: "Ann Poe", Access: "Supervisor",
		},
	}

	t.Run("FirstToken", func(t *testing.T) {
		rows := punctuality.Summarize(records, punctuality.Options{
			Schedule: punctuality.DefaultSchedule,
			Access:   normalize.AccessFilter{Policy: normalize.FirstToken},
		})
		require.Len(t, rows, 3)
		assert.Equal(t, models.LoginSummaryRow{
			LoginDate: "2024-01-03", Collector: "Jane", Access: "Collector",
			FirstLoginTime: "07:55:00", OnTimeStatus: "ON TIME",
		}, rows[0])
		assert.Equal(t, models.LoginSummaryRow{
			LoginDate: "2024-01-02", Collector: "John", Access: "Collector",
			FirstLoginTime: "10:45:00", OnTimeStatus: "LATE",
		}, rows[1])
		assert.Equal(t, models.LoginSummaryRow{
			LoginDate: "2024-01-02", Collector: "Ann", Access: "Supervisor",
			FirstLoginTime: "", OnTimeStatus: "UNKNOWN",
		}, rows[2])
	})

	t.Run("AllowList", func(t *testing.T) {
		rows := punctuality.Summarize(records, punctuality.Options{
			Access: normalize.AccessFilter{Policy: normalize.AllowList, AllowList: normalize.DefaultAllowList},
		})
		require.Len(t, rows, 2)
		assert.Equal(t, "Collector (All Accounts)", rows[0].Access)
		assert.Equal(t, "Collector", rows[1].Access)
	})
}
