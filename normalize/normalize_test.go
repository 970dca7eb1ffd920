package normalize_test

import (
	"testing"
	"time"

	customerrors "activity-log/errors"
	"activity-log/normalize"

	"github.com/stretchr/testify/assert"
)

func TestGivenName(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected string
	}{
		"FullName":         {input: "Jane Doe", expected: "Jane"},
		"SingleToken":      {input: "Jane", expected: "Jane"},
		"LeadingSpace":     {input: "  Jane Doe", expected: "Jane"},
		"TabSeparated":     {input: "Jane\tDoe", expected: "Jane"},
		"Empty":            {input: "", expected: ""},
		"OnlyWhitespace":   {input: "   ", expected: ""},
		"AccessDescriptor": {input: "Collector (All Accounts)", expected: "Collector"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalize.GivenName(tt.input))
			assert.Equal(t, tt.expected, normalize.AccessCode(tt.input))
		})
	}
}

func TestClockString(t *testing.T) {
	ts := time.Date(2024, 1, 2, 7, 5, 9, 0, time.UTC)
	assert.Equal(t, "07:05:09", normalize.ClockString(ts, true))
	assert.Equal(t, "", normalize.ClockString(ts, false))
	assert.Equal(t, 7*time.Hour+5*time.Minute+9*time.Second, normalize.SinceMidnight(ts))
}

func TestAccessFilter(t *testing.T) {
	firstToken := normalize.AccessFilter{Policy: normalize.FirstToken}
	allowList := normalize.AccessFilter{Policy: normalize.AllowList, AllowList: normalize.DefaultAllowList}

	tests := map[string]struct {
		filter   normalize.AccessFilter
		input    string
		expected string
		keep     bool
	}{
		"FirstToken_Descriptor": {filter: firstToken, input: "Collector (All Accounts)", expected: "Collector", keep: true},
		"FirstToken_Unlisted":   {filter: firstToken, input: "Supervisor", expected: "Supervisor", keep: true},
		"FirstToken_Empty":      {filter: firstToken, input: "", expected: "", keep: true},
		"AllowList_Exact":       {filter: allowList, input: "Collector (All Accounts No SMS and Email)", expected: "Collector (All Accounts No SMS and Email)", keep: true},
		"AllowList_Trimmed":     {filter: allowList, input: " Collector ", expected: "Collector", keep: true},
		"AllowList_Rejected":    {filter: allowList, input: "Supervisor", keep: false},
		"AllowList_CaseMatters": {filter: allowList, input: "collector", keep: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, keep := tt.filter.Apply(tt.input)
			assert.Equal(t, tt.keep, keep)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseAccessPolicy(t *testing.T) {
	p, err := normalize.ParseAccessPolicy("allow-list")
	assert.NoError(t, err)
	assert.Equal(t, normalize.AllowList, p)

	p, err = normalize.ParseAccessPolicy("")
	assert.NoError(t, err)
	assert.Equal(t, normalize.FirstToken, p)

	_, err = normalize.ParseAccessPolicy("everything")
	assert.ErrorIs(t, err, customerrors.ErrInvalidAccessPolicy)
}
