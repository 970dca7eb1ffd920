package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActivityRecord is one row of the collector activity log after ingestion.
// Date and FirstLoginTime carry validity flags because unparseable values are
// coerced rather than rejected.
type ActivityRecord struct {
	Date           time.Time
	HasDate        bool
	FirstLoginTime time.Time
	HasLoginTime   bool
	// LoginHasDate is false when the login cell held a bare clock time.
	LoginHasDate bool

	Collector       string
	Access          string
	RemarkBy        string
	RemarkType      string
	CallStatus      string
	Status          string
	PTPAmount       decimal.Decimal
	Balance         decimal.Decimal
	AccountNo       string
	TalkTimeSeconds float64
	Client          string
}

// LoginSummaryRow is the per-record punctuality view.
type LoginSummaryRow struct {
	LoginDate      string
	Collector      string
	Access         string
	FirstLoginTime string
	OnTimeStatus   string
}

// CollectorSummaryRow holds productivity metrics for one (day, collector, client) group.
type CollectorSummaryRow struct {
	Day                string
	Collector          string
	Client             string
	ManualAccounts     int
	TotalManualCalls   int
	PredictiveAccounts int
	PredictiveDial     int
	TotalConnected     int
	TotalPTP           int
	TotalRPC           int
	PTPAmount          decimal.Decimal
	BalanceAmount      decimal.Decimal
	TotalTalkTime      string
}

// CollectorSummary is the finished collector report: sorted group rows and
// the synthetic totals row that follows them.
type CollectorSummary struct {
	Rows   []CollectorSummaryRow
	Totals CollectorSummaryRow
	// DistinctCollectors is the value rendered in the totals row Collector field.
	DistinctCollectors int
}
