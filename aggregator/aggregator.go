// Package aggregator groups activity records by day, collector and client
// and derives the collector productivity metrics.
package aggregator

import (
	"activity-log/models"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// systemAgent marks automated remarks, which never count toward a collector.
const systemAgent = "SYSTEM"

// Options configures Aggregate.
type Options struct {
	// ExcludedAgents are Remark By values whose outgoing calls are not
	// counted in TotalManualCalls. Matching ignores case.
	ExcludedAgents []string
	// CaseSensitiveStatus makes PTP/RPC detection in Status match case.
	CaseSensitiveStatus bool
}

type groupKey struct {
	day      string
	remarkBy string
	client   string
}

type accumulator struct {
	key                groupKey
	manualAccounts     map[string]struct{}
	predictiveAccounts map[string]struct{}
	ptpAccounts        map[string]struct{}
	rpcAccounts        map[string]struct{}
	manualCalls        int
	predictiveDial     int
	connected          int
	ptpAmount          decimal.Decimal
	balance            decimal.Decimal
	talkSeconds        float64
}

func newAccumulator(key groupKey) *accumulator {
	return &accumulator{
		key:                key,
		manualAccounts:     make(map[string]struct{}),
		predictiveAccounts: make(map[string]struct{}),
		ptpAccounts:        make(map[string]struct{}),
		rpcAccounts:        make(map[string]struct{}),
		ptpAmount:          decimal.Zero,
		balance:            decimal.Zero,
	}
}

// Aggregate computes one CollectorSummaryRow per (day, Remark By, Client)
// group, in order of each group's first appearance. Records remarked by
// SYSTEM are skipped. Monetary values are not rounded here.
func Aggregate(records []models.ActivityRecord, opts Options) []models.CollectorSummaryRow {
	excluded := make(map[string]struct{}, len(opts.ExcludedAgents))
	for _, a := range opts.ExcludedAgents {
		excluded[strings.ToUpper(strings.TrimSpace(a))] = struct{}{}
	}
	statusHas := func(status, token string) bool {
		if opts.CaseSensitiveStatus {
			return strings.Contains(status, token)
		}
		return containsFold(status, token)
	}

	groups := make(map[groupKey]*accumulator)
	var order []*accumulator

	for _, rec := range records {
		if strings.EqualFold(strings.TrimSpace(rec.RemarkBy), systemAgent) {
			continue
		}

		key := groupKey{day: dayKey(rec), remarkBy: rec.RemarkBy, client: rec.Client}
		acc, ok := groups[key]
		if !ok {
			acc = newAccumulator(key)
			groups[key] = acc
			order = append(order, acc)
		}

		if strings.TrimSpace(rec.CallStatus) == "CONNECTED" {
			acc.connected++
		}

		if statusHas(rec.Status, "PTP") && !rec.PTPAmount.IsZero() {
			addAccount(acc.ptpAccounts, rec.AccountNo)
			acc.ptpAmount = acc.ptpAmount.Add(rec.PTPAmount)
			acc.balance = acc.balance.Add(rec.Balance)
		}
		if statusHas(rec.Status, "RPC") {
			addAccount(acc.rpcAccounts, rec.AccountNo)
		}

		if containsFold(rec.RemarkType, "OUTGOING") {
			addAccount(acc.manualAccounts, rec.AccountNo)
			if _, skip := excluded[strings.ToUpper(strings.TrimSpace(rec.RemarkBy))]; !skip {
				acc.manualCalls++
			}
		}
		if containsFold(rec.RemarkType, "FOLLOW UP") || containsFold(rec.RemarkType, "PREDICTIVE") {
			addAccount(acc.predictiveAccounts, rec.AccountNo)
			acc.predictiveDial++
		}

		acc.talkSeconds += rec.TalkTimeSeconds
	}

	rows := make([]models.CollectorSummaryRow, 0, len(order))
	for _, acc := range order {
		rows = append(rows, acc.row())
	}
	return rows
}

func (a *accumulator) row() models.CollectorSummaryRow {
	return models.CollectorSummaryRow{
		Day:                a.key.day,
		Collector:          a.key.remarkBy,
		Client:             a.key.client,
		ManualAccounts:     len(a.manualAccounts),
		TotalManualCalls:   a.manualCalls,
		PredictiveAccounts: len(a.predictiveAccounts),
		PredictiveDial:     a.predictiveDial,
		TotalConnected:     a.connected,
		TotalPTP:           len(a.ptpAccounts),
		TotalRPC:           len(a.rpcAccounts),
		PTPAmount:          a.ptpAmount,
		BalanceAmount:      a.balance,
		TotalTalkTime:      FormatHMS(int64(math.Floor(a.talkSeconds))),
	}
}

func dayKey(rec models.ActivityRecord) string {
	if !rec.HasDate {
		return ""
	}
	return rec.Date.Format(time.DateOnly)
}

// addAccount records a distinct account; blank account numbers are not counted.
func addAccount(set map[string]struct{}, account string) {
	account = strings.TrimSpace(account)
	if account == "" {
		return
	}
	set[account] = struct{}{}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToUpper(s), substr)
}
