package aggregator

import (
	"activity-log/models"
	"sort"
	"strconv"
)

// TotalsDay labels the synthetic totals row.
const TotalsDay = "Total"

const moneyPlaces = 2

// Summarize aggregates records and finishes the report: group rows sorted by
// TotalPTP descending (stable), money rounded to cents, and a totals row.
func Summarize(records []models.ActivityRecord, opts Options) *models.CollectorSummary {
	return Finalize(Aggregate(records, opts))
}

// Finalize sorts and rounds rows in place and appends the totals.
// Rows are rounded before they are summed so the totals row always equals
// the sum of the rows it follows.
func Finalize(rows []models.CollectorSummaryRow) *models.CollectorSummary {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalPTP > rows[j].TotalPTP
	})
	for i := range rows {
		rows[i].PTPAmount = rows[i].PTPAmount.Round(moneyPlaces)
		rows[i].BalanceAmount = rows[i].BalanceAmount.Round(moneyPlaces)
	}

	totals, distinct := Totals(rows)
	totals.PTPAmount = totals.PTPAmount.Round(moneyPlaces)
	totals.BalanceAmount = totals.BalanceAmount.Round(moneyPlaces)

	return &models.CollectorSummary{
		Rows:               rows,
		Totals:             totals,
		DistinctCollectors: distinct,
	}
}

// Totals reduces group rows into the totals row. Its Collector field holds
// the number of distinct collectors rather than a name, which is also
// returned. Talk times are summed as seconds; unparseable ones count as zero.
func Totals(rows []models.CollectorSummaryRow) (models.CollectorSummaryRow, int) {
	totals := models.CollectorSummaryRow{Day: TotalsDay}
	collectors := make(map[string]struct{})
	var talk int64

	for _, r := range rows {
		collectors[r.Collector] = struct{}{}
		totals.ManualAccounts += r.ManualAccounts
		totals.TotalManualCalls += r.TotalManualCalls
		totals.PredictiveAccounts += r.PredictiveAccounts
		totals.PredictiveDial += r.PredictiveDial
		totals.TotalConnected += r.TotalConnected
		totals.TotalPTP += r.TotalPTP
		totals.TotalRPC += r.TotalRPC
		totals.PTPAmount = totals.PTPAmount.Add(r.PTPAmount)
		totals.BalanceAmount = totals.BalanceAmount.Add(r.BalanceAmount)
		if secs, err := ParseHMS(r.TotalTalkTime); err == nil {
			talk += secs
		}
	}

	totals.Collector = strconv.Itoa(len(collectors))
	totals.TotalTalkTime = FormatHMS(talk)
	return totals, len(collectors)
}
