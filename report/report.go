// Package report lays out finished summaries as tables in presentation order.
package report

import (
	"activity-log/models"
	"strconv"
)

// LoginColumns is the column order of the login punctuality report.
var LoginColumns = []string{
	"Login Date", "Collector", "Access", "First Login Time", "On Time or Late",
}

// CollectorColumns is the column order of the collector productivity report.
var CollectorColumns = []string{
	"Day", "Collector", "Client",
	"Manual Accounts", "Total Manual Calls",
	"Predictive Accounts", "Predictive Dial",
	"Total Connected", "Total PTP", "Total RPC",
	"PTP Amount", "Balance Amount", "Total Talk Time",
}

// Login converts login summary rows into a table.
func Login(rows []models.LoginSummaryRow) *models.Table {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{r.LoginDate, r.Collector, r.Access, r.FirstLoginTime, r.OnTimeStatus}
	}
	return &models.Table{Columns: LoginColumns, Rows: out}
}

// Collector converts a collector summary into a table with the totals row last.
func Collector(summary *models.CollectorSummary) *models.Table {
	out := make([][]string, 0, len(summary.Rows)+1)
	for _, r := range summary.Rows {
		out = append(out, collectorCells(r))
	}
	out = append(out, collectorCells(summary.Totals))
	return &models.Table{Columns: CollectorColumns, Rows: out}
}

func collectorCells(r models.CollectorSummaryRow) []string {
	return []string{
		r.Day,
		r.Collector,
		r.Client,
		strconv.Itoa(r.ManualAccounts),
		strconv.Itoa(r.TotalManualCalls),
		strconv.Itoa(r.PredictiveAccounts),
		strconv.Itoa(r.PredictiveDial),
		strconv.Itoa(r.TotalConnected),
		strconv.Itoa(r.TotalPTP),
		strconv.Itoa(r.TotalRPC),
		r.PTPAmount.StringFixed(2),
		r.BalanceAmount.StringFixed(2),
		r.TotalTalkTime,
	}
}
