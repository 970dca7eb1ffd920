// Package metrics provides Prometheus observability metrics for the activity log reporter.
// It includes Critical and Important metrics for business and operational visibility.
package metrics

import (
	"activity-log/ingest"
	"activity-log/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// =============================================================================
// CRITICAL METRICS - Business Impact Visibility
// =============================================================================

// LoginStatusRows tracks login summary rows by punctuality status.
var LoginStatusRows = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "report",
	Name:      "login_status_rows",
	Help:      "Login summary rows by punctuality status in the last run",
}, []string{"status"})

// PTPAmountTotal tracks the promised amount in the totals row.
var PTPAmountTotal = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "report",
	Name:      "ptp_amount",
	Help:      "Sum of PTP amounts across all collector groups in the last run",
})

// PTPAccountsTotal tracks the TotalPTP column of the totals row.
var PTPAccountsTotal = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "report",
	Name:      "ptp_accounts",
	Help:      "Distinct PTP accounts summed across collector groups in the last run",
})

// TalkTimeSecondsTotal tracks total talk time of the last run.
var TalkTimeSecondsTotal = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "report",
	Name:      "talk_time_seconds",
	Help:      "Total talk time across all collector groups in the last run",
})

// CollectorsTotal tracks distinct collectors in the last run.
var CollectorsTotal = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "report",
	Name:      "collectors",
	Help:      "Number of distinct collectors in the last collector report",
})

// =============================================================================
// IMPORTANT METRICS - Operational Health
// =============================================================================

// ParserErrorsTotal tracks input decoding errors by error type.
var ParserErrorsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "parser",
	Name:      "errors_total",
	Help:      "Total input decoding errors by error type",
}, []string{"error_type"})

// ParserRecordsTotal tracks total rows decoded.
var ParserRecordsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "parser",
	Name:      "records_total",
	Help:      "Total data rows decoded from input files",
})

// ParserDurationSeconds tracks time to decode input files.
var ParserDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "parser",
	Name:      "duration_seconds",
	Help:      "Time taken to decode the input file",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
})

// IngestDroppedTotal tracks rows dropped by the ingestor, by reason.
var IngestDroppedTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ingest",
	Name:      "dropped_total",
	Help:      "Rows dropped during ingestion by reason",
}, []string{"reason"})

// IngestCoercedTotal tracks cell values replaced with null or zero, by column.
var IngestCoercedTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ingest",
	Name:      "coerced_total",
	Help:      "Unparseable cell values coerced to null or zero by column",
}, []string{"column"})

// AggregationGroups tracks groups produced per aggregation run.
var AggregationGroups = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "aggregator",
	Name:      "groups",
	Help:      "Number of (day, collector, client) groups per aggregation run",
	Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
})

// AggregationDurationSeconds tracks time to build a report.
var AggregationDurationSeconds = factory.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "aggregator",
	Name:      "duration_seconds",
	Help:      "Time taken to build the report",
	Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
}, []string{"report"})

// =============================================================================
// Helper Functions
// =============================================================================

// ResetReportGauges resets all report gauges before a new run.
func ResetReportGauges() {
	PTPAmountTotal.Set(0)
	PTPAccountsTotal.Set(0)
	TalkTimeSecondsTotal.Set(0)
	CollectorsTotal.Set(0)
	LoginStatusRows.Reset()
}

// RecordIngest records drop and coercion counts of one ingestion pass.
func RecordIngest(res *ingest.Result) {
	IngestDroppedTotal.WithLabelValues("excluded_weekday").Add(float64(res.WeekdayDropped))
	IngestDroppedTotal.WithLabelValues("null_date").Add(float64(res.NullDateDropped))
	for col, n := range res.Coerced {
		IngestCoercedTotal.WithLabelValues(col).Add(float64(n))
	}
}

// RecordLogin records status counts of a login summary.
func RecordLogin(rows []models.LoginSummaryRow) {
	for _, r := range rows {
		LoginStatusRows.WithLabelValues(r.OnTimeStatus).Inc()
	}
}

// RecordCollector records the totals of a collector summary. talkSeconds is
// the totals row talk time already converted to seconds.
func RecordCollector(summary *models.CollectorSummary, talkSeconds int64) {
	AggregationGroups.Observe(float64(len(summary.Rows)))
	PTPAmountTotal.Set(summary.Totals.PTPAmount.InexactFloat64())
	PTPAccountsTotal.Set(float64(summary.Totals.TotalPTP))
	TalkTimeSecondsTotal.Set(float64(talkSeconds))
	CollectorsTotal.Set(float64(summary.DistinctCollectors))
}
