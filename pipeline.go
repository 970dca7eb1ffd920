package main

import (
	"activity-log/aggregator"
	"activity-log/ingest"
	"activity-log/metrics"
	"activity-log/models"
	"activity-log/normalize"
	"activity-log/parser"
	"activity-log/punctuality"
	"activity-log/report"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// runConfig carries the validated settings of one report run.
type runConfig struct {
	Input      string
	Sheet      string
	Flow       ingest.Flow
	Ingest     ingest.Options
	Access     normalize.AccessFilter
	Aggregator aggregator.Options
}

// buildReport decodes the input file and produces the report table for the
// configured flow.
func buildReport(cfg runConfig, logger zerolog.Logger) (*models.Table, error) {
	parseStart := time.Now()
	table, err := parser.ParseFile(cfg.Input, cfg.Sheet)
	metrics.ParserDurationSeconds.Observe(time.Since(parseStart).Seconds())
	if err != nil {
		metrics.ParserErrorsTotal.WithLabelValues("decode").Inc()
		return nil, fmt.Errorf("error parsing file: %w", err)
	}
	metrics.ParserRecordsTotal.Add(float64(len(table.Rows)))

	return buildFromTable(table, cfg, logger)
}

// buildFromTable runs ingestion and the report for an already decoded table.
func buildFromTable(table *models.Table, cfg runConfig, logger zerolog.Logger) (*models.Table, error) {
	res, err := ingest.Ingest(table, cfg.Flow, cfg.Ingest, logger)
	if err != nil {
		metrics.ParserErrorsTotal.WithLabelValues("missing_column").Inc()
		return nil, err
	}
	metrics.RecordIngest(res)
	metrics.ResetReportGauges()

	start := time.Now()
	defer func() {
		metrics.AggregationDurationSeconds.WithLabelValues(cfg.Flow.String()).Observe(time.Since(start).Seconds())
	}()

	if cfg.Flow == ingest.Login {
		rows := punctuality.Summarize(res.Records, punctuality.Options{
			Schedule: punctuality.DefaultSchedule,
			Access:   cfg.Access,
		})
		metrics.RecordLogin(rows)
		logger.Info().Int("rows", len(rows)).Msg("login summary built")
		return report.Login(rows), nil
	}

	summary := aggregator.Summarize(res.Records, cfg.Aggregator)
	talk, err := aggregator.ParseHMS(summary.Totals.TotalTalkTime)
	if err != nil {
		return nil, err
	}
	metrics.RecordCollector(summary, talk)
	logger.Info().
		Int("groups", len(summary.Rows)).
		Int("collectors", summary.DistinctCollectors).
		Str("ptp_amount", summary.Totals.PTPAmount.StringFixed(2)).
		Str("talk_time", summary.Totals.TotalTalkTime).
		Msg("collector summary built")
	return report.Collector(summary), nil
}
