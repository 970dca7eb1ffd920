package main

import (
	"activity-log/aggregator"
	"activity-log/config"
	"activity-log/formatter"
	"activity-log/ingest"
	"activity-log/metrics"
	"activity-log/normalize"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Configure logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Define flags
	input := flag.String("input", "", "Input activity log, .csv or .xlsx (required)")
	sheet := flag.String("sheet", "", "Worksheet name for .xlsx input (default: first sheet)")
	reportKind := flag.String("report", cfg.Report, "Report to build: login|collector")
	format := flag.String("format", cfg.Format, "Output format: text|json|csv")
	output := flag.String("output", "", "Output file (default: stdout)")
	strict := flag.Bool("strict", cfg.StrictColumns, "Require exact column names")
	accessPolicy := flag.String("access-policy", cfg.AccessPolicy, "Access reporting policy: first-token|allow-list")
	excludeAgents := flag.String("exclude-agents", strings.Join(cfg.ExcludedAgents, ","), "Comma-separated Remark By values left out of manual call counts")
	nullDates := flag.String("null-dates", cfg.NullDatePolicy, "Rows with unparseable dates: exclude|keep")
	caseSensitive := flag.Bool("case-sensitive-status", cfg.CaseSensitiveStatus, "Match PTP/RPC in Status case-sensitively")
	metricsAddr := flag.String("metrics-addr", cfg.MetricsAddr, "Address to expose Prometheus metrics (e.g., :9090)")
	pushGateway := flag.String("push-url", cfg.PushGatewayURL, "Pushgateway URL to push metrics to (e.g., http://localhost:9091)")
	wait := flag.Bool("wait", false, "Keep process running after completion to allow for metric scraping")

	// Parse command-line flags
	flag.Parse()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("invalid log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	runID := uuid.New().String()
	logger := log.With().Str("run_id", runID).Logger()

	// Start metrics server if address provided
	if *metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
			logger.Info().Str("addr", *metricsAddr).Msg("metrics server listening")
			if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
				logger.Error().Err(err).Msg("metrics server error")
			}
		}()
	}

	// Validate required input flag
	if *input == "" {
		fmt.Println("Error: -input flag is required")
		fmt.Println("\nUsage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Validate format enum
	validFormats := map[string]bool{formatter.Text: true, formatter.JSON: true, formatter.CSV: true}
	if !validFormats[*format] {
		fmt.Printf("Error: format must be one of: text, json, csv (got: %s)\n", *format)
		os.Exit(1)
	}

	flow, err := ingest.ParseFlow(*reportKind)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid -report")
	}
	policy, err := normalize.ParseAccessPolicy(*accessPolicy)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid -access-policy")
	}
	nullPolicy, err := ingest.ParseNullDatePolicy(*nullDates)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid -null-dates")
	}

	ingestOpts := ingest.DefaultOptions()
	ingestOpts.Strict = *strict
	ingestOpts.NullDates = nullPolicy

	run := runConfig{
		Input:  *input,
		Sheet:  *sheet,
		Flow:   flow,
		Ingest: ingestOpts,
		Access: normalize.AccessFilter{Policy: policy, AllowList: cfg.AccessAllowList},
		Aggregator: aggregator.Options{
			ExcludedAgents:      config.SplitList(*excludeAgents, ","),
			CaseSensitiveStatus: *caseSensitive,
		},
	}

	logger.Info().
		Str("input", *input).
		Str("report", flow.String()).
		Str("format", *format).
		Str("access_policy", policy.String()).
		Str("null_dates", nullPolicy.String()).
		Msg("building report")

	table, err := buildReport(run, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build report")
	}

	rendered, err := formatter.Render(table, *format)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to render report")
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(rendered), 0o644); err != nil {
			logger.Fatal().Err(err).Str("output", *output).Msg("failed to write report")
		}
		logger.Info().Str("output", *output).Msg("report written")
	} else {
		fmt.Print(rendered)
	}

	// Handle metrics pushing or waiting
	if *pushGateway != "" {
		jobName := "activity_log"
		if err := push.New(*pushGateway, jobName).Grouping("run_id", runID).Gatherer(metrics.Registry).Push(); err != nil {
			logger.Error().Err(err).Msg("error pushing to Pushgateway")
		} else {
			logger.Info().Msg("metrics successfully pushed to Pushgateway")
		}
	}

	if *wait && *metricsAddr != "" {
		logger.Info().Msg("process kept alive for metric scraping, press Ctrl+C to exit")
		// Wait for interrupt signal
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logger.Info().Msg("exiting")
	} else if *metricsAddr != "" && *pushGateway == "" {
		// Small delay to allow final scrape if not waiting explicitly
		time.Sleep(100 * time.Millisecond)
	}
}
