package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"

	"shipment-report-service/internal/adapters/export"
	"shipment-report-service/internal/adapters/rates"
	"shipment-report-service/internal/adapters/records"
	"shipment-report-service/internal/adapters/repositories"
	"shipment-report-service/internal/adapters/sinks"
	"shipment-report-service/internal/config"
	"shipment-report-service/internal/platform/db"
	"shipment-report-service/internal/platform/logger"
	"shipment-report-service/internal/platform/metrics"
	"shipment-report-service/internal/platform/obs"
	"shipment-report-service/internal/ports"
	"shipment-report-service/internal/services"
)

type routeFlags []config.RouteQuery

func (r *routeFlags) String() string {
	parts := make([]string, 0, len(*r))
	for _, q := range *r {
		parts = append(parts, q.From+":"+q.To)
	}
	return strings.Join(parts, ";")
}

func (r *routeFlags) Set(v string) error {
	q, err := config.ParseRouteQuery(v)
	if err != nil {
		return err
	}
	*r = append(*r, q)
	return nil
}

// main is the application composition root.
// It wires the CSV source, the rate table and the report sinks, then runs
// one report pass.
func main() {
	log := logger.Get()
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	var routes routeFlags
	flag.StringVar(&cfg.DataDir, "dir", cfg.DataDir, "directory containing the *.csv input files")
	flag.StringVar(&cfg.HomeCountry, "home", cfg.HomeCountry, "country code the monthly table is reported for")
	flag.StringVar(&cfg.RatesPath, "rates", cfg.RatesPath, "optional YAML rate table")
	flag.StringVar(&cfg.ReportFormat, "format", cfg.ReportFormat, "report format: text or json")
	flag.Var(&routes, "route", "route query in From:To form (repeatable)")
	flag.Parse()
	if len(routes) > 0 {
		cfg.Routes = routes
	}

	if err := log.Configure(cfg.LogLevel, cfg.LogFormat, cfg.LogOutput, cfg.LogMaxAgeDays); err != nil {
		log.WithError(err).Fatal("configure logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, log, os.Stdout); err != nil {
		log.WithError(err).Error("report failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Log, out io.Writer) error {
	ctx, runID := obs.WithRunID(ctx)
	log.WithFields(logger.Fields{"run_id": runID, "dir": cfg.DataDir, "home": cfg.HomeCountry}).Info("report run started")

	table := rates.DefaultTable()
	if cfg.RatesPath != "" {
		t, err := rates.LoadTable(cfg.RatesPath)
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}
		table = t
	}

	reportSink, err := formatSink(cfg.ReportFormat, out)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	m := metrics.NewRegistry()
	queries := make([]services.RouteQuery, 0, len(cfg.Routes))
	for _, q := range cfg.Routes {
		queries = append(queries, services.RouteQuery{From: q.From, To: q.To})
	}

	report, err := services.BuildReport(
		ctx,
		services.BuildReportRequest{HomeCountry: cfg.HomeCountry, Routes: queries},
		records.NewCsvDirSource(cfg.DataDir, log),
		table,
		m,
	)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	exports, closeAll, err := exportSinks(cfg, log)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	defer closeAll()

	for _, s := range append([]ports.ReportSink{reportSink}, exports...) {
		if err := s.WriteReport(ctx, report); err != nil {
			return fmt.Errorf("run: %w", err)
		}
	}

	if cfg.MetricsTextfile != "" {
		if err := m.WriteTextfile(cfg.MetricsTextfile); err != nil {
			return fmt.Errorf("run: write metrics textfile: %w", err)
		}
	}

	log.WithFields(logger.Fields{
		"run_id":        runID,
		"shipments":     report.Stats.Shipments,
		"rows_read":     report.Stats.RowsRead,
		"rows_skipped":  report.Stats.RowsSkipped,
		"files_skipped": report.Stats.FilesSkipped,
		"conflicts":     report.Stats.MetadataConflicts,
	}).Info("report run finished")
	return nil
}

func formatSink(format string, out io.Writer) (ports.ReportSink, error) {
	switch format {
	case "text", "":
		return sinks.NewTextSink(out), nil
	case "json":
		return sinks.NewJSONSink(out), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// exportSinks opens the optional file and database exports. The returned
// func closes every database it opened.
func exportSinks(cfg *config.Config, log *logger.Log) (_ []ports.ReportSink, _ func(), err error) {
	var (
		out []ports.ReportSink
		dbs []*sql.DB
	)
	closeDBs := func() {
		for _, d := range dbs {
			_ = d.Close()
		}
	}
	defer func() {
		if err != nil {
			closeDBs()
		}
	}()

	if cfg.ReportDBPath != "" {
		conn, err := db.OpenSqlite(cfg.ReportDBPath)
		if err != nil {
			return nil, nil, err
		}
		dbs = append(dbs, conn)
		if err := repositories.InitSchema(conn); err != nil {
			return nil, nil, err
		}
		out = append(out, repositories.NewSqliteReportRepository(conn))
	}

	// The Postgres schema is created by cmd/dbtool.
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		dbs = append(dbs, conn)
		out = append(out, repositories.NewSQLReportRepository(conn))
	}

	if cfg.ParquetPath != "" {
		out = append(out, export.NewParquetSummaryExporter(cfg.ParquetPath, "snappy", log))
	}

	return out, closeDBs, nil
}
