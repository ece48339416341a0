package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"shipment-report-service/internal/adapters/repositories"
	"shipment-report-service/internal/config"
	"shipment-report-service/internal/domain"
	"shipment-report-service/internal/platform/db"
	"shipment-report-service/internal/platform/logger"
)

type exportReader interface {
	ListMonthlyTraffic(ctx context.Context) ([]domain.PeriodTraffic, error)
	ListRoutes(ctx context.Context) ([]domain.Route, error)
}

// dbtool prepares the report export database, and can print what the last
// run exported.
func main() {
	log := logger.Get()
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found (using environment variables)")
	}

	sqlitePath := flag.String("sqlite", config.Get("REPORT_DB_PATH", ""), "SQLite export file (takes precedence over DATABASE_URL)")
	show := flag.Bool("show", false, "print the exported monthly table and routes")
	flag.Parse()

	conn, reader, err := open(*sqlitePath, config.Get("DATABASE_URL", ""))
	if err != nil {
		log.WithError(err).Fatal("open export database")
	}
	defer conn.Close()

	if *show {
		if err := printExport(context.Background(), reader, os.Stdout); err != nil {
			log.WithError(err).Fatal("show export")
		}
		return
	}
	log.Info("Schema ready.")
}

func open(sqlitePath, databaseURL string) (*sql.DB, exportReader, error) {
	log := logger.Get()

	if sqlitePath != "" {
		conn, err := db.OpenSqlite(sqlitePath)
		if err != nil {
			return nil, nil, err
		}
		log.WithFields(logger.Fields{"file": sqlitePath}).Info("Initializing sqlite schema...")
		if err := repositories.InitSchema(conn); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("schema initialization failed: %w", err)
		}
		return conn, repositories.NewSqliteReportRepository(conn), nil
	}

	if databaseURL == "" {
		return nil, nil, fmt.Errorf("either -sqlite/REPORT_DB_PATH or DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Initializing postgres schema...")
	if err := repositories.InitPostgresSchema(conn); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("schema initialization failed: %w", err)
	}
	return conn, repositories.NewSQLReportRepository(conn), nil
}

func printExport(ctx context.Context, r exportReader, w io.Writer) error {
	months, err := r.ListMonthlyTraffic(ctx)
	if err != nil {
		return err
	}
	for _, m := range months {
		fmt.Fprintf(w, "Month: %s, Inbound: %d, Outbound: %d\n", m.Period, m.Entering, m.Exiting)
	}

	routes, err := r.ListRoutes(ctx)
	if err != nil {
		return err
	}
	for _, rt := range routes {
		if rt.Found {
			fmt.Fprintf(w, "Route %s -> %s: %d hops\n", rt.Start, rt.End, rt.Hops())
		} else {
			fmt.Fprintf(w, "Route %s -> %s: not found\n", rt.Start, rt.End)
		}
	}
	return nil
}
