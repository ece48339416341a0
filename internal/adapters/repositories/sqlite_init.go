package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite report export schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createShipmentsQuery := `
	CREATE TABLE IF NOT EXISTS shipment_summaries (
		shipment_id TEXT PRIMARY KEY,
		origin_country TEXT NOT NULL,
		destination_country TEXT NOT NULL,
		package_count INTEGER NOT NULL,
		total_weight TEXT NOT NULL,
		time_span_hours INTEGER NOT NULL,
		total_cost TEXT NOT NULL,
		currency TEXT NOT NULL,
		total_cost_reference TEXT NOT NULL,
		direction TEXT NOT NULL,
		period TEXT NOT NULL,
		run_id TEXT NOT NULL
	);
	`

	createMonthlyQuery := `
	CREATE TABLE IF NOT EXISTS monthly_traffic (
		period TEXT PRIMARY KEY,
		entering INTEGER NOT NULL,
		exiting INTEGER NOT NULL,
		run_id TEXT NOT NULL
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS route_queries (
		start_location TEXT NOT NULL,
		end_location TEXT NOT NULL,
		found INTEGER NOT NULL,
		path TEXT NOT NULL,
		run_id TEXT NOT NULL,
		PRIMARY KEY (start_location, end_location)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_shipment_summaries_period
	ON shipment_summaries(period, direction);
	`

	return execSchema(db, []string{
		createShipmentsQuery,
		createMonthlyQuery,
		createRoutesQuery,
		createIndexQuery,
	})
}

func execSchema(db *sql.DB, statements []string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
