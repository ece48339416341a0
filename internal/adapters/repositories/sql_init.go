package repositories

import (
	"database/sql"
	"errors"
)

// Initialize the Postgres report export schema.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	return execSchema(db, []string{
		`
	CREATE TABLE IF NOT EXISTS shipment_summaries (
		shipment_id TEXT PRIMARY KEY,
		origin_country TEXT NOT NULL,
		destination_country TEXT NOT NULL,
		package_count INTEGER NOT NULL,
		total_weight NUMERIC NOT NULL,
		time_span_hours BIGINT NOT NULL,
		total_cost NUMERIC NOT NULL,
		currency TEXT NOT NULL,
		total_cost_reference NUMERIC NOT NULL,
		direction TEXT NOT NULL,
		period TEXT NOT NULL,
		run_id TEXT NOT NULL
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS monthly_traffic (
		period TEXT PRIMARY KEY,
		entering INTEGER NOT NULL,
		exiting INTEGER NOT NULL,
		run_id TEXT NOT NULL
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS route_queries (
		start_location TEXT NOT NULL,
		end_location TEXT NOT NULL,
		found BOOLEAN NOT NULL,
		path JSONB NOT NULL,
		run_id TEXT NOT NULL,
		PRIMARY KEY (start_location, end_location)
	);
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_shipment_summaries_period
	ON shipment_summaries(period, direction);
	`,
	})
}
