package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shipment-report-service/internal/domain"
	"shipment-report-service/internal/platform/obs"
)

// Postgres-backed report export. Rows are upserted by key; rows of shipments
// absent from the latest run are removed.
type SQLReportRepository struct {
	DB *sql.DB
}

func NewSQLReportRepository(db *sql.DB) *SQLReportRepository {
	return &SQLReportRepository{DB: db}
}

func (s *SQLReportRepository) WriteReport(ctx context.Context, report *domain.Report) error {
	return s.SaveReport(ctx, report)
}

// Store the summaries, the monthly table and the route answers of a report.
func (s *SQLReportRepository) SaveReport(ctx context.Context, report *domain.Report) (err error) {
	defer obs.Time(ctx, "postgres.SaveReport")(&err)

	if s.DB == nil {
		return errors.New("sql report repository: db is nil")
	}
	if report == nil {
		return errors.New("save report: report is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save report: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	shipStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO shipment_summaries (
		shipment_id, origin_country, destination_country, package_count,
		total_weight, time_span_hours, total_cost, currency,
		total_cost_reference, direction, period, run_id
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (shipment_id) DO UPDATE
	SET origin_country = EXCLUDED.origin_country,
		destination_country = EXCLUDED.destination_country,
		package_count = EXCLUDED.package_count,
		total_weight = EXCLUDED.total_weight,
		time_span_hours = EXCLUDED.time_span_hours,
		total_cost = EXCLUDED.total_cost,
		currency = EXCLUDED.currency,
		total_cost_reference = EXCLUDED.total_cost_reference,
		direction = EXCLUDED.direction,
		period = EXCLUDED.period,
		run_id = EXCLUDED.run_id;
	`)
	if err != nil {
		return fmt.Errorf("save report: db prepare: %w", err)
	}
	defer shipStmt.Close()

	for _, sum := range report.Summaries {
		if _, err := shipStmt.ExecContext(ctx,
			sum.ShipmentID, sum.OriginCountry, sum.DestinationCountry, sum.PackageCount,
			sum.TotalWeight, sum.TimeSpanHours, sum.TotalCost, sum.Currency,
			sum.TotalCostInReference, string(sum.Direction), sum.Period, report.RunID,
		); err != nil {
			return fmt.Errorf("save report: insert shipment_id=%q: %w", sum.ShipmentID, err)
		}
	}

	for _, m := range report.Monthly {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO monthly_traffic (period, entering, exiting, run_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (period) DO UPDATE
		SET entering = EXCLUDED.entering,
			exiting = EXCLUDED.exiting,
			run_id = EXCLUDED.run_id;
		`, m.Period, m.Entering, m.Exiting, report.RunID); err != nil {
			return fmt.Errorf("save report: insert period=%q: %w", m.Period, err)
		}
	}

	for _, r := range report.Routes {
		path, err := encodePath(r.Path)
		if err != nil {
			return fmt.Errorf("save report: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO route_queries (start_location, end_location, found, path, run_id)
		VALUES ($1, $2, $3, $4::jsonb, $5)
		ON CONFLICT (start_location, end_location) DO UPDATE
		SET found = EXCLUDED.found,
			path = EXCLUDED.path,
			run_id = EXCLUDED.run_id;
		`, r.Start, r.End, r.Found, path, report.RunID); err != nil {
			return fmt.Errorf("save report: insert route %q -> %q: %w", r.Start, r.End, err)
		}
	}

	for _, table := range []string{"shipment_summaries", "monthly_traffic", "route_queries"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE run_id <> $1", report.RunID); err != nil {
			return fmt.Errorf("save report: prune %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save report: commit: %w", err)
	}

	return nil
}

// Return exported shipment summaries ordered by shipment id.
func (s *SQLReportRepository) ListShipmentSummaries(ctx context.Context) (_ []domain.ShipmentSummary, err error) {
	defer obs.Time(ctx, "postgres.ListShipmentSummaries")(&err)

	if s.DB == nil {
		return nil, errors.New("sql report repository: db is nil")
	}

	return querySummaries(ctx, s.DB, `
	SELECT shipment_id, origin_country, destination_country, package_count,
		total_weight, time_span_hours, total_cost, currency,
		total_cost_reference, direction, period
	FROM shipment_summaries
	ORDER BY shipment_id;
	`)
}

// Return the exported monthly table in period order.
func (s *SQLReportRepository) ListMonthlyTraffic(ctx context.Context) (_ []domain.PeriodTraffic, err error) {
	defer obs.Time(ctx, "postgres.ListMonthlyTraffic")(&err)

	if s.DB == nil {
		return nil, errors.New("sql report repository: db is nil")
	}

	return queryMonthly(ctx, s.DB, `
	SELECT period, entering, exiting
	FROM monthly_traffic
	ORDER BY period;
	`)
}

// Return the exported route answers ordered by start and end.
func (s *SQLReportRepository) ListRoutes(ctx context.Context) (_ []domain.Route, err error) {
	defer obs.Time(ctx, "postgres.ListRoutes")(&err)

	if s.DB == nil {
		return nil, errors.New("sql report repository: db is nil")
	}

	return queryRoutes(ctx, s.DB, `
	SELECT start_location, end_location, found, path::text
	FROM route_queries
	ORDER BY start_location, end_location;
	`)
}
