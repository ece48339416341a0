package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"shipment-report-service/internal/domain"
	"shipment-report-service/internal/platform/obs"
)

// SQLite-backed report export. Each SaveReport replaces the previous
// export, so the file always mirrors the latest run.
type SqliteReportRepository struct{ DB *sql.DB }

func NewSqliteReportRepository(db *sql.DB) *SqliteReportRepository {
	return &SqliteReportRepository{DB: db}
}

func (s *SqliteReportRepository) WriteReport(ctx context.Context, report *domain.Report) error {
	return s.SaveReport(ctx, report)
}

// Store the summaries, the monthly table and the route answers of a report.
func (s *SqliteReportRepository) SaveReport(ctx context.Context, report *domain.Report) (err error) {
	defer obs.Time(ctx, "sqlite.SaveReport")(&err)

	if s.DB == nil {
		return errors.New("sqlite report repository: DB is nil")
	}
	if report == nil {
		return errors.New("save report: report is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save report: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"shipment_summaries", "monthly_traffic", "route_queries"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("save report: clear %s: %w", table, err)
		}
	}

	shipStmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO shipment_summaries (
		shipment_id,
		origin_country,
		destination_country,
		package_count,
		total_weight,
		time_span_hours,
		total_cost,
		currency,
		total_cost_reference,
		direction,
		period,
		run_id
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("save report: prepare shipment insert: %w", err)
	}
	defer shipStmt.Close()

	for _, sum := range report.Summaries {
		if _, err := shipStmt.ExecContext(ctx,
			sum.ShipmentID,
			sum.OriginCountry,
			sum.DestinationCountry,
			sum.PackageCount,
			sum.TotalWeight.String(),
			sum.TimeSpanHours,
			sum.TotalCost.String(),
			sum.Currency,
			sum.TotalCostInReference.String(),
			string(sum.Direction),
			sum.Period,
			report.RunID,
		); err != nil {
			return fmt.Errorf("save report: insert shipment_id=%q: %w", sum.ShipmentID, err)
		}
	}

	for _, m := range report.Monthly {
		if _, err := tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO monthly_traffic (period, entering, exiting, run_id)
		VALUES (?, ?, ?, ?);
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
		INSERT OR REPLACE INTO route_queries (start_location, end_location, found, path, run_id)
		VALUES (?, ?, ?, ?, ?);
		`, r.Start, r.End, r.Found, path, report.RunID); err != nil {
			return fmt.Errorf("save report: insert route %q -> %q: %w", r.Start, r.End, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save report: commit tx: %w", err)
	}

	return nil
}

// Return exported shipment summaries ordered by shipment id.
func (s *SqliteReportRepository) ListShipmentSummaries(ctx context.Context) (_ []domain.ShipmentSummary, err error) {
	defer obs.Time(ctx, "sqlite.ListShipmentSummaries")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite report repository: DB is nil")
	}

	return querySummaries(ctx, s.DB, `
	SELECT
		shipment_id,
		origin_country,
		destination_country,
		package_count,
		total_weight,
		time_span_hours,
		total_cost,
		currency,
		total_cost_reference,
		direction,
		period
	FROM shipment_summaries
	ORDER BY shipment_id;
	`)
}

// Return the exported monthly table in period order.
func (s *SqliteReportRepository) ListMonthlyTraffic(ctx context.Context) (_ []domain.PeriodTraffic, err error) {
	defer obs.Time(ctx, "sqlite.ListMonthlyTraffic")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite report repository: DB is nil")
	}

	return queryMonthly(ctx, s.DB, `
	SELECT period, entering, exiting
	FROM monthly_traffic
	ORDER BY period;
	`)
}

// Return the exported route answers ordered by start and end.
func (s *SqliteReportRepository) ListRoutes(ctx context.Context) (_ []domain.Route, err error) {
	defer obs.Time(ctx, "sqlite.ListRoutes")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite report repository: DB is nil")
	}

	return queryRoutes(ctx, s.DB, `
	SELECT start_location, end_location, found, path
	FROM route_queries
	ORDER BY start_location, end_location;
	`)
}

func encodePath(path []string) (string, error) {
	if path == nil {
		path = []string{}
	}
	b, err := json.Marshal(path)
	if err != nil {
		return "", fmt.Errorf("encode path: %w", err)
	}
	return string(b), nil
}

func querySummaries(ctx context.Context, db *sql.DB, query string) ([]domain.ShipmentSummary, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list shipment summaries: query: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ShipmentSummary, 0, 64)
	for rows.Next() {
		var sum domain.ShipmentSummary
		var dir string
		if err := rows.Scan(
			&sum.ShipmentID,
			&sum.OriginCountry,
			&sum.DestinationCountry,
			&sum.PackageCount,
			&sum.TotalWeight,
			&sum.TimeSpanHours,
			&sum.TotalCost,
			&sum.Currency,
			&sum.TotalCostInReference,
			&dir,
			&sum.Period,
		); err != nil {
			return nil, fmt.Errorf("list shipment summaries: scan row: %w", err)
		}
		sum.Direction = domain.Direction(dir)
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list shipment summaries: row iteration: %w", err)
	}

	return out, nil
}

func queryMonthly(ctx context.Context, db *sql.DB, query string) ([]domain.PeriodTraffic, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list monthly traffic: query: %w", err)
	}
	defer rows.Close()

	var out []domain.PeriodTraffic
	for rows.Next() {
		var p domain.PeriodTraffic
		if err := rows.Scan(&p.Period, &p.Entering, &p.Exiting); err != nil {
			return nil, fmt.Errorf("list monthly traffic: scan row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list monthly traffic: row iteration: %w", err)
	}

	return out, nil
}

func queryRoutes(ctx context.Context, db *sql.DB, query string) ([]domain.Route, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list routes: query: %w", err)
	}
	defer rows.Close()

	var out []domain.Route
	for rows.Next() {
		var r domain.Route
		var path []byte
		if err := rows.Scan(&r.Start, &r.End, &r.Found, &path); err != nil {
			return nil, fmt.Errorf("list routes: scan row: %w", err)
		}
		if err := json.Unmarshal(path, &r.Path); err != nil {
			return nil, fmt.Errorf("list routes: decode path for %q -> %q: %w", r.Start, r.End, err)
		}
		if len(r.Path) == 0 {
			r.Path = nil
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return out, nil
}
