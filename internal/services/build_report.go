package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shipment-report-service/internal/domain"
	"shipment-report-service/internal/platform/metrics"
	"shipment-report-service/internal/platform/obs"
	"shipment-report-service/internal/ports"
)

type RouteQuery struct {
	From string
	To   string
}

type BuildReportRequest struct {
	HomeCountry string
	Routes      []RouteQuery
}

// Now is swapped by tests.
var Now = func() time.Time { return time.Now().UTC() }

// BuildReport runs one full pass: ingest every record, summarize the
// shipment groups, and answer the route queries against the final graph.
// Metrics may be nil.
func BuildReport(
	ctx context.Context,
	req BuildReportRequest,
	source ports.RecordSource,
	rates ports.CurrencyRates,
	m *metrics.Registry,
) (_ *domain.Report, err error) {
	defer obs.Time(ctx, "report.Build")(&err)

	home := strings.TrimSpace(req.HomeCountry)
	if home == "" {
		return nil, errors.New("build report: home country must be non-empty")
	}
	if source == nil || rates == nil {
		return nil, errors.New("build report: record source and rates must be non-nil")
	}

	agg := NewAggregator()
	ingest, err := source.Records(ctx, agg.Ingest)
	if err != nil {
		return nil, fmt.Errorf("build report: ingest records: %w", err)
	}
	m.ObserveIngest(ingest.FilesRead, ingest.FilesSkipped, ingest.RowsRead, ingest.RowsSkipped)

	summaries, monthly := Summarize(agg.Groups(), rates, home)
	months := monthly.Sorted()
	for _, p := range months {
		m.ObserveMonth(p.Period, p.Entering, p.Exiting)
	}

	graph := agg.Graph()
	m.ObserveGraph(len(summaries), graph.NodeCount())

	routes := make([]domain.Route, 0, len(req.Routes))
	for _, q := range req.Routes {
		r := FindRoute(graph, q.From, q.To)
		m.ObserveRoute(r.Found)
		routes = append(routes, r)
	}

	return &domain.Report{
		RunID:             obs.RunID(ctx),
		GeneratedAt:       Now(),
		HomeCountry:       home,
		ReferenceCurrency: rates.ReferenceCurrency(),
		Summaries:         summaries,
		Monthly:           months,
		Routes:            routes,
		Stats: domain.RunStats{
			FilesRead:            ingest.FilesRead,
			FilesSkipped:         ingest.FilesSkipped,
			RowsRead:             ingest.RowsRead,
			RowsSkipped:          ingest.RowsSkipped,
			Shipments:            len(summaries),
			MetadataConflicts:    agg.MetadataConflicts(),
			Locations:            graph.NodeCount(),
			Routes:               graph.EdgeCount(),
			DestinationCountries: agg.DestinationCountries(),
		},
	}, nil
}
