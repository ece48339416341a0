package sinks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"shipment-report-service/internal/domain"
)

type ShipmentResponse struct {
	ShipmentID           string `json:"shipment_id"`
	OriginCountry        string `json:"origin_country"`
	DestinationCountry   string `json:"destination_country"`
	PackageCount         int    `json:"package_count"`
	TotalWeight          string `json:"total_weight"`
	TimeSpanHours        int64  `json:"time_span_hours"`
	TotalCost            string `json:"total_cost"`
	Currency             string `json:"currency"`
	TotalCostInReference string `json:"total_cost_in_reference"`
	Direction            string `json:"direction"`
	Period               string `json:"period"`
}

type MonthResponse struct {
	Period   string `json:"period"`
	Entering int    `json:"entering"`
	Exiting  int    `json:"exiting"`
}

type RouteResponse struct {
	Start string   `json:"start"`
	End   string   `json:"end"`
	Found bool     `json:"found"`
	Path  []string `json:"path"`
}

type StatsResponse struct {
	FilesRead            int      `json:"files_read"`
	FilesSkipped         int      `json:"files_skipped"`
	RowsRead             int      `json:"rows_read"`
	RowsSkipped          int      `json:"rows_skipped"`
	Shipments            int      `json:"shipments"`
	MetadataConflicts    int      `json:"metadata_conflicts"`
	Locations            int      `json:"locations"`
	Routes               int      `json:"routes"`
	DestinationCountries []string `json:"destination_countries"`
}

type ReportResponse struct {
	RunID             string             `json:"run_id"`
	GeneratedAt       time.Time          `json:"generated_at"`
	HomeCountry       string             `json:"home_country"`
	ReferenceCurrency string             `json:"reference_currency"`
	Shipments         []ShipmentResponse `json:"shipments"`
	Monthly           []MonthResponse    `json:"monthly"`
	Routes            []RouteResponse    `json:"routes"`
	Stats             StatsResponse      `json:"stats"`
}

// JSONSink writes the report as a single indented JSON document.
// Decimal amounts are emitted as strings to keep them exact.
type JSONSink struct {
	W io.Writer
}

func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{W: w}
}

func (s *JSONSink) WriteReport(ctx context.Context, report *domain.Report) error {
	enc := json.NewEncoder(s.W)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToResponse(report)); err != nil {
		return fmt.Errorf("write json report: %w", err)
	}
	return nil
}

// ToResponse maps a report onto its JSON shape.
func ToResponse(report *domain.Report) ReportResponse {
	resp := ReportResponse{
		RunID:             report.RunID,
		GeneratedAt:       report.GeneratedAt,
		HomeCountry:       report.HomeCountry,
		ReferenceCurrency: report.ReferenceCurrency,
		Shipments:         make([]ShipmentResponse, 0, len(report.Summaries)),
		Monthly:           make([]MonthResponse, 0, len(report.Monthly)),
		Routes:            make([]RouteResponse, 0, len(report.Routes)),
		Stats:             toStatsResponse(report.Stats),
	}

	for _, s := range report.Summaries {
		resp.Shipments = append(resp.Shipments, ShipmentResponse{
			ShipmentID:           s.ShipmentID,
			OriginCountry:        s.OriginCountry,
			DestinationCountry:   s.DestinationCountry,
			PackageCount:         s.PackageCount,
			TotalWeight:          s.TotalWeight.String(),
			TimeSpanHours:        s.TimeSpanHours,
			TotalCost:            s.TotalCost.String(),
			Currency:             s.Currency,
			TotalCostInReference: s.TotalCostInReference.String(),
			Direction:            string(s.Direction),
			Period:               s.Period,
		})
	}

	for _, m := range report.Monthly {
		resp.Monthly = append(resp.Monthly, MonthResponse{Period: m.Period, Entering: m.Entering, Exiting: m.Exiting})
	}

	for _, r := range report.Routes {
		path := r.Path
		if path == nil {
			path = []string{}
		}
		resp.Routes = append(resp.Routes, RouteResponse{Start: r.Start, End: r.End, Found: r.Found, Path: path})
	}

	return resp
}

func toStatsResponse(st domain.RunStats) StatsResponse {
	countries := st.DestinationCountries
	if countries == nil {
		countries = []string{}
	}
	return StatsResponse{
		FilesRead:            st.FilesRead,
		FilesSkipped:         st.FilesSkipped,
		RowsRead:             st.RowsRead,
		RowsSkipped:          st.RowsSkipped,
		Shipments:            st.Shipments,
		MetadataConflicts:    st.MetadataConflicts,
		Locations:            st.Locations,
		Routes:               st.Routes,
		DestinationCountries: countries,
	}
}
