package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Per-shipment totals produced by the summarizer.
// TotalCost is in the destination country's currency, TotalCostInReference
// in the reference currency.
type ShipmentSummary struct {
	ShipmentID           string
	OriginCountry        string
	DestinationCountry   string
	PackageCount         int
	TotalWeight          decimal.Decimal
	TotalCost            decimal.Decimal
	Currency             string
	TotalCostInReference decimal.Decimal
	TimeSpanHours        int64
	Direction            Direction
	Period               string
}

// Counters describing what a run ingested.
type RunStats struct {
	FilesRead            int
	FilesSkipped         int
	RowsRead             int
	RowsSkipped          int
	Shipments            int
	MetadataConflicts    int
	Locations            int
	Routes               int
	DestinationCountries []string
}

// Report is everything a single run emits.
type Report struct {
	RunID             string
	GeneratedAt       time.Time
	HomeCountry       string
	ReferenceCurrency string
	Summaries         []ShipmentSummary
	Monthly           []PeriodTraffic
	Routes            []Route
	Stats             RunStats
}
