package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Represents a single package observation belonging to a shipment.
// Weight and Cost are non-negative by contract of the producer; Cost is
// expressed in the currency of the shipment's destination country.
// A PackageEntry is immutable once constructed.
type PackageEntry struct {
	PackageID string
	Weight    decimal.Decimal
	Cost      decimal.Decimal
	EventTime time.Time
}
