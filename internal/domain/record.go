package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one decoded input row, already validated by the ingestion adapter.
type Record struct {
	ShipmentID         string
	Origin             string
	OriginCountry      string
	OriginRegion       string
	Destination        string
	DestinationCountry string
	DestinationRegion  string
	PackageID          string
	Weight             decimal.Decimal
	Cost               decimal.Decimal
	EventTime          time.Time
}

// Shipment returns the shipment-level metadata carried by the record.
func (r Record) Shipment() Shipment {
	return Shipment{
		ID:                 r.ShipmentID,
		Origin:             r.Origin,
		OriginCountry:      r.OriginCountry,
		OriginRegion:       r.OriginRegion,
		Destination:        r.Destination,
		DestinationCountry: r.DestinationCountry,
		DestinationRegion:  r.DestinationRegion,
	}
}

// Entry returns the package observation carried by the record.
func (r Record) Entry() PackageEntry {
	return PackageEntry{
		PackageID: r.PackageID,
		Weight:    r.Weight,
		Cost:      r.Cost,
		EventTime: r.EventTime,
	}
}
