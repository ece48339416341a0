package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShipmentKey identifies a shipment. Only the shipment id takes part in
// identity; the rest of the metadata lives in Shipment.
type ShipmentKey struct {
	ID string
}

// Shipment-level metadata. The first record seen for a shipment id
// defines it; later records with the same id never overwrite it.
type Shipment struct {
	ID                 string
	Origin             string
	OriginCountry      string
	OriginRegion       string
	Destination        string
	DestinationCountry string
	DestinationRegion  string
}

func (s Shipment) Key() ShipmentKey { return ShipmentKey{ID: s.ID} }

// SameRoute reports whether other carries the same origin/destination metadata.
func (s Shipment) SameRoute(other Shipment) bool {
	return s.Origin == other.Origin &&
		s.OriginCountry == other.OriginCountry &&
		s.OriginRegion == other.OriginRegion &&
		s.Destination == other.Destination &&
		s.DestinationCountry == other.DestinationCountry &&
		s.DestinationRegion == other.DestinationRegion
}

// Shipment aggregate holding its package entries in ingestion order.
// A group is always created together with its first entry, so Entries is
// never empty.
type ShipmentGroup struct {
	Shipment Shipment
	Entries  []PackageEntry
}

func NewShipmentGroup(s Shipment, first PackageEntry) *ShipmentGroup {
	return &ShipmentGroup{
		Shipment: s,
		Entries:  []PackageEntry{first},
	}
}

// Append a package entry to the end of the group.
func (g *ShipmentGroup) Append(e PackageEntry) {
	g.Entries = append(g.Entries, e)
}

func (g *ShipmentGroup) Len() int { return len(g.Entries) }

// First returns the first-ingested entry, which is not necessarily the
// earliest one.
func (g *ShipmentGroup) First() PackageEntry { return g.Entries[0] }

func (g *ShipmentGroup) TotalWeight() decimal.Decimal {
	total := decimal.Zero
	for _, e := range g.Entries {
		total = total.Add(e.Weight)
	}
	return total
}

func (g *ShipmentGroup) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, e := range g.Entries {
		total = total.Add(e.Cost)
	}
	return total
}

// TimeSpan returns the duration between the earliest and the latest entry.
func (g *ShipmentGroup) TimeSpan() time.Duration {
	minTime := g.Entries[0].EventTime
	maxTime := minTime
	for _, e := range g.Entries[1:] {
		if e.EventTime.Before(minTime) {
			minTime = e.EventTime
		}
		if e.EventTime.After(maxTime) {
			maxTime = e.EventTime
		}
	}
	return maxTime.Sub(minTime)
}

// TimeSpanHours floors TimeSpan to whole hours.
func (g *ShipmentGroup) TimeSpanHours() int64 {
	return int64(g.TimeSpan() / time.Hour)
}
