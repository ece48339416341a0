package services

import (
	"sort"

	"shipment-report-service/internal/domain"
)

// Aggregator owns all state built while ingesting records: the shipment
// groups and the route graph. One Aggregator serves one run; it is not safe
// for concurrent use.
type Aggregator struct {
	graph     *domain.RouteGraph
	groups    map[domain.ShipmentKey]*domain.ShipmentGroup
	order     []domain.ShipmentKey
	countries map[string]struct{}
	conflicts int
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		graph:     domain.NewRouteGraph(),
		groups:    make(map[domain.ShipmentKey]*domain.ShipmentGroup),
		countries: make(map[string]struct{}),
	}
}

// Ingest adds one record to the route graph and to its shipment group.
//
// The first record seen for a shipment id defines the group's metadata.
// Later records with the same id but a different origin or destination are
// still appended to that group; the mismatch is only counted.
func (a *Aggregator) Ingest(rec domain.Record) {
	a.graph.AddEdge(rec.Origin, rec.Destination)
	a.countries[rec.DestinationCountry] = struct{}{}

	s := rec.Shipment()
	key := s.Key()

	g, ok := a.groups[key]
	if !ok {
		a.groups[key] = domain.NewShipmentGroup(s, rec.Entry())
		a.order = append(a.order, key)
		return
	}

	if !g.Shipment.SameRoute(s) {
		a.conflicts++
	}
	g.Append(rec.Entry())
}

// Groups returns every shipment group in first-seen order.
func (a *Aggregator) Groups() []*domain.ShipmentGroup {
	out := make([]*domain.ShipmentGroup, 0, len(a.order))
	for _, k := range a.order {
		out = append(out, a.groups[k])
	}
	return out
}

// Group returns the group for a shipment id.
func (a *Aggregator) Group(id string) (*domain.ShipmentGroup, bool) {
	g, ok := a.groups[domain.ShipmentKey{ID: id}]
	return g, ok
}

func (a *Aggregator) Graph() *domain.RouteGraph { return a.graph }

// MetadataConflicts counts records whose shipment metadata disagreed with
// the first-seen metadata of their group.
func (a *Aggregator) MetadataConflicts() int { return a.conflicts }

// DestinationCountries returns the sorted set of destination countries seen.
func (a *Aggregator) DestinationCountries() []string {
	out := make([]string, 0, len(a.countries))
	for c := range a.countries {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
