package services

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAggregatorGroupsByShipmentID(t *testing.T) {
	agg := NewAggregator()
	agg.Ingest(rec("S1", "PKG1", "Paris", "FR", "Los Angeles", "US", 10, 5, "2024-01-01 00:00:00"))
	agg.Ingest(rec("S2", "PKG2", "Los Angeles", "US", "Berlin", "DE", 3, 1, "2024-01-01 00:00:00"))
	agg.Ingest(rec("S1", "PKG3", "Paris", "FR", "Los Angeles", "US", 20, 5, "2024-01-02 00:00:00"))

	groups := agg.Groups()
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].Shipment.ID != "S1" || groups[1].Shipment.ID != "S2" {
		t.Fatalf("groups not in first-seen order: %s, %s", groups[0].Shipment.ID, groups[1].Shipment.ID)
	}

	s1, ok := agg.Group("S1")
	if !ok {
		t.Fatalf("S1 missing")
	}
	if s1.Len() != 2 {
		t.Fatalf("S1 entries = %d, want 2", s1.Len())
	}
	if s1.Entries[0].PackageID != "PKG1" || s1.Entries[1].PackageID != "PKG3" {
		t.Fatalf("entries not in ingestion order")
	}
	if !s1.TotalWeight().Equal(decimal.NewFromInt(30)) {
		t.Fatalf("S1 weight = %s, want 30", s1.TotalWeight())
	}
}

func TestAggregatorFirstSeenMetadataWins(t *testing.T) {
	agg := NewAggregator()
	agg.Ingest(rec("S1", "PKG1", "Paris", "FR", "Los Angeles", "US", 1, 1, "2024-01-01 00:00:00"))
	agg.Ingest(rec("S1", "PKG2", "Berlin", "DE", "Tokyo", "JP", 1, 1, "2024-01-01 00:00:00"))

	g, _ := agg.Group("S1")
	if g.Shipment.Origin != "Paris" || g.Shipment.DestinationCountry != "US" {
		t.Fatalf("metadata overwritten: %+v", g.Shipment)
	}
	if g.Len() != 2 {
		t.Fatalf("entries = %d, want 2", g.Len())
	}
	if agg.MetadataConflicts() != 1 {
		t.Fatalf("conflicts = %d, want 1", agg.MetadataConflicts())
	}
	if !agg.Graph().HasNode("Berlin") || len(agg.Graph().Neighbors("Berlin")) != 1 {
		t.Fatalf("every record should add its own edge")
	}
}

func TestAggregatorBuildsGraphAndCountries(t *testing.T) {
	agg := NewAggregator()
	agg.Ingest(rec("S1", "PKG1", "A", "US", "B", "GB", 1, 1, "2024-01-01 00:00:00"))
	agg.Ingest(rec("S1", "PKG2", "A", "US", "B", "GB", 1, 1, "2024-01-01 00:00:00"))
	agg.Ingest(rec("S2", "PKG3", "B", "GB", "C", "FR", 1, 1, "2024-01-01 00:00:00"))

	if got := agg.Graph().OutDegree("A"); got != 1 {
		t.Fatalf("out degree A = %d, want 1", got)
	}
	if got := agg.DestinationCountries(); !slices.Equal(got, []string{"FR", "GB"}) {
		t.Fatalf("countries = %v, want [FR GB]", got)
	}
}
