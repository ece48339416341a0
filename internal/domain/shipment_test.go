package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestShipmentGroupTotals(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := Shipment{ID: "S1", OriginCountry: "FR", DestinationCountry: "US"}

	g := NewShipmentGroup(s, PackageEntry{
		PackageID: "PKG1",
		Weight:    decimal.RequireFromString("10.25"),
		Cost:      decimal.NewFromInt(5),
		EventTime: base.Add(24 * time.Hour),
	})
	g.Append(PackageEntry{
		PackageID: "PKG2",
		Weight:    decimal.RequireFromString("19.75"),
		Cost:      decimal.RequireFromString("0.1"),
		EventTime: base,
	})
	g.Append(PackageEntry{
		PackageID: "PKG3",
		Weight:    decimal.Zero,
		Cost:      decimal.RequireFromString("0.2"),
		EventTime: base.Add(90 * time.Minute),
	})

	if g.Len() != 3 {
		t.Fatalf("len = %d, want 3", g.Len())
	}
	if !g.TotalWeight().Equal(decimal.NewFromInt(30)) {
		t.Errorf("total weight = %s, want 30", g.TotalWeight())
	}
	if !g.TotalCost().Equal(decimal.RequireFromString("5.3")) {
		t.Errorf("total cost = %s, want 5.3", g.TotalCost())
	}
	if g.TimeSpanHours() != 24 {
		t.Errorf("time span hours = %d, want 24", g.TimeSpanHours())
	}
	if g.First().PackageID != "PKG1" {
		t.Errorf("first entry = %q, want PKG1 (ingestion order)", g.First().PackageID)
	}
}

func TestShipmentGroupSingleEntry(t *testing.T) {
	g := NewShipmentGroup(Shipment{ID: "S1"}, PackageEntry{
		PackageID: "PKG1",
		EventTime: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	})

	if g.TimeSpanHours() != 0 {
		t.Fatalf("time span hours = %d, want 0", g.TimeSpanHours())
	}
	if !g.TotalWeight().IsZero() || !g.TotalCost().IsZero() {
		t.Fatalf("zero weight/cost should sum to zero, got %s/%s", g.TotalWeight(), g.TotalCost())
	}
}

func TestShipmentGroupTimeSpanFloorsHours(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	g := NewShipmentGroup(Shipment{ID: "S1"}, PackageEntry{EventTime: base.Add(5*time.Hour + 59*time.Minute)})
	g.Append(PackageEntry{EventTime: base})

	if g.TimeSpanHours() != 5 {
		t.Fatalf("time span hours = %d, want 5", g.TimeSpanHours())
	}
}

func TestShipmentKeyIgnoresMetadata(t *testing.T) {
	a := Shipment{ID: "S1", Origin: "Paris", OriginCountry: "FR"}
	b := Shipment{ID: "S1", Origin: "Berlin", OriginCountry: "DE"}

	if a.Key() != b.Key() {
		t.Fatalf("keys differ for same id: %v vs %v", a.Key(), b.Key())
	}
	if a.SameRoute(b) {
		t.Fatalf("SameRoute should be false for different origins")
	}
}
