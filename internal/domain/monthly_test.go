package domain

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		origin, dest string
		want         Direction
	}{
		{"DE", "US", DirectionInbound},
		{"US", "DE", DirectionOutbound},
		{"US", "US", DirectionNone},
		{"DE", "FR", DirectionNone},
	}

	for _, c := range cases {
		if got := Classify(c.origin, c.dest, "US"); got != c.want {
			t.Errorf("Classify(%q, %q) = %q, want %q", c.origin, c.dest, got, c.want)
		}
	}
}

func TestPeriodZeroPadsMonth(t *testing.T) {
	got := Period(time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC))
	if got != "2024-03" {
		t.Fatalf("period = %q, want 2024-03", got)
	}
}

func TestMonthlyTrafficSorted(t *testing.T) {
	m := NewMonthlyTraffic()
	m.Record("2024-11", DirectionInbound)
	m.Record("2024-02", DirectionOutbound)
	m.Record("2024-11", DirectionInbound)
	m.Record("2023-12", DirectionNone)

	if m.Len() != 2 {
		t.Fatalf("periods = %d, want 2 (none must not create a counter)", m.Len())
	}

	got := m.Sorted()
	if got[0].Period != "2024-02" || got[1].Period != "2024-11" {
		t.Fatalf("periods out of order: %+v", got)
	}
	if got[0].Exiting != 1 || got[0].Entering != 0 {
		t.Errorf("2024-02 = %+v, want exiting=1", got[0])
	}
	if got[1].Entering != 2 || got[1].Exiting != 0 {
		t.Errorf("2024-11 = %+v, want entering=2", got[1])
	}
}
