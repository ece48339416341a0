package domain

import (
	"fmt"
	"sort"
	"time"
)

// Direction of a shipment relative to the home country.
type Direction string

const (
	DirectionNone     Direction = "none"
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

// Classify a shipment by origin and destination country. Domestic traffic
// and traffic that never touches home are DirectionNone.
func Classify(originCountry, destinationCountry, home string) Direction {
	switch {
	case originCountry != home && destinationCountry == home:
		return DirectionInbound
	case originCountry == home && destinationCountry != home:
		return DirectionOutbound
	default:
		return DirectionNone
	}
}

// Period formats t as a "YYYY-MM" reporting period.
func Period(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// Shipments entering and exiting the home country during one period.
type MonthlyCounter struct {
	Entering int
	Exiting  int
}

type PeriodTraffic struct {
	Period   string
	Entering int
	Exiting  int
}

// Monthly inbound/outbound counters keyed by period. Counters are created
// on the first shipment that touches them.
type MonthlyTraffic struct {
	counters map[string]*MonthlyCounter
}

func NewMonthlyTraffic() *MonthlyTraffic {
	return &MonthlyTraffic{counters: make(map[string]*MonthlyCounter)}
}

// Record counts one shipment for period. DirectionNone leaves the table untouched.
func (m *MonthlyTraffic) Record(period string, dir Direction) {
	if dir == DirectionNone {
		return
	}

	c, ok := m.counters[period]
	if !ok {
		c = &MonthlyCounter{}
		m.counters[period] = c
	}

	if dir == DirectionInbound {
		c.Entering++
	} else {
		c.Exiting++
	}
}

// Get returns the counter for period and whether it exists.
func (m *MonthlyTraffic) Get(period string) (MonthlyCounter, bool) {
	c, ok := m.counters[period]
	if !ok {
		return MonthlyCounter{}, false
	}
	return *c, true
}

func (m *MonthlyTraffic) Len() int { return len(m.counters) }

// Sorted returns all periods in ascending "YYYY-MM" order.
func (m *MonthlyTraffic) Sorted() []PeriodTraffic {
	out := make([]PeriodTraffic, 0, len(m.counters))
	for p, c := range m.counters {
		out = append(out, PeriodTraffic{Period: p, Entering: c.Entering, Exiting: c.Exiting})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}
