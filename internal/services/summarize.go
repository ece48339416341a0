package services

import (
	"shipment-report-service/internal/domain"
	"shipment-report-service/internal/ports"
)

// Summarize computes per-shipment totals and the monthly inbound/outbound
// table for homeCountry.
//
// Costs are summed in the destination country's currency and converted once
// per shipment. A shipment is bucketed into the month of its first-ingested
// entry, not its earliest one; reordering input files can therefore move a
// shipment between months.
func Summarize(
	groups []*domain.ShipmentGroup,
	rates ports.CurrencyRates,
	homeCountry string,
) ([]domain.ShipmentSummary, *domain.MonthlyTraffic) {
	summaries := make([]domain.ShipmentSummary, 0, len(groups))
	monthly := domain.NewMonthlyTraffic()

	for _, g := range groups {
		s := g.Shipment
		totalCost := g.TotalCost()
		currency := rates.CurrencyFor(s.DestinationCountry)

		dir := domain.Classify(s.OriginCountry, s.DestinationCountry, homeCountry)
		period := domain.Period(g.First().EventTime)
		monthly.Record(period, dir)

		summaries = append(summaries, domain.ShipmentSummary{
			ShipmentID:           s.ID,
			OriginCountry:        s.OriginCountry,
			DestinationCountry:   s.DestinationCountry,
			PackageCount:         g.Len(),
			TotalWeight:          g.TotalWeight(),
			TotalCost:            totalCost,
			Currency:             currency,
			TotalCostInReference: totalCost.Mul(rates.RateFor(currency)),
			TimeSpanHours:        g.TimeSpanHours(),
			Direction:            dir,
			Period:               period,
		})
	}

	return summaries, monthly
}
