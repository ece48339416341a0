package sinks

import (
	"context"
	"fmt"
	"io"
	"strings"

	"shipment-report-service/internal/domain"
)

// TextSink prints the report in the console format.
type TextSink struct {
	W io.Writer
}

func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{W: w}
}

func (s *TextSink) WriteReport(ctx context.Context, report *domain.Report) error {
	var b strings.Builder

	b.WriteString("\n--- Packages Connected To Shipment Visualization ---\n\n")
	for _, sum := range report.Summaries {
		fmt.Fprintf(&b, "Shipment: %s, Total Packages: %d, Total Weight: %sg, Total Time: %d hours, Total Cost: %s %s\n",
			sum.ShipmentID,
			sum.PackageCount,
			sum.TotalWeight.StringFixed(2),
			sum.TimeSpanHours,
			sum.TotalCostInReference.StringFixed(2),
			report.ReferenceCurrency,
		)
	}

	fmt.Fprintf(&b, "\n--- %s Shipments Visualization ---\n\n", report.HomeCountry)
	for _, m := range report.Monthly {
		fmt.Fprintf(&b, "Month: %s, Inbound to %s: %d, Outbound from %s: %d\n",
			m.Period, report.HomeCountry, m.Entering, report.HomeCountry, m.Exiting)
	}

	for _, r := range report.Routes {
		fmt.Fprintf(&b, "\n--- Finding route from %s to %s ---\n", r.Start, r.End)
		if r.Found {
			fmt.Fprintf(&b, "Route found: %s\n", strings.Join(r.Path, " -> "))
		} else {
			fmt.Fprintf(&b, "No route found from %s to %s\n", r.Start, r.End)
		}
	}

	b.WriteString("Done.\n")

	if _, err := io.WriteString(s.W, b.String()); err != nil {
		return fmt.Errorf("write text report: %w", err)
	}
	return nil
}
