package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the counters of a single run. A nil *Registry is valid and
// records nothing.
type Registry struct {
	reg          *prometheus.Registry
	FilesRead    prometheus.Counter
	FilesSkipped prometheus.Counter
	RowsRead     prometheus.Counter
	RowsSkipped  prometheus.Counter
	Shipments    prometheus.Gauge
	Locations    prometheus.Gauge
	RouteQueries *prometheus.CounterVec
	MonthlyTotal *prometheus.GaugeVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	filesRead := prometheus.NewCounter(prometheus.CounterOpts{Name: "shipment_report_files_read_total"})
	filesSkipped := prometheus.NewCounter(prometheus.CounterOpts{Name: "shipment_report_files_skipped_total"})
	rowsRead := prometheus.NewCounter(prometheus.CounterOpts{Name: "shipment_report_rows_read_total"})
	rowsSkipped := prometheus.NewCounter(prometheus.CounterOpts{Name: "shipment_report_rows_skipped_total"})
	shipments := prometheus.NewGauge(prometheus.GaugeOpts{Name: "shipment_report_shipments"})
	locations := prometheus.NewGauge(prometheus.GaugeOpts{Name: "shipment_report_locations"})
	routeQueries := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "shipment_report_route_queries_total"},
		[]string{"result"},
	)
	monthly := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "shipment_report_monthly_shipments"},
		[]string{"period", "direction"},
	)

	r.MustRegister(filesRead, filesSkipped, rowsRead, rowsSkipped, shipments, locations, routeQueries, monthly)
	return &Registry{
		reg:          r,
		FilesRead:    filesRead,
		FilesSkipped: filesSkipped,
		RowsRead:     rowsRead,
		RowsSkipped:  rowsSkipped,
		Shipments:    shipments,
		Locations:    locations,
		RouteQueries: routeQueries,
		MonthlyTotal: monthly,
	}
}

func (r *Registry) ObserveIngest(filesRead, filesSkipped, rowsRead, rowsSkipped int) {
	if r == nil {
		return
	}
	r.FilesRead.Add(float64(filesRead))
	r.FilesSkipped.Add(float64(filesSkipped))
	r.RowsRead.Add(float64(rowsRead))
	r.RowsSkipped.Add(float64(rowsSkipped))
}

func (r *Registry) ObserveGraph(shipments, locations int) {
	if r == nil {
		return
	}
	r.Shipments.Set(float64(shipments))
	r.Locations.Set(float64(locations))
}

func (r *Registry) ObserveRoute(found bool) {
	if r == nil {
		return
	}
	result := "not_found"
	if found {
		result = "found"
	}
	r.RouteQueries.WithLabelValues(result).Inc()
}

func (r *Registry) ObserveMonth(period string, entering, exiting int) {
	if r == nil {
		return
	}
	r.MonthlyTotal.WithLabelValues(period, "inbound").Set(float64(entering))
	r.MonthlyTotal.WithLabelValues(period, "outbound").Set(float64(exiting))
}

// WriteTextfile writes all metrics in the text exposition format, for the
// node exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
