package ports

import (
	"context"
	"shipment-report-service/internal/domain"
)

// Counters reported by a RecordSource after a full pass.
type IngestStats struct {
	FilesRead    int
	FilesSkipped int
	RowsRead     int
	RowsSkipped  int
}

// Port: a boundary delivering decoded shipment records to the core.
type RecordSource interface {
	// Call fn once per record, in input order. Per-file and per-row failures
	// are absorbed by the source and counted in IngestStats.
	Records(ctx context.Context, fn func(domain.Record)) (IngestStats, error)
}
