package records

import (
	"context"

	"shipment-report-service/internal/domain"
	"shipment-report-service/internal/ports"
)

// In-memory RecordSource for tests and demos.
type MockRecordSource struct {
	records []domain.Record
	err     error
}

func NewMockRecordSource(records []domain.Record) *MockRecordSource {
	return &MockRecordSource{records: records}
}

// WithError makes Records fail after delivering every record.
func (m *MockRecordSource) WithError(err error) *MockRecordSource {
	m.err = err
	return m
}

func (m *MockRecordSource) Records(ctx context.Context, fn func(domain.Record)) (ports.IngestStats, error) {
	stats := ports.IngestStats{FilesRead: 1}
	for _, r := range m.records {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		fn(r)
		stats.RowsRead++
	}
	return stats, m.err
}
