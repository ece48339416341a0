package ports

import (
	"context"
	"shipment-report-service/internal/domain"
)

// Port: a destination for a finished report (console, file, database).
type ReportSink interface {
	WriteReport(ctx context.Context, report *domain.Report) error
}
