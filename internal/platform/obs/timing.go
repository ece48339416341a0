package obs

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shipment-report-service/internal/platform/logger"
)

type ctxKey string

const RunIDKey ctxKey = "run_id"

// WithRunID attaches a fresh run id to ctx.
func WithRunID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(ctx, RunIDKey, id), id
}

func RunID(ctx context.Context) string {
	id, _ := ctx.Value(RunIDKey).(string)
	return id
}

// Time logs the duration of an operation when the returned func is deferred.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	runID := RunID(ctx)

	return func(errp *error) {
		entry := logger.Get().WithFields(logger.Fields{
			"run_id": runID,
			"op":     name,
			"dur_ms": time.Since(start).Milliseconds(),
		})

		if errp != nil && *errp != nil {
			entry.WithError(*errp).Warn("op failed")
			return
		}
		entry.Debug("op done")
	}
}
