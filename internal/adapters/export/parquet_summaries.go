package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"

	"shipment-report-service/internal/domain"
	"shipment-report-service/internal/platform/logger"
	"shipment-report-service/internal/platform/obs"
)

// SummaryRecord is one Parquet row per shipment.
type SummaryRecord struct {
	RunID                string  `parquet:"name=run_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	ShipmentID           string  `parquet:"name=shipment_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	OriginCountry        string  `parquet:"name=origin_country, type=BYTE_ARRAY, convertedtype=UTF8"`
	DestinationCountry   string  `parquet:"name=destination_country, type=BYTE_ARRAY, convertedtype=UTF8"`
	PackageCount         int64   `parquet:"name=package_count, type=INT64"`
	TotalWeight          float64 `parquet:"name=total_weight, type=DOUBLE"`
	TimeSpanHours        int64   `parquet:"name=time_span_hours, type=INT64"`
	Currency             string  `parquet:"name=currency, type=BYTE_ARRAY, convertedtype=UTF8"`
	TotalCostInReference float64 `parquet:"name=total_cost_reference, type=DOUBLE"`
	Direction            string  `parquet:"name=direction, type=BYTE_ARRAY, convertedtype=UTF8"`
	Period               string  `parquet:"name=period, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// memoryFile implements source.ParquetFile over a byte buffer.
type memoryFile struct {
	buffer *bytes.Buffer
}

func newMemoryFile() *memoryFile {
	return &memoryFile{buffer: &bytes.Buffer{}}
}

func (m *memoryFile) Create(name string) (source.ParquetFile, error) { return m, nil }
func (m *memoryFile) Open(name string) (source.ParquetFile, error)   { return m, nil }

// Seek only reports the current size; the writer never seeks backwards.
func (m *memoryFile) Seek(offset int64, whence int) (int64, error) {
	return int64(m.buffer.Len()), nil
}

func (m *memoryFile) Read(b []byte) (int, error)  { return m.buffer.Read(b) }
func (m *memoryFile) Write(b []byte) (int, error) { return m.buffer.Write(b) }
func (m *memoryFile) Close() error                { return nil }
func (m *memoryFile) Bytes() []byte               { return m.buffer.Bytes() }

// ParquetSummaryExporter writes the shipment summaries of a report to a
// Parquet file.
type ParquetSummaryExporter struct {
	Path        string
	Compression string
	Log         *logger.Log
}

func NewParquetSummaryExporter(path, compression string, log *logger.Log) *ParquetSummaryExporter {
	return &ParquetSummaryExporter{Path: path, Compression: compression, Log: log}
}

func (e *ParquetSummaryExporter) WriteReport(ctx context.Context, report *domain.Report) (err error) {
	defer obs.Time(ctx, "parquet.WriteReport")(&err)

	if e.Path == "" {
		return errors.New("parquet export: path must be non-empty")
	}

	data, err := EncodeSummaries(report, e.Compression)
	if err != nil {
		return fmt.Errorf("parquet export: %w", err)
	}

	if err := os.WriteFile(e.Path, data, 0o644); err != nil {
		return fmt.Errorf("parquet export: write %q: %w", e.Path, err)
	}

	if e.Log != nil {
		e.Log.WithComponent("parquet").WithFields(logger.Fields{
			"file":        e.Path,
			"rows":        len(report.Summaries),
			"file_size":   len(data),
			"compression": e.Compression,
		}).Info("parquet export written")
	}
	return nil
}

// EncodeSummaries renders the report's summaries as a Parquet file in memory.
func EncodeSummaries(report *domain.Report, compression string) ([]byte, error) {
	fw := newMemoryFile()

	pw, err := writer.NewParquetWriter(fw, new(SummaryRecord), 1)
	if err != nil {
		return nil, fmt.Errorf("create parquet writer: %w", err)
	}

	switch compression {
	case "snappy":
		pw.CompressionType = parquet.CompressionCodec_SNAPPY
	case "gzip":
		pw.CompressionType = parquet.CompressionCodec_GZIP
	default:
		pw.CompressionType = parquet.CompressionCodec_UNCOMPRESSED
	}

	for _, s := range report.Summaries {
		rec := SummaryRecord{
			RunID:                report.RunID,
			ShipmentID:           s.ShipmentID,
			OriginCountry:        s.OriginCountry,
			DestinationCountry:   s.DestinationCountry,
			PackageCount:         int64(s.PackageCount),
			TotalWeight:          s.TotalWeight.InexactFloat64(),
			TimeSpanHours:        s.TimeSpanHours,
			Currency:             s.Currency,
			TotalCostInReference: s.TotalCostInReference.InexactFloat64(),
			Direction:            string(s.Direction),
			Period:               s.Period,
		}
		if err := pw.Write(rec); err != nil {
			_ = pw.WriteStop()
			return nil, fmt.Errorf("write parquet record %q: %w", s.ShipmentID, err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return nil, fmt.Errorf("finalize parquet writing: %w", err)
	}

	return fw.Bytes(), nil
}
