package records

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"shipment-report-service/internal/domain"
	"shipment-report-service/internal/platform/logger"
	"shipment-report-service/internal/ports"
)

// CSV directory implementation of the RecordSource port.
// Every regular *.csv file below Root is read in lexical path order. A file
// that cannot be opened or has no usable header is skipped; a row that
// cannot be decoded is skipped. Neither aborts the run.
type CsvDirSource struct {
	Root string
	Log  *logger.Log
}

func NewCsvDirSource(root string, log *logger.Log) *CsvDirSource {
	return &CsvDirSource{Root: root, Log: log}
}

func (s *CsvDirSource) Records(ctx context.Context, fn func(domain.Record)) (ports.IngestStats, error) {
	var stats ports.IngestStats

	info, err := os.Stat(s.Root)
	if err != nil {
		return stats, fmt.Errorf("read records: stat %q: %w", s.Root, err)
	}
	if !info.IsDir() {
		return stats, fmt.Errorf("read records: %q is not a directory", s.Root)
	}

	log := s.Log.WithComponent("records")

	err = filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if path == s.Root {
				return walkErr
			}
			log.WithFields(logger.Fields{"path": path}).WithError(walkErr).Warn("skipping unreadable path")
			stats.FilesSkipped++
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !strings.EqualFold(filepath.Ext(path), ".csv") {
			return nil
		}

		rows, skipped, err := s.readFile(path, fn)
		stats.RowsRead += rows
		stats.RowsSkipped += skipped
		if err != nil {
			log.WithFields(logger.Fields{"file": path, "rows": rows}).WithError(err).Warn("skipping file")
			stats.FilesSkipped++
			return nil
		}

		stats.FilesRead++
		log.WithFields(logger.Fields{"file": path, "rows": rows, "rows_skipped": skipped}).Debug("file read")
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("read records: walk %q: %w", s.Root, err)
	}

	return stats, nil
}

// readFile streams one file. Rows decoded before a read error stay ingested.
func (s *CsvDirSource) readFile(path string, fn func(domain.Record)) (rows, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return 0, 0, errors.New("empty file")
	}
	if err != nil {
		return 0, 0, fmt.Errorf("read header: %w", err)
	}

	schema, err := ResolveSchema(header)
	if err != nil {
		return 0, 0, err
	}

	log := s.Log.WithComponent("records")
	line := 1
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows, skipped, nil
		}
		if err != nil {
			return rows, skipped, fmt.Errorf("read row: %w", err)
		}
		line++

		rec, err := schema.Decode(row)
		if err != nil {
			skipped++
			log.WithFields(logger.Fields{"file": path, "line": line}).WithError(err).Warn("skipping row")
			continue
		}

		rows++
		fn(rec)
	}
}
