package records

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"shipment-report-service/internal/domain"
	"shipment-report-service/internal/platform/logger"
)

const header = "ShipmentID,Origin,OriginCountry,OriginRegion,Destination,DestinationCountry,DestinationRegion,PackageID,Weight,Cost,EventTime\n"

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestCsvDirSourceReadsRecursively(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.csv"), header+
		"S1,Paris,FR,IDF,Los Angeles,US,CA,PKG1,10,5,2024-01-01 00:00:00\n"+
		"S1,Paris,FR,IDF,Los Angeles,US,CA,PKG2,20,5,2024-01-02 00:00:00\n")
	writeFile(t, filepath.Join(root, "nested", "b.CSV"), header+
		"S2,Los Angeles,US,CA,Doncaster,GB,ENG,PKG3,1,1,2024-02-01 00:00:00\n")
	writeFile(t, filepath.Join(root, "notes.txt"), "not a csv\n")

	src := NewCsvDirSource(root, logger.New().Discard())

	var got []domain.Record
	stats, err := src.Records(context.Background(), func(r domain.Record) { got = append(got, r) })
	if err != nil {
		t.Fatalf("records: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("records = %d, want 3", len(got))
	}
	if got[0].PackageID != "PKG1" || got[1].PackageID != "PKG2" || got[2].PackageID != "PKG3" {
		t.Fatalf("unexpected order: %s %s %s", got[0].PackageID, got[1].PackageID, got[2].PackageID)
	}
	if stats.FilesRead != 2 || stats.FilesSkipped != 0 || stats.RowsRead != 3 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestCsvDirSourceSkipsBadFilesAndRows(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "1_empty.csv"), "")
	writeFile(t, filepath.Join(root, "2_noheader.csv"), "ShipmentID,Origin\nS9,Paris\n")
	writeFile(t, filepath.Join(root, "3_good.csv"), header+
		"S1,Paris,FR,IDF,Los Angeles,US,CA,PKG1,10,5,2024-01-01 00:00:00\n"+
		"S1,Paris,FR,IDF,Los Angeles,US,CA,PKG2,ten,5,2024-01-02 00:00:00\n"+
		"S1,Paris\n"+
		"S1,Paris,FR,IDF,Los Angeles,US,CA,PKG4,1,1,2024-01-03 00:00:00\n")

	src := NewCsvDirSource(root, logger.New().Discard())

	n := 0
	stats, err := src.Records(context.Background(), func(domain.Record) { n++ })
	if err != nil {
		t.Fatalf("records: %v", err)
	}

	if n != 2 {
		t.Fatalf("records = %d, want 2", n)
	}
	if stats.FilesRead != 1 || stats.FilesSkipped != 2 {
		t.Fatalf("files read/skipped = %d/%d, want 1/2", stats.FilesRead, stats.FilesSkipped)
	}
	if stats.RowsRead != 2 || stats.RowsSkipped != 2 {
		t.Fatalf("rows read/skipped = %d/%d, want 2/2", stats.RowsRead, stats.RowsSkipped)
	}
}

func TestCsvDirSourceMissingRoot(t *testing.T) {
	src := NewCsvDirSource(filepath.Join(t.TempDir(), "missing"), logger.New().Discard())
	if _, err := src.Records(context.Background(), func(domain.Record) {}); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestCsvDirSourceEmptyDirectory(t *testing.T) {
	src := NewCsvDirSource(t.TempDir(), logger.New().Discard())

	stats, err := src.Records(context.Background(), func(domain.Record) {
		t.Fatalf("no records expected")
	})
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	if stats.FilesRead != 0 {
		t.Fatalf("files read = %d, want 0", stats.FilesRead)
	}
}
