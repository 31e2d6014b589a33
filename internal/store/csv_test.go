package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImportCountsValidAndSkipped(t *testing.T) {
	s := openStore(t)
	addRecord(t, s, "2024-01-01", "Rent", "800", "")

	// One valid row, one with the amount missing.
	path := writeCSV(t, "2024-03-01,Food,12.5,lunch\n2024-03-02,Food,,dinner\n")
	imported, skipped, err := s.ImportCSV(path)
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}
	if imported != 1 {
		t.Errorf("imported = %d, want 1", imported)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}

	want := [][4]string{
		{"2024-01-01", "Rent", "800", ""},
		{"2024-03-01", "Food", "12.5", "lunch"},
	}
	if got := rows(s); !equalRows(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

func TestImportSkipsHeaderRow(t *testing.T) {
	s := openStore(t)

	path := writeCSV(t, "Date,Category,Amount,Note\n2024-03-01,Food,5,\n2024-03-02,Rent,6,\n")
	imported, skipped, err := s.ImportCSV(path)
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}
	if imported != 2 || skipped != 0 {
		t.Errorf("imported, skipped = %d, %d, want 2, 0", imported, skipped)
	}
}

func TestImportMissingFile(t *testing.T) {
	s := openStore(t)
	if _, _, err := s.ImportCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("ImportCSV() error = nil for a missing file")
	}
}

func TestImportPersists(t *testing.T) {
	s := openStore(t)
	path := writeCSV(t, "2024-03-01,Food,5,x\n")
	if _, _, err := s.ImportCSV(path); err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}

	s2, err := Open(s.Path())
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	if s2.Len() != 1 {
		t.Errorf("Len() after reopen = %d, want 1", s2.Len())
	}
}

func TestExportWritesHeader(t *testing.T) {
	s := openStore(t)
	addRecord(t, s, "2024-03-01", "Food", "5", "")

	out := filepath.Join(t.TempDir(), "out.csv")
	if err := s.ExportCSV(out); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("export has %d lines, want 2", len(lines))
	}
	if lines[0] != "date,category,amount,note" {
		t.Errorf("export header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2024-03-01,") {
		t.Errorf("export row = %q, want a data row", lines[1])
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := openStore(t)
	addRecord(t, s, "2024-03-10", "Food", "12.345", "comma, in note")
	addRecord(t, s, "2024-01-02", "Rent", "-800", `quoted "note"`)
	addRecord(t, s, "2024-03-10", "Food", "12.345", "duplicate row")
	addRecord(t, s, "2024-02-29", "Travel", "0.01", "")

	out := filepath.Join(t.TempDir(), "out.csv")
	if err := s.ExportCSV(out); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	fresh := openStore(t)
	imported, skipped, err := fresh.ImportCSV(out)
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}
	if imported != 4 || skipped != 0 {
		t.Errorf("imported, skipped = %d, %d, want 4, 0", imported, skipped)
	}
	if got, want := rows(fresh), rows(s); !equalRows(got, want) {
		t.Errorf("round trip rows = %v, want %v", got, want)
	}
}
