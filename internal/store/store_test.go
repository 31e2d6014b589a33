package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/outgo/internal/model"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "expenses.csv"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s
}

func mustRecord(t *testing.T, date, category, amount, note string) model.Record {
	t.Helper()
	rec, err := model.ParseRecord(date, category, amount, note)
	if err != nil {
		t.Fatalf("ParseRecord(%q, %q, %q, %q) error = %v", date, category, amount, note, err)
	}
	return rec
}

func addRecord(t *testing.T, s *Store, date, category, amount, note string) model.Record {
	t.Helper()
	rec := mustRecord(t, date, category, amount, note)
	if err := s.Add(rec); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	return rec
}

// rows flattens the store to comparable field tuples, since IDs are
// regenerated on every load.
func rows(s *Store) [][4]string {
	all := s.All()
	out := make([][4]string, len(all))
	for i, r := range all {
		f := r.Fields()
		out[i] = [4]string{f[0], f[1], f[2], f[3]}
	}
	return out
}

func TestOpenMissingFileCreatesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "expenses.csv")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("missing file was not created: %v", err)
	}
	if got := string(data); got != "date,category,amount,note\n" {
		t.Errorf("new file content = %q, want header only", got)
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	s := openStore(t)
	addRecord(t, s, "2024-03-10", "Food", "12.5", "lunch")
	addRecord(t, s, "2024-01-02", "Rent", "800", "")
	addRecord(t, s, "2024-02-20", "Travel", "99.99", "train")

	want := [][4]string{
		{"2024-03-10", "Food", "12.5", "lunch"},
		{"2024-01-02", "Rent", "800", ""},
		{"2024-02-20", "Travel", "99.99", "train"},
	}
	if got := rows(s); !equalRows(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}

	// Order survives a reload from disk.
	s2, err := Open(s.Path())
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	if got := rows(s2); !equalRows(got, want) {
		t.Errorf("rows after reopen = %v, want %v", got, want)
	}
}

func TestUpdateReplacesInPlace(t *testing.T) {
	s := openStore(t)
	addRecord(t, s, "2024-03-01", "Food", "10", "")
	target := addRecord(t, s, "2024-03-02", "Food", "20", "old")
	addRecord(t, s, "2024-03-03", "Food", "30", "")

	repl := mustRecord(t, "2024-03-15", "Travel", "45.5", "new")
	if err := s.Update(target.ID, repl); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	want := [][4]string{
		{"2024-03-01", "Food", "10", ""},
		{"2024-03-15", "Travel", "45.5", "new"},
		{"2024-03-03", "Food", "30", ""},
	}
	if got := rows(s); !equalRows(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}

	got, ok := s.Get(target.ID)
	if !ok {
		t.Fatal("Get() after update: record not found")
	}
	if got.ID != target.ID {
		t.Errorf("updated record ID = %q, want %q", got.ID, target.ID)
	}
	if got.Category != "Travel" {
		t.Errorf("updated record Category = %q, want Travel", got.Category)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	s := openStore(t)
	err := s.Update("nope", mustRecord(t, "2024-01-01", "Food", "1", ""))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteShiftsLaterRecords(t *testing.T) {
	s := openStore(t)
	first := addRecord(t, s, "2024-03-01", "Food", "10", "")
	addRecord(t, s, "2024-03-02", "Rent", "20", "")
	addRecord(t, s, "2024-03-03", "Travel", "30", "")

	if err := s.Delete(first.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	want := [][4]string{
		{"2024-03-02", "Rent", "20", ""},
		{"2024-03-03", "Travel", "30", ""},
	}
	if got := rows(s); !equalRows(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}

	s2, err := Open(s.Path())
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	if got := rows(s2); !equalRows(got, want) {
		t.Errorf("rows after reopen = %v, want %v", got, want)
	}
}

func TestDeleteUnknownID(t *testing.T) {
	s := openStore(t)
	if err := s.Delete("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestByMonth(t *testing.T) {
	s := openStore(t)
	addRecord(t, s, "2024-03-01", "Food", "1", "")
	addRecord(t, s, "2024-03-15", "Rent", "2", "")
	addRecord(t, s, "2024-04-01", "Food", "3", "")
	addRecord(t, s, "2023-03-20", "Food", "4", "")

	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{"year and month", 2024, 3, 2},
		{"month across years", 0, 3, 3},
		{"year across months", 2024, 0, 3},
		{"unconstrained", 0, 0, 4},
		{"empty month", 2024, 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ByMonth(tt.year, tt.month); len(got) != tt.want {
				t.Errorf("ByMonth(%d, %d) len = %d, want %d", tt.year, tt.month, len(got), tt.want)
			}
		})
	}
}

func TestOpenSkipsInvalidRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")
	content := "date,category,amount,note\n" +
		"2024-03-01,Food,10.5,lunch\n" +
		"bad-date,Food,5,\n" +
		"2024-03-02,Rent,800,\n" +
		"2024-03-03,Food,notanumber,x\n" +
		"2024-03-04\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	want := [][4]string{
		{"2024-03-01", "Food", "10.5", "lunch"},
		{"2024-03-02", "Rent", "800", ""},
	}
	if got := rows(s); !equalRows(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

func TestOpenToleratesMissingHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")
	if err := os.WriteFile(path, []byte("2024-03-01,Food,10.5,lunch\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestClear(t *testing.T) {
	s := openStore(t)
	addRecord(t, s, "2024-03-01", "Food", "10", "")
	addRecord(t, s, "2024-03-02", "Rent", "20", "")

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "date,category,amount,note\n" {
		t.Errorf("cleared file content = %q, want header only", got)
	}

	s2, err := Open(s.Path())
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	if s2.Len() != 0 {
		t.Errorf("Len() after reopen = %d, want 0", s2.Len())
	}
}

func TestGetAndAt(t *testing.T) {
	s := openStore(t)
	first := addRecord(t, s, "2024-03-01", "Food", "10", "")
	addRecord(t, s, "2024-03-02", "Rent", "20", "")

	got, ok := s.Get(first.ID)
	if !ok {
		t.Fatal("Get() record not found")
	}
	if got.Amount != 10 {
		t.Errorf("Get() Amount = %v, want 10", got.Amount)
	}
	if _, ok := s.Get("nope"); ok {
		t.Error("Get(nope) ok = true, want false")
	}

	at, err := s.At(1)
	if err != nil {
		t.Fatalf("At(1) error = %v", err)
	}
	if at.Category != "Rent" {
		t.Errorf("At(1) Category = %q, want Rent", at.Category)
	}

	if _, err := s.At(2); !errors.Is(err, ErrNotFound) {
		t.Errorf("At(2) error = %v, want ErrNotFound", err)
	}
	if _, err := s.At(-1); !errors.Is(err, ErrNotFound) {
		t.Errorf("At(-1) error = %v, want ErrNotFound", err)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	s := openStore(t)
	addRecord(t, s, "2024-03-01", "Food", "10", "")

	all := s.All()
	all[0].Category = "Mutated"

	if got, _ := s.At(0); got.Category != "Food" {
		t.Errorf("store record Category = %q after mutating All() copy, want Food", got.Category)
	}
}

func equalRows(a, b [][4]string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
