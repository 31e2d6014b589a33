// Package store persists expense records to a single CSV file and
// keeps an ordered in-memory mirror of it.
package store

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/theirongolddev/outgo/internal/model"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// ErrNotFound reports a record ID that is not in the store.
var ErrNotFound = errors.New("record not found")

// Store is the ordered record list backed by one CSV file. Records
// keep their file order and every mutation rewrites the whole file,
// so memory and disk never disagree. Not safe for concurrent use.
type Store struct {
	path    string
	records []model.Record
}

// Open loads the CSV file at path, creating its directory if needed.
// A missing file is written out as a header-only empty store. Rows
// that fail validation are skipped with a warning so one bad line
// cannot block the rest of the data.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Store{path: path}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := s.flush(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, skipped, err := readRecords(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if skipped > 0 {
		logger.Warn().Int("skipped", skipped).Str("file", path).
			Msg("ignored rows that failed validation")
	}
	s.records = records
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// All returns the records in file order. The slice is a copy, so
// callers may reorder or filter it freely.
func (s *Store) All() []model.Record {
	out := make([]model.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record with the given ID.
func (s *Store) Get(id string) (model.Record, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Record{}, false
	}
	return s.records[i], true
}

// At returns the record at the given zero-based position.
func (s *Store) At(i int) (model.Record, error) {
	if i < 0 || i >= len(s.records) {
		return model.Record{}, fmt.Errorf("%w: position %d of %d", ErrNotFound, i+1, len(s.records))
	}
	return s.records[i], nil
}

// ByMonth returns the records whose date matches the given year
// and/or month, in file order. Zero leaves that part unconstrained.
func (s *Store) ByMonth(year, month int) []model.Record {
	var out []model.Record
	for _, r := range s.records {
		if r.MatchesMonth(year, month) {
			out = append(out, r)
		}
	}
	return out
}

// Add appends the record and rewrites the file.
func (s *Store) Add(r model.Record) error {
	next := make([]model.Record, 0, len(s.records)+1)
	next = append(next, s.records...)
	next = append(next, r)
	return s.commit(next)
}

// Update replaces the record with the given ID in place. The
// replacement keeps the ID and the position in the list.
func (s *Store) Update(id string, r model.Record) error {
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	next := make([]model.Record, len(s.records))
	copy(next, s.records)
	r.ID = id
	next[i] = r
	return s.commit(next)
}

// Delete removes the record with the given ID. Later records shift
// up one position.
func (s *Store) Delete(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	next := make([]model.Record, 0, len(s.records)-1)
	next = append(next, s.records[:i]...)
	next = append(next, s.records[i+1:]...)
	return s.commit(next)
}

// Clear removes every record, leaving a header-only file.
func (s *Store) Clear() error {
	return s.commit(nil)
}

// commit swaps in the new record list and rewrites the file. On a
// write failure the previous list is restored so memory still
// mirrors disk.
func (s *Store) commit(records []model.Record) error {
	prev := s.records
	s.records = records
	if err := s.flush(); err != nil {
		s.records = prev
		return err
	}
	return nil
}

// flush rewrites the whole backing file, header first, from the
// in-memory list.
func (s *Store) flush() error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}
	for _, r := range s.records {
		if err := w.Write(r.Fields()); err != nil {
			return fmt.Errorf("encode row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) indexOf(id string) int {
	for i, r := range s.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
