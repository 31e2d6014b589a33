package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/theirongolddev/outgo/internal/model"
)

// csvHeader labels the wire columns. Every file the store writes
// starts with it.
var csvHeader = []string{"date", "category", "amount", "note"}

// readRecords parses CSV rows in the wire column order (date,
// category, amount, note). A leading header row is skipped without
// counting; rows that fail validation are counted and skipped. Files
// missing the header still load, row by row.
func readRecords(r io.Reader) ([]model.Record, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var records []model.Record
	skipped := 0
	for row := 0; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			logger.Debug().Int("row", row+1).Err(err).Msg("unreadable csv row")
			continue
		}
		if row == 0 && isHeader(fields) {
			continue
		}
		rec, err := model.ParseRow(fields)
		if err != nil {
			skipped++
			logger.Debug().Int("row", row+1).Err(err).Msg("invalid record row")
			continue
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}

// isHeader reports whether a first row labels the columns instead of
// holding data.
func isHeader(fields []string) bool {
	return len(fields) > 0 && strings.EqualFold(strings.TrimSpace(fields[0]), "date")
}

// ImportCSV appends the valid rows of the file at path to the store,
// in row order, and rewrites the backing file once at the end. It
// returns how many rows were imported and how many were skipped as
// invalid. A bad row never aborts the rest of the import.
func (s *Store) ImportCSV(path string) (imported, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open import: %w", err)
	}
	defer f.Close()

	records, skipped, err := readRecords(f)
	if err != nil {
		return 0, 0, fmt.Errorf("read %s: %w", path, err)
	}

	next := make([]model.Record, 0, len(s.records)+len(records))
	next = append(next, s.records...)
	next = append(next, records...)
	if err := s.commit(next); err != nil {
		return 0, 0, err
	}
	return len(records), skipped, nil
}

// ExportCSV writes every record to a new file at path, header plus
// rows, in the same format as the data file itself.
func (s *Store) ExportCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}
	for _, r := range s.records {
		if err := cw.Write(r.Fields()); err != nil {
			return fmt.Errorf("encode row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	return nil
}
