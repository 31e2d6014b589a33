// Package model defines the expense record domain types and the
// validation shared by form input, file load, and CSV import.
package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateFormat is the wire format for record dates.
const DateFormat = "2006-01-02"

// DefaultCategory is assigned when a record arrives with no category.
const DefaultCategory = "Other"

// Validation errors. Callers match with errors.Is.
var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrShortRow      = errors.New("row has too few fields")
)

// SuggestedCategories is the canonical category set offered in forms.
// Records may carry any free-text category; this list is a suggestion,
// not a constraint.
var SuggestedCategories = []string{
	"Rent", "Tuition", "Utilities", "Groceries", "Food", "Transport",
	"Shopping", "Entertainment", "Health", "Insurance", "Internet",
	"Subscriptions", "Gifts", "Travel", "Other",
}

// Record is one expense entry.
type Record struct {
	ID       string // synthetic identity, session-scoped, never persisted
	Date     time.Time
	Category string
	Amount   float64
	Note     string
}

// ParseDate parses a YYYY-MM-DD date field.
func ParseDate(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	d, err := time.Parse(DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (want YYYY-MM-DD)", ErrInvalidDate, date)
	}
	return d, nil
}

// ParseAmount parses an amount field. Non-finite values are rejected.
func ParseAmount(amount string) (float64, error) {
	amount = strings.TrimSpace(amount)
	a, err := strconv.ParseFloat(amount, 64)
	if err != nil || math.IsNaN(a) || math.IsInf(a, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return a, nil
}

// ParseRecord validates raw field values and builds a Record with a
// fresh ID. It is the single accept/reject decision for all entry
// paths: an input rejected here is rejected everywhere.
func ParseRecord(date, category, amount, note string) (Record, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Record{}, err
	}

	a, err := ParseAmount(amount)
	if err != nil {
		return Record{}, err
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}

	return Record{
		ID:       uuid.NewString(),
		Date:     d,
		Category: category,
		Amount:   a,
		Note:     strings.TrimSpace(note),
	}, nil
}

// ParseRow adapts a CSV row (date, category, amount, note) to
// ParseRecord. The note column may be absent.
func ParseRow(fields []string) (Record, error) {
	if len(fields) < 3 {
		return Record{}, fmt.Errorf("%w: got %d, want at least 3", ErrShortRow, len(fields))
	}
	note := ""
	if len(fields) > 3 {
		note = fields[3]
	}
	return ParseRecord(fields[0], fields[1], fields[2], note)
}

// Fields encodes the record as a CSV row in wire column order.
// The amount uses the shortest representation that round-trips.
func (r Record) Fields() []string {
	return []string{
		r.Date.Format(DateFormat),
		r.Category,
		strconv.FormatFloat(r.Amount, 'f', -1, 64),
		r.Note,
	}
}

// MatchesMonth reports whether the record's date satisfies the given
// year and/or month. Zero means that part is unconstrained.
func (r Record) MatchesMonth(year, month int) bool {
	if year != 0 && r.Date.Year() != year {
		return false
	}
	if month != 0 && int(r.Date.Month()) != month {
		return false
	}
	return true
}
