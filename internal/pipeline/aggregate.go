// Package pipeline turns flat record lists into the aggregates the
// CLI and TUI render.
package pipeline

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/theirongolddev/outgo/internal/model"
)

// ErrNoData reports an aggregation over zero records. Callers render
// it as an empty state rather than a failure.
var ErrNoData = errors.New("no records to aggregate")

// maxCategorySlices is how many categories are shown individually
// before the remainder is lumped into "Other".
const maxCategorySlices = 6

// DailyTotals groups records by calendar day and sums each day's
// spending, sorted chronologically.
func DailyTotals(records []model.Record) ([]model.DayTotal, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	byDay := make(map[string]*model.DayTotal)
	for _, r := range records {
		key := r.Date.Format(model.DateFormat)
		dt, ok := byDay[key]
		if !ok {
			day, _ := time.Parse(model.DateFormat, key)
			dt = &model.DayTotal{Date: day}
			byDay[key] = dt
		}
		dt.Total += r.Amount
		dt.Count++
	}

	out := make([]model.DayTotal, 0, len(byDay))
	for _, dt := range byDay {
		out = append(out, *dt)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// Trend fits a least-squares line over the daily totals, with x as
// the ordinal position among distinct days. With fewer than two days
// there is nothing to fit and the raw series is returned with Fitted
// false.
func Trend(days []model.DayTotal) model.TrendLine {
	values := make([]float64, len(days))
	for i, d := range days {
		values[i] = d.Total
	}
	if len(values) < 2 {
		return model.TrendLine{Values: values}
	}

	slope, intercept := linearFit(values)
	return model.TrendLine{
		Values:    values,
		Slope:     slope,
		Intercept: intercept,
		Fitted:    true,
	}
}

// linearFit computes an ordinary least squares line over the series,
// with x as the element index.
func linearFit(values []float64) (slope, intercept float64) {
	n := float64(len(values))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

// MonthlyTotals regroups already-computed daily totals by calendar
// month, in the chronological order of the input. Deriving months
// from days keeps the two views consistent with each other.
func MonthlyTotals(days []model.DayTotal) []model.MonthTotal {
	byMonth := make(map[string]*model.MonthTotal)
	order := make([]string, 0, 12)
	for _, d := range days {
		key := d.Date.Format("2006-01")
		mt, ok := byMonth[key]
		if !ok {
			mt = &model.MonthTotal{Month: key}
			byMonth[key] = mt
			order = append(order, key)
		}
		mt.Total += d.Total
		mt.Count += d.Count
	}

	out := make([]model.MonthTotal, 0, len(order))
	for _, key := range order {
		out = append(out, *byMonth[key])
	}
	return out
}

// CategoryTotals sums spending per category, sorted by total
// descending. Beyond maxCategorySlices categories the remainder is
// merged into a single "Other" bucket so charts stay readable.
func CategoryTotals(records []model.Record) ([]model.CategoryTotal, error) {
	sums, total, err := categorySums(records)
	if err != nil {
		return nil, err
	}

	if len(sums) > maxCategorySlices {
		other := model.CategoryTotal{Category: model.DefaultCategory}
		for _, c := range sums[maxCategorySlices:] {
			other.Total += c.Total
		}
		sums = append(sums[:maxCategorySlices:maxCategorySlices], other)
	}

	if total != 0 {
		for i := range sums {
			sums[i].Share = sums[i].Total / total
		}
	}
	return sums, nil
}

// categorySums returns the full per-category sums, descending by
// total with encounter order breaking ties, plus the grand total.
func categorySums(records []model.Record) ([]model.CategoryTotal, float64, error) {
	if len(records) == 0 {
		return nil, 0, ErrNoData
	}

	byCategory := make(map[string]*model.CategoryTotal)
	out := make([]*model.CategoryTotal, 0, len(records))
	var total float64
	for _, r := range records {
		ct, ok := byCategory[r.Category]
		if !ok {
			ct = &model.CategoryTotal{Category: r.Category}
			byCategory[r.Category] = ct
			out = append(out, ct)
		}
		ct.Total += r.Amount
		total += r.Amount
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})

	sums := make([]model.CategoryTotal, len(out))
	for i, ct := range out {
		sums[i] = *ct
	}
	return sums, total, nil
}

// Summarize computes the headline stats over a record set. The
// current-month figure is relative to now.
func Summarize(records []model.Record, now time.Time) (model.Summary, error) {
	days, err := DailyTotals(records)
	if err != nil {
		return model.Summary{}, err
	}
	sums, _, err := categorySums(records)
	if err != nil {
		return model.Summary{}, err
	}

	s := model.Summary{
		Records:          len(records),
		FirstDate:        days[0].Date,
		LastDate:         days[len(days)-1].Date,
		DaysLogged:       len(days),
		TopCategory:      sums[0].Category,
		TopCategoryTotal: sums[0].Total,
	}
	for _, d := range days {
		s.Total += d.Total
	}
	s.AvgPerDay = s.Total / float64(s.DaysLogged)
	s.AvgPerRecord = s.Total / float64(s.Records)

	year, month := now.Year(), int(now.Month())
	for _, r := range records {
		if r.MatchesMonth(year, month) {
			s.MonthTotal += r.Amount
		}
	}
	return s, nil
}

// FilterByMonth returns the records whose date matches the given year
// and/or month. Zero leaves that part unconstrained.
func FilterByMonth(records []model.Record, year, month int) []model.Record {
	if year == 0 && month == 0 {
		return records
	}
	var out []model.Record
	for _, r := range records {
		if r.MatchesMonth(year, month) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByCategory returns the records whose category contains name,
// ignoring case.
func FilterByCategory(records []model.Record, name string) []model.Record {
	if name == "" {
		return records
	}
	var out []model.Record
	for _, r := range records {
		if containsIgnoreCase(r.Category, name) {
			out = append(out, r)
		}
	}
	return out
}

// Search returns the records whose category or note contains the
// query, ignoring case.
func Search(records []model.Record, query string) []model.Record {
	if query == "" {
		return records
	}
	var out []model.Record
	for _, r := range records {
		if containsIgnoreCase(r.Category, query) || containsIgnoreCase(r.Note, query) {
			out = append(out, r)
		}
	}
	return out
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
