package model

import "time"

// DayTotal is spending summed over one calendar day.
type DayTotal struct {
	Date  time.Time
	Total float64
	Count int
}

// MonthTotal is spending summed over one calendar month.
// Month is formatted "2006-01".
type MonthTotal struct {
	Month string
	Total float64
	Count int
}

// CategoryTotal is spending summed per category. Share is the
// fraction of overall spend, in [0, 1].
type CategoryTotal struct {
	Category string
	Total    float64
	Share    float64
}

// TrendLine is the daily spending series with a least-squares fit.
// When Fitted is false there were not enough distinct days to fit a
// line and Values carries the raw series unchanged.
type TrendLine struct {
	Values    []float64
	Slope     float64
	Intercept float64
	Fitted    bool
}

// Direction reports the sign of the fitted slope: 1 rising, -1
// falling, 0 flat or unfitted.
func (t TrendLine) Direction() int {
	if !t.Fitted {
		return 0
	}
	switch {
	case t.Slope > 0:
		return 1
	case t.Slope < 0:
		return -1
	}
	return 0
}

// Summary is the headline view over a record set.
type Summary struct {
	Records          int
	Total            float64
	FirstDate        time.Time
	LastDate         time.Time
	DaysLogged       int
	AvgPerDay        float64
	AvgPerRecord     float64
	TopCategory      string
	TopCategoryTotal float64
	MonthTotal       float64 // current calendar month
}
