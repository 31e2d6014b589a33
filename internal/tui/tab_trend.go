package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/outgo/internal/cli"
	"github.com/theirongolddev/outgo/internal/model"
	"github.com/theirongolddev/outgo/internal/tui/components"
	"github.com/theirongolddev/outgo/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderTrendTab(cw int) string {
	t := theme.Active

	if len(a.days) == 0 {
		return noDataCard("Trend", cw)
	}

	var b strings.Builder

	// Row 1: Metric cards
	slopeDelta := "need two days or more"
	if a.trend.Fitted {
		slopeDelta = fmt.Sprintf("%+.2f/day", a.trend.Slope)
	}
	metrics := []components.Metric{
		{Label: "Total Spent", Value: cli.FormatAmount(a.summary.Total)},
		{Label: "Avg per Day", Value: cli.FormatAmount(a.summary.AvgPerDay)},
		{Label: "Days Logged", Value: cli.FormatNumber(int64(a.summary.DaysLogged))},
		{Label: "Trend", Value: trendWord(a.trend), Delta: slopeDelta},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Row 2: Daily spending chart
	chartVals := make([]float64, len(a.days))
	for i, d := range a.days {
		chartVals[i] = d.Total
	}
	innerW := components.CardInnerWidth(cw)
	b.WriteString(components.ContentCard(
		"Daily Spending",
		components.BarChart(chartVals, chartDateLabels(a.days), t.Blue, innerW, 10),
		cw,
	))
	b.WriteString("\n")

	// Row 3: Fitted trend line
	var fit strings.Builder
	fit.WriteString(components.Sparkline(fittedValues(a.trend), trendColor(a.trend)))
	fit.WriteString("\n")
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	if a.trend.Fitted {
		fit.WriteString(mutedStyle.Render(fmt.Sprintf(
			"least-squares fit: start %s, %s per day",
			cli.FormatAmount(a.trend.Intercept),
			cli.FormatDelta(a.trend.Slope, 0))))
	} else {
		fit.WriteString(mutedStyle.Render("log two or more days to fit a trend"))
	}
	b.WriteString(components.ContentCard("Trend Line", fit.String(), cw))

	return b.String()
}

// trendWord names the fitted direction.
func trendWord(t model.TrendLine) string {
	switch t.Direction() {
	case 1:
		return "rising"
	case -1:
		return "falling"
	default:
		if !t.Fitted {
			return "n/a"
		}
		return "flat"
	}
}

// trendColor colors the trend by direction. Spending going up is the
// alarming case here, so rising is red and falling is green.
func trendColor(tl model.TrendLine) lipgloss.Color {
	t := theme.Active
	switch tl.Direction() {
	case 1:
		return t.Red
	case -1:
		return t.Green
	default:
		return t.TextMuted
	}
}

// fittedValues evaluates the fitted line over the series, clamped at
// zero so the sparkline stays meaningful for short noisy ranges.
func fittedValues(t model.TrendLine) []float64 {
	if !t.Fitted {
		return t.Values
	}
	out := make([]float64, len(t.Values))
	for i := range out {
		v := t.Intercept + t.Slope*float64(i)
		if v < 0 {
			v = 0
		}
		out[i] = v
	}
	return out
}
