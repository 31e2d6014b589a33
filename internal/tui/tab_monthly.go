package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/outgo/internal/cli"
	"github.com/theirongolddev/outgo/internal/model"
	"github.com/theirongolddev/outgo/internal/tui/components"
	"github.com/theirongolddev/outgo/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderMonthlyTab(cw int) string {
	t := theme.Active

	if len(a.months) == 0 {
		return noDataCard("Monthly", cw)
	}

	var b strings.Builder

	// Row 1: Monthly totals chart
	chartVals := make([]float64, len(a.months))
	for i, m := range a.months {
		chartVals[i] = m.Total
	}
	innerW := components.CardInnerWidth(cw)
	b.WriteString(components.ContentCard(
		"Monthly Spending",
		components.BarChart(chartVals, monthAxisLabels(a.months), t.Blue, innerW, 10),
		cw,
	))
	b.WriteString("\n")

	// Row 2: Per-month table
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	deltaStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var table strings.Builder
	table.WriteString(headerStyle.Render(fmt.Sprintf("%-10s %8s %14s   %s", "Month", "Records", "Total", "vs Prev")))
	table.WriteString("\n")

	for i, m := range a.months {
		delta := ""
		if i > 0 {
			delta = cli.FormatDelta(m.Total, a.months[i-1].Total)
		}
		table.WriteString(rowStyle.Render(fmt.Sprintf("%-10s %8s %14s",
			cli.FormatMonth(m.Month),
			cli.FormatNumber(int64(m.Count)),
			cli.FormatAmount(m.Total))))
		if delta != "" {
			table.WriteString(deltaStyle.Render("   " + delta))
		}
		table.WriteString("\n")
	}

	b.WriteString(components.ContentCard("By Month", table.String(), cw))

	return b.String()
}

// monthAxisLabels renders "2006-01" keys as short month names, keeping
// the year on January and on the first bar so year boundaries read.
func monthAxisLabels(months []model.MonthTotal) []string {
	labels := make([]string, len(months))
	for i, m := range months {
		dt, err := time.Parse("2006-01", m.Month)
		if err != nil {
			labels[i] = m.Month
			continue
		}
		if i == 0 || dt.Month() == time.January {
			labels[i] = dt.Format("Jan06")
		} else {
			labels[i] = dt.Format("Jan")
		}
	}
	return labels
}
