package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/outgo/internal/cli"
	"github.com/theirongolddev/outgo/internal/tui/components"
	"github.com/theirongolddev/outgo/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCategoriesTab(cw int) string {
	t := theme.Active

	if len(a.categories) == 0 {
		return noDataCard("Categories", cw)
	}

	var b strings.Builder

	// Row 1: Metric cards
	metrics := []components.Metric{
		{Label: "Total Spent", Value: cli.FormatAmount(a.summary.Total)},
		{Label: "Top Category", Value: a.summary.TopCategory, Delta: cli.FormatAmount(a.summary.TopCategoryTotal)},
		{Label: "Categories", Value: cli.FormatNumber(int64(len(a.categories)))},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Row 2: Share bars, largest first
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	innerW := components.CardInnerWidth(cw)

	nameW := 16
	amountW := 12
	barW := innerW - nameW - amountW - 8 // bar + " NN%" suffix from ProgressBar
	if barW < 10 {
		barW = 10
	}

	var rows strings.Builder
	for _, c := range a.categories {
		rows.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(c.Category, nameW-1))))
		rows.WriteString(components.ProgressBar(c.Share, barW))
		rows.WriteString(amountStyle.Render(fmt.Sprintf("%*s", amountW, cli.FormatAmount(c.Total))))
		rows.WriteString("\n")
	}

	b.WriteString(components.ContentCard("By Category", rows.String(), cw))

	return b.String()
}
