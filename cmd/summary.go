package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/outgo/internal/cli"
	"github.com/theirongolddev/outgo/internal/model"
	"github.com/theirongolddev/outgo/internal/pipeline"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Headline spending summary",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	records := applyFilters(s.All())
	now := time.Now()

	summary, err := pipeline.Summarize(records, now)
	if errors.Is(err, pipeline.ErrNoData) {
		fmt.Println()
		fmt.Println("  " + noDataMessage())
		return nil
	}
	if err != nil {
		return err
	}

	days, err := pipeline.DailyTotals(records)
	if err != nil {
		return err
	}
	trend := pipeline.Trend(days)

	fmt.Println()
	fmt.Println(cli.RenderTitle(titleWithFilter("SPENDING SUMMARY")))
	fmt.Println()

	period := fmt.Sprintf("%s to %s",
		summary.FirstDate.Format(model.DateFormat),
		summary.LastDate.Format(model.DateFormat))

	rows := [][]string{
		{"Records", cli.FormatNumber(int64(summary.Records))},
		{"Total Spent", cli.FormatAmount(summary.Total)},
		{"Period", period},
		{"Days Logged", cli.FormatNumber(int64(summary.DaysLogged))},
		{"---"},
		{"Avg / Day", cli.FormatAmount(summary.AvgPerDay)},
		{"Avg / Record", cli.FormatAmount(summary.AvgPerRecord)},
		{"---"},
		{"Top Category", fmt.Sprintf("%s (%s)", summary.TopCategory, cli.FormatAmount(summary.TopCategoryTotal))},
	}

	// This month with delta against the month before
	prevYear, prevMonth := now.Year(), now.Month()
	if prevMonth == time.January {
		prevYear, prevMonth = prevYear-1, time.December
	} else {
		prevMonth--
	}
	var prevTotal float64
	for _, r := range pipeline.FilterByMonth(records, prevYear, int(prevMonth)) {
		prevTotal += r.Amount
	}
	monthStr := cli.FormatAmount(summary.MonthTotal)
	if prevTotal != 0 {
		monthStr += fmt.Sprintf("  (%s vs %s)",
			cli.FormatDelta(summary.MonthTotal, prevTotal), prevMonth.String()[:3])
	}
	rows = append(rows, []string{"This Month", monthStr})
	rows = append(rows, []string{"Daily Trend", trendLabel(trend)})

	table := cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}

	fmt.Print(cli.RenderTable(table))
	return nil
}

// trendLabel renders the fitted slope as a direction plus per-day
// rate.
func trendLabel(t model.TrendLine) string {
	if !t.Fitted {
		return "not enough days"
	}
	switch t.Direction() {
	case 1:
		return fmt.Sprintf("rising (+%s/day)", cli.FormatAmount(t.Slope))
	case -1:
		return fmt.Sprintf("falling (-%s/day)", cli.FormatAmount(-t.Slope))
	}
	return "flat"
}
