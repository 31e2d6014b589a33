package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/outgo/internal/cli"
	"github.com/theirongolddev/outgo/internal/pipeline"
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Spending per month",
	RunE:  runMonthly,
}

func init() {
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	records := applyFilters(s.All())
	days, err := pipeline.DailyTotals(records)
	if errors.Is(err, pipeline.ErrNoData) {
		fmt.Println()
		fmt.Println("  " + noDataMessage())
		return nil
	}
	if err != nil {
		return err
	}
	months := pipeline.MonthlyTotals(days)

	fmt.Println()
	fmt.Println(cli.RenderTitle(titleWithFilter("MONTHLY SPENDING")))
	fmt.Println()

	rows := make([][]string, 0, len(months))
	var prev, maxTotal float64
	for i, m := range months {
		delta := ""
		if i > 0 {
			delta = cli.FormatDelta(m.Total, prev)
		}
		rows = append(rows, []string{
			cli.FormatMonth(m.Month),
			cli.FormatNumber(int64(m.Count)),
			cli.FormatAmount(m.Total),
			delta,
		})
		prev = m.Total
		if m.Total > maxTotal {
			maxTotal = m.Total
		}
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Records", "Total", "vs Prev"},
		Rows:    rows,
	}))

	fmt.Println()
	for _, m := range months {
		fmt.Printf("  %-10s%s  %s\n",
			cli.FormatMonth(m.Month),
			cli.RenderHorizontalBar(m.Total, maxTotal, 36),
			cli.FormatAmount(m.Total))
	}

	return nil
}
