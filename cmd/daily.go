package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/outgo/internal/cli"
	"github.com/theirongolddev/outgo/internal/model"
	"github.com/theirongolddev/outgo/internal/pipeline"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Spending per day",
	RunE:  runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
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

	fmt.Println()
	fmt.Println(cli.RenderTitle(titleWithFilter("DAILY SPENDING")))
	fmt.Println()

	var total float64
	rows := make([][]string, 0, len(days)+2)
	for _, d := range days {
		total += d.Total
		rows = append(rows, []string{
			d.Date.Format(model.DateFormat),
			cli.FormatDayOfWeek(int(d.Date.Weekday())),
			cli.FormatNumber(int64(d.Count)),
			cli.FormatAmount(d.Total),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", "", cli.FormatNumber(int64(len(records))), cli.FormatAmount(total)})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Records", "Total"},
		Rows:    rows,
	}))

	trend := pipeline.Trend(days)
	fmt.Printf("\n  %s\n", cli.RenderSparkline(trend.Values))
	fmt.Printf("  Trend: %s\n", trendLabel(trend))

	return nil
}
