package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/outgo/internal/cli"
	"github.com/theirongolddev/outgo/internal/pipeline"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "Category breakdown (top 6 plus Other)",
	RunE:    runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	records := applyFilters(s.All())
	cats, err := pipeline.CategoryTotals(records)
	if errors.Is(err, pipeline.ErrNoData) {
		fmt.Println()
		fmt.Println("  " + noDataMessage())
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(titleWithFilter("CATEGORY BREAKDOWN")))
	fmt.Println()

	var maxTotal float64
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{
			c.Category,
			cli.FormatAmount(c.Total),
			cli.FormatPercent(c.Share),
		})
		if c.Total > maxTotal {
			maxTotal = c.Total
		}
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Total", "Share"},
		Rows:    rows,
	}))

	fmt.Println()
	for _, c := range cats {
		fmt.Printf("  %-15s%s  %s\n",
			c.Category,
			cli.RenderHorizontalBar(c.Total, maxTotal, 36),
			cli.FormatPercent(c.Share))
	}

	return nil
}
