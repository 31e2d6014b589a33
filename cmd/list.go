package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/outgo/internal/cli"
	"github.com/theirongolddev/outgo/internal/model"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List records in storage order",
	Long:    "List expense records. The # column is the record's position in the full list, also when filters hide other rows, so it is always a valid argument to edit and delete.",
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	all := s.All()
	if len(all) == 0 {
		fmt.Println()
		fmt.Println("  No expenses recorded. Add one with 'outgo add'.")
		return nil
	}

	// Show filtered rows while keeping absolute positions.
	show := make(map[string]struct{})
	for _, r := range applyFilters(all) {
		show[r.ID] = struct{}{}
	}
	if len(show) == 0 {
		fmt.Println()
		fmt.Println("  " + noDataMessage())
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(titleWithFilter("EXPENSES")))
	fmt.Println()

	var total float64
	count := 0
	rows := make([][]string, 0, len(show)+2)
	for i, r := range all {
		if _, ok := show[r.ID]; !ok {
			continue
		}
		total += r.Amount
		count++
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Date.Format(model.DateFormat),
			r.Category,
			cli.FormatAmount(r.Amount),
			truncNote(r.Note, 32),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "", fmt.Sprintf("%d records", count), cli.FormatAmount(total), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "Date", "Category", "Amount", "Note"},
		Rows:    rows,
	}))

	return nil
}

// truncNote shortens long notes so the table stays narrow.
func truncNote(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
