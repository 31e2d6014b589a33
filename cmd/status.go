package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/outgo/internal/cli"
	"github.com/theirongolddev/outgo/internal/config"
	"github.com/theirongolddev/outgo/internal/model"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "One-glance snapshot of the ledger",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("OUTGO STATUS"))
	fmt.Println()

	rows := [][]string{
		{"Data File", s.Path()},
		{"Records", cli.FormatNumber(int64(s.Len()))},
	}

	now := time.Now()
	var monthTotal float64
	for _, r := range s.ByMonth(now.Year(), int(now.Month())) {
		monthTotal += r.Amount
	}
	rows = append(rows, []string{"This Month", cli.FormatAmount(monthTotal)})

	if s.Len() > 0 {
		last, err := s.At(s.Len() - 1)
		if err != nil {
			return err
		}
		rows = append(rows, []string{"Last Entry", fmt.Sprintf("%s  %s  %s",
			last.Date.Format(model.DateFormat), last.Category, cli.FormatAmount(last.Amount))})
	}

	cfgNote := "defaults (run 'outgo setup' to create one)"
	if config.Exists() {
		cfgNote = config.ConfigPath()
	}
	rows = append(rows, []string{"Config", cfgNote})

	fmt.Print(cli.RenderTable(cli.Table{Rows: rows}))
	return nil
}
