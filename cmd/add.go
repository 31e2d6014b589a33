package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/outgo/internal/cli"
	"github.com/theirongolddev/outgo/internal/model"
)

var (
	addDate     string
	addCategory string
	addAmount   string
	addNote     string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new expense",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "Date as YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Category (default Other)")
	addCmd.Flags().StringVar(&addAmount, "amount", "", "Amount, e.g. 12.50")
	addCmd.Flags().StringVar(&addNote, "note", "", "Free-text note")
	_ = addCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	date := addDate
	if date == "" {
		date = time.Now().Format(model.DateFormat)
	}

	rec, err := model.ParseRecord(date, addCategory, addAmount, addNote)
	if err != nil {
		return err
	}
	if err := s.Add(rec); err != nil {
		return err
	}

	fmt.Printf("\n  Added #%d: %s  %s  %s",
		s.Len(),
		rec.Date.Format(model.DateFormat),
		rec.Category,
		cli.FormatAmount(rec.Amount))
	if rec.Note != "" {
		fmt.Printf("  (%s)", rec.Note)
	}
	fmt.Println()
	return nil
}
