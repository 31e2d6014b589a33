package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/outgo/internal/cli"
	"github.com/theirongolddev/outgo/internal/model"
)

var (
	editDate     string
	editCategory string
	editAmount   string
	editNote     string
)

var editCmd = &cobra.Command{
	Use:   "edit <n>",
	Short: "Edit the record at position n (see 'outgo list')",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editDate, "date", "", "New date as YYYY-MM-DD")
	editCmd.Flags().StringVar(&editCategory, "category", "", "New category")
	editCmd.Flags().StringVar(&editAmount, "amount", "", "New amount")
	editCmd.Flags().StringVar(&editNote, "note", "", "New note (empty clears it)")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	current, err := resolveByPosition(s, args[0])
	if err != nil {
		return err
	}

	changed := false
	date := current.Date.Format(model.DateFormat)
	if cmd.Flags().Changed("date") {
		date, changed = editDate, true
	}
	category := current.Category
	if cmd.Flags().Changed("category") {
		category, changed = editCategory, true
	}
	amount := strconv.FormatFloat(current.Amount, 'f', -1, 64)
	if cmd.Flags().Changed("amount") {
		amount, changed = editAmount, true
	}
	note := current.Note
	if cmd.Flags().Changed("note") {
		note, changed = editNote, true
	}
	if !changed {
		return errors.New("nothing to change: pass at least one of --date, --category, --amount, --note")
	}

	rec, err := model.ParseRecord(date, category, amount, note)
	if err != nil {
		return err
	}
	if err := s.Update(current.ID, rec); err != nil {
		return err
	}

	fmt.Printf("\n  Updated #%s: %s  %s  %s",
		args[0],
		rec.Date.Format(model.DateFormat),
		rec.Category,
		cli.FormatAmount(rec.Amount))
	if rec.Note != "" {
		fmt.Printf("  (%s)", rec.Note)
	}
	fmt.Println()
	return nil
}
