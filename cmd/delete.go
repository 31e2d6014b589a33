package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/outgo/internal/cli"
	"github.com/theirongolddev/outgo/internal/model"
)

var (
	deleteAll bool
	deleteYes bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete [n]",
	Short: "Delete the record at position n, or everything with --all",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteAll, "all", false, "Delete every record")
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	if deleteAll {
		if len(args) > 0 {
			return errors.New("--all does not take a record number")
		}
		if s.Len() == 0 {
			fmt.Println("  Nothing to delete.")
			return nil
		}
		if !deleteYes && !confirm(fmt.Sprintf("Delete all %d records?", s.Len())) {
			fmt.Println("  Aborted.")
			return nil
		}
		if err := s.Clear(); err != nil {
			return err
		}
		fmt.Println("  All records deleted.")
		return nil
	}

	if len(args) == 0 {
		return errors.New("pass a record number from 'outgo list', or --all")
	}

	rec, err := resolveByPosition(s, args[0])
	if err != nil {
		return err
	}
	desc := fmt.Sprintf("%s  %s  %s",
		rec.Date.Format(model.DateFormat), rec.Category, cli.FormatAmount(rec.Amount))
	if !deleteYes && !confirm(fmt.Sprintf("Delete #%s (%s)?", args[0], desc)) {
		fmt.Println("  Aborted.")
		return nil
	}
	if err := s.Delete(rec.ID); err != nil {
		return err
	}

	fmt.Printf("  Deleted #%s (%s).\n", args[0], desc)
	return nil
}

// confirm prompts y/N on stdin.
func confirm(prompt string) bool {
	fmt.Printf("  %s [y/N] ", prompt)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
