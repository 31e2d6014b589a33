package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export all records to a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	if err := s.ExportCSV(args[0]); err != nil {
		return err
	}

	fmt.Printf("\n  Exported %d records to %s.\n", s.Len(), args[0])
	return nil
}
