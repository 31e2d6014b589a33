package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import records from a CSV file",
	Long:  "Import records from a CSV file in date,category,amount,note order. Rows that fail validation are skipped and counted; a bad row never aborts the import.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	imported, skipped, err := s.ImportCSV(args[0])
	if err != nil {
		return err
	}

	if skipped > 0 {
		fmt.Printf("\n  Imported %d records (%d rows skipped).\n", imported, skipped)
	} else {
		fmt.Printf("\n  Imported %d records.\n", imported)
	}
	return nil
}
