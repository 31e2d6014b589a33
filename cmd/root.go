package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/outgo/internal/config"
	"github.com/theirongolddev/outgo/internal/model"
	"github.com/theirongolddev/outgo/internal/pipeline"
	"github.com/theirongolddev/outgo/internal/store"
)

var (
	flagFile     string
	flagYear     int
	flagMonth    int
	flagCategory string
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "outgo",
	Short: "Personal expense tracker CLI",
	Long:  "Track day-to-day spending: record expenses, then see daily totals, trends, monthly sums, and category breakdowns.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Expense CSV file (overrides config and OUTGO_DATA_FILE)")
	rootCmd.PersistentFlags().IntVarP(&flagYear, "year", "y", 0, "Filter to a year, e.g. 2024")
	rootCmd.PersistentFlags().IntVarP(&flagMonth, "month", "m", 0, "Filter to a month 1-12 (any year unless --year)")
	rootCmd.PersistentFlags().StringVarP(&flagCategory, "category", "c", "", "Filter to a category (substring match)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress skipped-row warnings")

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		if flagQuiet {
			zerolog.SetGlobalLevel(zerolog.ErrorLevel)
		}
		if flagMonth < 0 || flagMonth > 12 {
			return fmt.Errorf("invalid --month %d: want 1-12", flagMonth)
		}
		return nil
	}
}

// openStore is the shared loading path used by all commands: resolve
// the data file location, then mirror it into memory.
func openStore() (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return store.Open(config.DataPath(cfg, flagFile))
}

// applyFilters narrows records to the persistent year/month/category
// flags.
func applyFilters(records []model.Record) []model.Record {
	records = pipeline.FilterByMonth(records, flagYear, flagMonth)
	if flagCategory != "" {
		records = pipeline.FilterByCategory(records, flagCategory)
	}
	return records
}

// filterActive reports whether any record filter flag is set.
func filterActive() bool {
	return flagYear != 0 || flagMonth != 0 || flagCategory != ""
}

// filterLabel names the active filter, e.g. "2024-03" or "March / food".
func filterLabel() string {
	var parts []string
	switch {
	case flagYear != 0 && flagMonth != 0:
		parts = append(parts, fmt.Sprintf("%04d-%02d", flagYear, flagMonth))
	case flagYear != 0:
		parts = append(parts, strconv.Itoa(flagYear))
	case flagMonth != 0:
		parts = append(parts, time.Month(flagMonth).String())
	}
	if flagCategory != "" {
		parts = append(parts, flagCategory)
	}
	return strings.Join(parts, " / ")
}

// titleWithFilter appends the active filter to a section title.
func titleWithFilter(title string) string {
	if label := filterLabel(); label != "" {
		return title + "  " + label
	}
	return title
}

// noDataMessage distinguishes an empty ledger from an empty filter
// result.
func noDataMessage() string {
	if filterActive() {
		return "No expenses match the selected filter."
	}
	return "No expenses recorded. Add one with 'outgo add'."
}

// resolveByPosition maps a 1-based position, as printed in the first
// column of 'outgo list', to the record at that position.
func resolveByPosition(s *store.Store, arg string) (model.Record, error) {
	pos, err := strconv.Atoi(arg)
	if err != nil || pos < 1 {
		return model.Record{}, fmt.Errorf("invalid record number %q: want a position from 'outgo list'", arg)
	}
	return s.At(pos - 1)
}
