package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/outgo/internal/config"
	"github.com/theirongolddev/outgo/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues backs the first-run setup form.
type setupValues struct {
	theme    string
	dataFile string
}

// newSetupForm builds the first-run wizard shown when no config exists.
func newSetupForm(recordCount int, dataFile string, v *setupValues) *huh.Form {
	v.theme = theme.Active.Name
	v.dataFile = dataFile

	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	found := "The file will be created on first save."
	if recordCount > 0 {
		found = fmt.Sprintf("%d records found.", recordCount)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.theme),
			huh.NewInput().
				Title("Expense file").
				Description(found).
				Value(&v.dataFile),
		).
			Title("Welcome to outgo").
			Description("A one-time setup. Esc keeps the defaults."),
	)
}

// saveSetupConfig persists the setup choices and applies the theme.
func (a *App) saveSetupConfig() error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	cfg.Appearance.Theme = a.setupVals.theme
	theme.SetActive(cfg.Appearance.Theme)

	if p := strings.TrimSpace(a.setupVals.dataFile); p != "" && p != config.DataPath(cfg, "") {
		cfg.General.DataFile = p
	}

	return config.Save(cfg)
}
