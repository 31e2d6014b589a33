package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/outgo/internal/cli"
	"github.com/theirongolddev/outgo/internal/config"
	"github.com/theirongolddev/outgo/internal/tui/components"
	"github.com/theirongolddev/outgo/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int   // index into theme.All
	saved   bool  // flash "saved" after a successful apply
	saveErr error // non-nil if the last save failed
}

// applyTheme activates the theme under the cursor and persists it.
func (a *App) applyTheme() {
	if a.settings.cursor < 0 || a.settings.cursor >= len(theme.All) {
		return
	}
	name := theme.All[a.settings.cursor].Name
	theme.SetActive(name)

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	cfg.Appearance.Theme = name
	a.settings.saveErr = config.Save(cfg)
	a.settings.saved = a.settings.saveErr == nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	// Theme picker
	var themeBody strings.Builder
	for i, th := range theme.All {
		radio := "( )"
		if th.Name == t.Name {
			radio = "(o)"
		}
		line := fmt.Sprintf("%s %s", radio, th.Name)

		if i == a.settings.cursor {
			themeBody.WriteString(markerStyle.Render("▸ "))
			themeBody.WriteString(selectedStyle.Render(line))
		} else {
			themeBody.WriteString(labelStyle.Render("  "))
			themeBody.WriteString(valueStyle.Render(line))
		}
		themeBody.WriteString("\n")
	}

	themeBody.WriteString("\n")
	switch {
	case a.settings.saveErr != nil:
		themeBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
		themeBody.WriteString("\n")
	case a.settings.saved:
		themeBody.WriteString(greenStyle.Render("Saved!"))
		themeBody.WriteString("\n")
	}
	themeBody.WriteString(labelStyle.Render("[j/k] select  [Enter] apply"))

	// General info
	count := 0
	path := a.dataFile
	if a.st != nil {
		count = a.st.Len()
		path = a.st.Path()
	}

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Expense file:  ") + valueStyle.Render(path) + "\n")
	infoBody.WriteString(labelStyle.Render("Records:       ") + valueStyle.Render(cli.FormatNumber(int64(count))) + "\n")
	infoBody.WriteString(labelStyle.Render("Load time:     ") + valueStyle.Render(fmt.Sprintf("%dms", a.loadTime.Milliseconds())) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:   ") + valueStyle.Render(config.ConfigPath()) + "\n")
	infoBody.WriteString(labelStyle.Render("Filter:        ") + valueStyle.Render(a.filterText()))
	if a.year != 0 || a.month != 0 || a.category != "" {
		infoBody.WriteString(labelStyle.Render("  ([F] clears)"))
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("Theme", themeBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
