// Package tui provides the interactive Bubble Tea dashboard for outgo.
package tui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/outgo/internal/model"
	"github.com/theirongolddev/outgo/internal/pipeline"
	"github.com/theirongolddev/outgo/internal/store"
	"github.com/theirongolddev/outgo/internal/tui/components"
	"github.com/theirongolddev/outgo/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// storeLoadedMsg is sent when the store finishes opening.
type storeLoadedMsg struct {
	st   *store.Store
	err  error
	took time.Duration
}

// Tab indices, in tab bar order.
const (
	tabRecords = iota
	tabTrend
	tabMonthly
	tabCategories
	tabSettings
)

// App is the root Bubble Tea model.
type App struct {
	// Data
	st       *store.Store
	loaded   bool
	loadErr  error
	loadTime time.Duration

	// Pre-computed for the current filter
	records    []model.Record
	days       []model.DayTotal
	trend      model.TrendLine
	months     []model.MonthTotal
	categories []model.CategoryTotal
	summary    model.Summary

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	notice    string

	// Filter state
	year     int
	month    int
	category string

	// Per-tab state
	recState recordsState
	settings settingsState

	// Modal form (add/edit/filter/confirm); nil when no form is open
	form       *huh.Form
	formKind   formKind
	recVals    recordValues
	filterVals filterValues
	confirmed  bool
	targetID   string

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	// Loading
	spinner spinner.Model

	dataFile string
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 140

	minContentHeight = 5 // minimum content area height
)

// NewApp creates a new TUI app model. year, month, and category seed the
// filter from the command line; zero values mean unfiltered.
func NewApp(dataFile string, needSetup bool, year, month int, category string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		dataFile:  dataFile,
		needSetup: needSetup,
		year:      year,
		month:     month,
		category:  category,
		spinner:   sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadStoreCmd(a.dataFile),
		a.spinner.Tick,
	)
}

// loadStoreCmd opens the expense file in a background goroutine.
func loadStoreCmd(path string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		st, err := store.Open(path)
		return storeLoadedMsg{st: st, err: err, took: time.Since(start)}
	}
}

// recompute rebuilds every aggregate from the current filter. The records
// tab cursor stays on the same record ID when it survives the rebuild.
func (a *App) recompute() {
	if a.st == nil {
		return
	}

	var selectedID string
	if vis := a.visibleRecords(); a.recState.cursor >= 0 && a.recState.cursor < len(vis) {
		selectedID = vis[a.recState.cursor].ID
	}

	snapshot := pipeline.FilterByMonth(a.st.All(), a.year, a.month)
	if a.category != "" {
		snapshot = pipeline.FilterByCategory(snapshot, a.category)
	}
	a.records = snapshot

	a.days = nil
	a.trend = model.TrendLine{}
	a.months = nil
	a.categories = nil
	a.summary = model.Summary{}

	if days, err := pipeline.DailyTotals(snapshot); err == nil {
		a.days = days
		a.trend = pipeline.Trend(days)
		a.months = pipeline.MonthlyTotals(days)
	}
	if cats, err := pipeline.CategoryTotals(snapshot); err == nil {
		a.categories = cats
	}
	if sum, err := pipeline.Summarize(snapshot, time.Now()); err == nil {
		a.summary = sum
	}

	vis := a.visibleRecords()
	a.recState.cursor = 0
	for i, r := range vis {
		if r.ID == selectedID {
			a.recState.cursor = i
			break
		}
	}
	if a.recState.cursor >= len(vis) {
		a.recState.cursor = len(vis) - 1
	}
	if a.recState.cursor < 0 {
		a.recState.cursor = 0
	}
}

// visibleRecords returns the filtered snapshot narrowed by the records
// tab search query.
func (a App) visibleRecords() []model.Record {
	if a.recState.searchQuery == "" {
		return a.records
	}
	return pipeline.Search(a.records, a.recState.searchQuery)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(a.formWidth())
		}
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth())
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.form != nil || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabRecords && !a.recState.searching {
				if a.recState.cursor > 0 {
					a.recState.cursor--
				}
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.activeTab == tabRecords && !a.recState.searching {
				if a.recState.cursor < len(a.visibleRecords())-1 {
					a.recState.cursor++
				}
			}
			return a, nil

		case tea.MouseButtonLeft:
			// The tab bar occupies the first line
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case storeLoadedMsg:
		a.st = msg.st
		a.loadErr = msg.err
		a.loaded = true
		a.loadTime = msg.took
		if msg.err == nil {
			a.recompute()
		}

		// Activate first-run setup after the store loads
		if a.needSetup && a.loadErr == nil {
			count := 0
			if a.st != nil {
				count = a.st.Len()
			}
			a.setupForm = newSetupForm(count, a.dataFile, &a.setupVals).WithWidth(a.formWidth())
			return a, a.setupForm.Init()
		}

		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to whichever form is active (cursor
	// blinks, spinner frames inside huh, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.form != nil {
		return a.updateModalForm(msg)
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global: quit
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if !a.loaded {
		return a, nil
	}

	if a.loadErr != nil {
		if key == "q" {
			return a, tea.Quit
		}
		return a, nil
	}

	// First-run setup wizard intercepts all keys
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// An open form intercepts all keys
	if a.form != nil {
		return a.updateModalForm(msg)
	}

	// Records search mode intercepts all keys when active
	if a.activeTab == tabRecords && a.recState.searching {
		return a.updateRecordsSearch(msg)
	}

	// Any other keypress retires the last action notice
	a.notice = ""

	// Help toggle
	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}

	// Dismiss help
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Records tab has its own keybindings
	if a.activeTab == tabRecords {
		vis := a.visibleRecords()

		switch key {
		case "/":
			a.recState.searching = true
			a.recState.searchInput = newSearchInput()
			a.recState.searchInput.Focus()
			return a, a.recState.searchInput.Cursor.BlinkCmd()
		case "esc":
			if a.recState.searchQuery != "" {
				a.recState.searchQuery = ""
				a.recState.cursor = 0
				a.recState.offset = 0
			}
			return a, nil
		case "j", "down":
			if a.recState.cursor < len(vis)-1 {
				a.recState.cursor++
			}
			return a, nil
		case "k", "up":
			if a.recState.cursor > 0 {
				a.recState.cursor--
			}
			return a, nil
		case "g":
			a.recState.cursor = 0
			a.recState.offset = 0
			return a, nil
		case "G":
			a.recState.cursor = len(vis) - 1
			if a.recState.cursor < 0 {
				a.recState.cursor = 0
			}
			return a, nil
		case "a":
			return a.openAddForm()
		case "e":
			return a.openEditForm()
		case "d":
			return a.openDeleteForm()
		case "D":
			return a.openClearForm()
		}
	}

	// Settings tab navigation
	if a.activeTab == tabSettings {
		switch key {
		case "j", "down":
			if a.settings.cursor < len(theme.All)-1 {
				a.settings.cursor++
			}
			return a, nil
		case "k", "up":
			if a.settings.cursor > 0 {
				a.settings.cursor--
			}
			return a, nil
		case "enter":
			a.applyTheme()
			return a, nil
		}
	}

	// Global keys
	switch key {
	case "q":
		return a, tea.Quit
	case "f":
		return a.openFilterForm()
	case "F":
		a.year, a.month, a.category = 0, 0, ""
		a.recompute()
		a.notice = "filter cleared"
		return a, nil
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	// Tab jumps (r/t/m/c/x)
	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
		}
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		saveErr := a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		if saveErr != nil {
			a.notice = "config not saved: " + saveErr.Error()
		}

		// A new data file means the loaded store is the wrong one
		newPath := strings.TrimSpace(a.setupVals.dataFile)
		if newPath != "" && newPath != a.dataFile {
			a.dataFile = newPath
			a.loaded = false
			return a, tea.Batch(loadStoreCmd(newPath), a.spinner.Tick)
		}
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) formWidth() int {
	w := a.width - 8
	if w > 64 {
		w = 64
	}
	if w < 40 {
		w = 40
	}
	return w
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.loadErr != nil {
		return a.viewLoadError()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.viewCentered(a.setupForm.View())
	}

	if a.form != nil {
		return a.viewCentered(a.form.View())
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  outgo needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ outgo"))
	b.WriteString(subtitleStyle.Render(" · Expense Tracker"))
	b.WriteString("\n\n")
	b.WriteString(spinnerStyle.Render(a.spinner.View()))
	b.WriteString(subtitleStyle.Render(" Reading expense file..."))

	return a.viewCentered(cardStyle.Render(b.String()))
}

func (a App) viewLoadError() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Background(t.Surface).
		Padding(1, 3)

	errStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var b strings.Builder
	b.WriteString(errStyle.Render("Could not open expense file"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(truncStr(a.loadErr.Error(), 60)))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render("Press q to quit"))

	return a.viewCentered(cardStyle.Render(b.String()))
}

// viewCentered places content mid-screen over the theme background.
func (a App) viewCentered(content string) string {
	t := theme.Active
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"r t m c x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Move selection"},
		{"g G", "First / Last record"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"a", "Add record"},
		{"e", "Edit selected"},
		{"d", "Delete selected"},
		{"D", "Delete all records"},
		{"/", "Search records"},
		{"f", "Filter by month / category"},
		{"F", "Clear filter"},
		{"Esc", "Back / Cancel"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return a.viewCentered(cardStyle.Render(b.String()))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Render header (tab bar + filter pill)
	filterPillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	filterAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	filterStr := filterPillStyle.Render(" ") + filterAccentStyle.Render(a.filterText())

	filterRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		filterRowStyle.Render(filterStr)

	// 2. Render status bar
	count := 0
	if a.st != nil {
		count = a.st.Len()
	}
	statusBar := components.RenderStatusBar(w, count, filepath.Base(a.dataFile), a.notice)

	// 3. Calculate content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Render tab content
	var content string
	switch a.activeTab {
	case tabRecords:
		content = a.renderRecordsTab(cw, contentH)
	case tabTrend:
		content = a.renderTrendTab(cw)
	case tabMonthly:
		content = a.renderMonthlyTab(cw)
	case tabCategories:
		content = a.renderCategoriesTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background (fixes gaps between cards)
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	// 8. Stack vertically
	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	// 9. Ensure the entire terminal is filled with background
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// filterText describes the active filter for the header pill.
func (a App) filterText() string {
	var parts []string
	switch {
	case a.year != 0 && a.month != 0:
		parts = append(parts, fmt.Sprintf("%04d-%02d", a.year, a.month))
	case a.year != 0:
		parts = append(parts, strconv.Itoa(a.year))
	case a.month != 0:
		parts = append(parts, time.Month(a.month).String())
	}
	if a.category != "" {
		parts = append(parts, a.category)
	}
	if a.recState.searchQuery != "" {
		parts = append(parts, "/"+a.recState.searchQuery)
	}
	if len(parts) == 0 {
		return "all records"
	}
	return strings.Join(parts, " │ ")
}

// noDataCard is the shared empty state for chart tabs.
func noDataCard(title string, cw int) string {
	t := theme.Active
	body := lipgloss.NewStyle().Foreground(t.TextMuted).Render("No data for the selected filter")
	return components.ContentCard(title, body, cw)
}

// ─── Helpers ────────────────────────────────────────────────────

// chartDateLabels builds compact X-axis labels for an ascending day series.
// Month boundaries show the month abbreviation; other days show the day
// number, except the last label which is always the day number.
func chartDateLabels(days []model.DayTotal) []string {
	n := len(days)
	labels := make([]string, n)
	prevMonth := time.Month(0)
	for i, d := range days {
		m := d.Date.Month()
		day := d.Date.Day()
		switch {
		case i == 0:
			labels[i] = d.Date.Format("Jan")
		case i == n-1:
			labels[i] = strconv.Itoa(day)
		case m != prevMonth:
			labels[i] = d.Date.Format("Jan")
		default:
			labels[i] = strconv.Itoa(day)
		}
		prevMonth = m
	}
	return labels
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar:
// one leading space, two spaces between tabs.
func (a App) tabAtX(x int) int {
	pos := 1
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		if i < len(components.Tabs)-1 {
			pos += 2
		}
	}
	return -1
}
