package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/outgo/internal/cli"
	"github.com/theirongolddev/outgo/internal/tui/components"
	"github.com/theirongolddev/outgo/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// recordsState holds the records tab state.
type recordsState struct {
	cursor      int
	offset      int // scroll offset for the list
	searching   bool
	searchInput textinput.Model
	searchQuery string
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "category or note"
	ti.CharLimit = 64
	ti.Width = 30
	ti.Prompt = "/"
	return ti
}

// updateRecordsSearch handles key events while the search input is focused.
func (a App) updateRecordsSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.recState.searchQuery = strings.TrimSpace(a.recState.searchInput.Value())
		a.recState.searching = false
		a.recState.cursor = 0
		a.recState.offset = 0
		return a, nil

	case "esc":
		a.recState.searching = false
		return a, nil
	}

	var cmd tea.Cmd
	a.recState.searchInput, cmd = a.recState.searchInput.Update(msg)
	return a, cmd
}

func (a App) renderRecordsTab(cw, contentH int) string {
	t := theme.Active
	rs := a.recState
	vis := a.visibleRecords()

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	negStyle := lipgloss.NewStyle().Foreground(t.Green)

	inner := components.CardInnerWidth(cw)

	var body strings.Builder

	if rs.searching {
		body.WriteString(rs.searchInput.View())
		body.WriteString("\n\n")
	}

	if len(vis) == 0 {
		if a.st != nil && a.st.Len() == 0 {
			body.WriteString(mutedStyle.Render("No records yet. Press a to add one."))
		} else {
			body.WriteString(mutedStyle.Render("No records match the filter."))
		}
		return components.ContentCard(a.recordsTitle(len(vis)), body.String(), cw)
	}

	// Column layout: date 10, amount 12, gap 2 each, note takes the rest
	noteW := inner - 10 - 14 - 12 - 6
	if noteW < 8 {
		noteW = 8
	}

	body.WriteString(headerStyle.Render(fmt.Sprintf("%-10s  %-14s  %12s  %-*s", "Date", "Category", "Amount", noteW, "Note")))
	body.WriteString("\n")

	// Rows visible in the card, following the cursor
	visible := contentH - 6 // card border (2) + title (1) + header (1) + footer hint (2)
	if rs.searching {
		visible -= 2
	}
	if visible < 3 {
		visible = 3
	}

	offset := rs.offset
	if rs.cursor < offset {
		offset = rs.cursor
	}
	if rs.cursor >= offset+visible {
		offset = rs.cursor - visible + 1
	}

	end := offset + visible
	if end > len(vis) {
		end = len(vis)
	}

	for i := offset; i < end; i++ {
		r := vis[i]
		amount := cli.FormatAmount(r.Amount)

		line := fmt.Sprintf("%-10s  %-14s  %12s  %-*s",
			r.Date.Format("2006-01-02"),
			truncStr(r.Category, 14),
			amount,
			noteW, truncStr(r.Note, noteW))
		if lipgloss.Width(line) > inner {
			line = truncStr(line, inner)
		}

		switch {
		case i == rs.cursor:
			body.WriteString(selectedStyle.Render(line))
		case r.Amount < 0:
			// Refunds and reimbursements land as negative amounts
			body.WriteString(negStyle.Render(line))
		default:
			body.WriteString(rowStyle.Render(line))
		}
		body.WriteString("\n")
	}

	if end < len(vis) {
		body.WriteString(mutedStyle.Render(fmt.Sprintf("… %d more", len(vis)-end)))
		body.WriteString("\n")
	}

	body.WriteString("\n")
	body.WriteString(mutedStyle.Render("[a]dd  [e]dit  [d]elete  [D]elete all  [/]search"))

	return components.ContentCard(a.recordsTitle(len(vis)), body.String(), cw)
}

func (a App) recordsTitle(visible int) string {
	total := 0
	if a.st != nil {
		total = a.st.Len()
	}
	if visible == total {
		return fmt.Sprintf("Records (%d)", total)
	}
	return fmt.Sprintf("Records (%d of %d)", visible, total)
}
