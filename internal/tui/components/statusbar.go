package components

import (
	"fmt"

	"github.com/theirongolddev/outgo/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// a transient notice plus record count and file name on the right.
func RenderStatusBar(width, records int, file, notice string) string {
	t := theme.Active

	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	noticeStyle := lipgloss.NewStyle().Foreground(t.AccentBright)

	left := " [?]help  [q]uit"

	right := muted.Render(fmt.Sprintf("%d records · %s ", records, file))
	if notice != "" {
		right = noticeStyle.Render(notice) + "  " + right
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := muted.Render(left)
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return bar
}
