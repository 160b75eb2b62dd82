package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// linesPerItem is the number of terminal lines each item occupies.
const linesPerItem = 2

// renderList renders the left panel: filtered items with scrolling.
func (m model) renderList(width, height int) string {
	if len(m.visible) == 0 {
		return lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No matches")
	}

	var lines []string
	for pos, idx := range m.visible {
		if pos < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		lines = append(lines, formatItemLine(idx+1, m.items[idx], width, pos == m.cursor)...)
	}

	// Pad remaining lines
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// formatItemLine formats a single item as two lines:
//
//	line 1: [>] n. title
//	line 2:    note (dimmed)
func formatItemLine(number int, it Item, width int, selected bool) []string {
	prefix := fmt.Sprintf("%d. ", number)
	titleMax := width - 2 - runewidth.StringWidth(prefix)
	if titleMax < 0 {
		titleMax = 0
	}
	title := strings.ReplaceAll(it.Title, "\n", " ")
	if runewidth.StringWidth(title) > titleMax {
		title = runewidth.Truncate(title, titleMax, "")
	}

	var line1 string
	if selected {
		line1 = styleListSelected.Render("> " + prefix + title)
	} else {
		line1 = "  " + styleListNormal.Render(prefix+title)
	}

	noteMax := width - 4
	if noteMax < 0 {
		noteMax = 0
	}
	note := strings.ReplaceAll(it.Note, "\n", " ")
	if runewidth.StringWidth(note) > noteMax {
		note = runewidth.Truncate(note, noteMax, "")
	}
	line2 := "    " + styleListNote.Render(note)

	return []string{line1, line2}
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	visibleItems := listHeight / linesPerItem
	if visibleItems < 1 {
		visibleItems = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleItems {
		m.listOffset = m.cursor - visibleItems + 1
	}
}
