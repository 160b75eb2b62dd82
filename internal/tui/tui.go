// Package tui provides an interactive picker for contacts and conversations.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Item is one selectable entry. Detail is shown in the right-hand panel.
type Item struct {
	Title  string
	Note   string
	Detail string
}

type model struct {
	title       string
	items       []Item
	visible     []int // indexes into items, in display order
	cursor      int   // position in visible
	listOffset  int
	query       string
	filterInput textinput.Model
	detail      viewport.Model
	width       int
	height      int
	ready       bool
	quitting    bool
	chosen      int
}

func newModel(title string, items []Item) model {
	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.Focus()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 256

	return model{
		title:       title,
		items:       items,
		visible:     Filter(items, ""),
		filterInput: ti,
		detail:      viewport.New(0, 0),
		chosen:      -1,
	}
}

// Pick shows items and blocks until the user selects one or cancels.
// It returns the index of the chosen item, or -1 when cancelled.
func Pick(title string, items []Item) (int, error) {
	if len(items) == 0 {
		return -1, nil
	}
	p := tea.NewProgram(newModel(title, items), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return -1, fmt.Errorf("tui: %w", err)
	}
	return finalModel.(model).chosen, nil
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.detail = viewport.New(m.detailWidth(), m.panelHeight())
		m.detail.Style = stylePanelBorder
		m.refreshDetail()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Enter):
			if m.cursor < len(m.visible) {
				m.chosen = m.visible[m.cursor]
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustListScroll(m.panelHeight())
				m.refreshDetail()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
				m.adjustListScroll(m.panelHeight())
				m.refreshDetail()
			}
			return m, nil

		case key.Matches(msg, keys.PreviewUp):
			m.detail.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PreviewDn):
			m.detail.LineDown(m.panelHeight() / 2)
			return m, nil
		}

		// Pass remaining keys to text input
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		if q := m.filterInput.Value(); q != m.query {
			m.query = q
			m.visible = Filter(m.items, q)
			m.cursor = 0
			m.listOffset = 0
			m.refreshDetail()
		}
		return m, cmd
	}

	return m, nil
}

func (m *model) refreshDetail() {
	if m.cursor >= len(m.visible) {
		m.detail.SetContent("")
		return
	}
	m.detail.SetContent(m.items[m.visible[m.cursor]].Detail)
	m.detail.GotoTop()
}

func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	detailW := m.detailWidth()
	panelH := m.panelHeight()

	header := lipgloss.JoinHorizontal(lipgloss.Top, styleTitle.Render(m.title+"  "), m.filterInput.View())

	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(m.renderList(listW, panelH))

	m.detail.Width = detailW
	m.detail.Height = panelH
	detailPanel := styleActiveBorder.
		Width(detailW).
		Height(panelH).
		Render(m.detail.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)
	return lipgloss.JoinVertical(lipgloss.Left, header, panels, m.statusBar())
}

// helper methods

func (m model) listWidth() int {
	if m.width <= 0 {
		return 40
	}
	w := m.width*50/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) detailWidth() int {
	if m.width <= 0 {
		return 40
	}
	w := m.width*50/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// Subtract header (1) + status bar (1) + borders (4)
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

func (m model) statusBar() string {
	parts := []string{
		fmt.Sprintf("%d/%d", len(m.visible), len(m.items)),
		"type to filter",
		"up/dn navigate",
		"C-u/C-d details",
		"Enter select",
		"Esc cancel",
	}
	return styleStatusBar.Render(strings.Join(parts, " | "))
}
