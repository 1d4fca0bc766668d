package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/truemindlabs-dev/synora/pkg/engine"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// StyleListModel - Interactive style selection
// =============================================================================

// StyleListModel is the bubbletea model for interactive style selection.
type StyleListModel struct {
	Styles   []engine.Style
	Cursor   int
	Selected engine.Style
}

// NewStyleListModel creates a style list over the concrete styles.
func NewStyleListModel() StyleListModel {
	var styles []engine.Style
	for _, s := range engine.Styles() {
		if s != engine.StyleAuto {
			styles = append(styles, s)
		}
	}
	return StyleListModel{Styles: styles}
}

func (m StyleListModel) Init() tea.Cmd {
	return nil
}

func (m StyleListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Styles)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Styles[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m StyleListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Style"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, s := range m.Styles {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		line := cursor + style.Render(string(s))
		if kw := engine.Keywords(s); len(kw) > 0 {
			preview := strings.Join(kw, ", ")
			if len(preview) > 50 {
				preview = preview[:50] + "…"
			}
			line += "  " + listDimStyle.Render(preview)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
