package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepelog/skykeep-puzzle/pkg/puzzle"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// GridPickerModel - Interactive arrangement selection
// =============================================================================

// GridPickerModel is the bubbletea model for picking one arrangement
// out of a shuffled candidate list.
type GridPickerModel struct {
	Grids    []puzzle.Grid
	Cursor   int
	Selected *puzzle.Grid
}

// NewGridPickerModel creates a new grid picker model.
func NewGridPickerModel(grids []puzzle.Grid) GridPickerModel {
	return GridPickerModel{Grids: grids}
}

func (m GridPickerModel) Init() tea.Cmd {
	return nil
}

func (m GridPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Grids)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Grids[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m GridPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Arrangement"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows: navigate  enter: select  q: quit"))
	b.WriteString("\n\n")

	for i, g := range m.Grids {
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}

		empty, _ := g.EmptyTile()
		line := fmt.Sprintf("%s%-40s  %s", cursor, g.String(),
			listDimStyle.Render(fmt.Sprintf("empty at %d", empty)))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Grids))))
	b.WriteString("\n")

	return b.String()
}
