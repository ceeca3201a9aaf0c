package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/musecli/muse/pkg/met"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// ObjectListModel is the bubbletea model for interactive object browsing.
// It shows one page of search results; enter selects the object under the
// cursor and quits.
type ObjectListModel struct {
	Objects  []met.Object
	Cursor   int
	Selected *met.Object
	Height   int
	Offset   int
}

// NewObjectListModel creates a new object list model.
func NewObjectListModel(objects []met.Object) ObjectListModel {
	return ObjectListModel{
		Objects: objects,
		Cursor:  0,
		Height:  15,
		Offset:  0,
	}
}

func (m ObjectListModel) Init() tea.Cmd {
	return nil
}

func (m ObjectListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Objects)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Objects) > 0 {
				obj := m.Objects[m.Cursor]
				m.Selected = &obj
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ObjectListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Object"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Objects) {
		end = len(m.Objects)
	}

	for i := m.Offset; i < end; i++ {
		obj := m.Objects[i]

		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		title := truncate(obj.DisplayTitle(), 44)
		meta := fmt.Sprintf("%s · %s", truncate(obj.DisplayArtist(), 28), obj.DisplayDate())

		b.WriteString(cursor)
		b.WriteString(style.Render(fmt.Sprintf("%-46s", title)))
		b.WriteString(" ")
		b.WriteString(listDimStyle.Render(meta))
		b.WriteString("\n")
	}

	if len(m.Objects) > m.Height {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render(fmt.Sprintf("%d-%d of %d", m.Offset+1, end, len(m.Objects))))
		b.WriteString("\n")
	}

	return b.String()
}
