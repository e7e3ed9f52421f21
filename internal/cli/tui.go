package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Evgya/anime-analysis/pkg/dataset"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ColumnListModel - Interactive column selection
// =============================================================================

// columnRow caches the display stats for one dataset column.
type columnRow struct {
	Name    string
	Numeric bool
	Missing int
	Present int
}

// ColumnListModel is the bubbletea model for interactive column selection.
type ColumnListModel struct {
	Rows     []columnRow
	Cursor   int
	Selected string
	Height   int
	Offset   int
}

// NewColumnListModel creates a column list model from a dataset.
func NewColumnListModel(d *dataset.Dataset) ColumnListModel {
	names := d.Columns()
	rows := make([]columnRow, 0, len(names))
	for _, name := range names {
		col, _ := d.Column(name)
		missing, present := col.Missing()
		rows = append(rows, columnRow{
			Name:    name,
			Numeric: col.IsNumeric(),
			Missing: missing,
			Present: present,
		})
	}
	return ColumnListModel{
		Rows:   rows,
		Height: 15,
	}
}

func (m ColumnListModel) Init() tea.Cmd {
	return nil
}

func (m ColumnListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = m.Rows[m.Cursor].Name
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

func (m ColumnListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Column"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		kind := "text"
		if r.Numeric {
			kind = "numeric"
		}

		missing := "—"
		if r.Missing > 0 {
			missing = strconv.Itoa(r.Missing)
		}

		rows = append(rows, []string{cursor, r.Name, kind, strconv.Itoa(r.Present), missing})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Column", "Type", "Present", "Missing").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Rows) {
				return lipgloss.NewStyle()
			}
			if actualIdx == m.Cursor {
				return listSelectedStyle
			}
			if col >= 3 {
				return listDimStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}
