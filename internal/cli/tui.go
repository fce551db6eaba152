package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/colgrid/colgrid/pkg/grid"
	"github.com/colgrid/colgrid/pkg/stylesheet"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// RuleListModel - Interactive rule browsing
// =============================================================================

// RuleListModel is the bubbletea model for browsing the rule registry.
// Typing narrows the list to rules whose identifier contains the typed
// text; navigation keys move the cursor.
type RuleListModel struct {
	cfg      grid.Config
	all      []grid.Rule
	filtered []grid.Rule
	filter   string

	Cursor int
	Height int
	Offset int
}

// NewRuleListModel creates a new rule list model.
func NewRuleListModel(cfg grid.Config, rules []grid.Rule) RuleListModel {
	return RuleListModel{
		cfg:      cfg,
		all:      rules,
		filtered: rules,
		Height:   15,
	}
}

func (m RuleListModel) Init() tea.Cmd {
	return nil
}

func (m RuleListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down":
			if m.Cursor < len(m.filtered)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "backspace":
			if m.filter != "" {
				m.filter = m.filter[:len(m.filter)-1]
				m.applyFilter()
			}
		default:
			if s := msg.String(); len(s) == 1 && isFilterRune(s[0]) {
				m.filter += s
				m.applyFilter()
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// isFilterRune limits filter input to identifier characters.
func isFilterRune(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '-'
}

// applyFilter recomputes the visible rules and clamps the cursor.
func (m *RuleListModel) applyFilter() {
	if m.filter == "" {
		m.filtered = m.all
	} else {
		m.filtered = m.filtered[:0:0]
		for _, r := range m.all {
			if strings.Contains(r.Identifier, m.filter) {
				m.filtered = append(m.filtered, r)
			}
		}
	}
	m.Cursor = 0
	m.Offset = 0
}

func (m RuleListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Grid Rules"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("type to filter  ↑/↓ navigate  esc quit"))
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  no rules match %q", m.filter)))
		b.WriteString("\n")
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.filtered[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			r.Identifier,
			tierLabel(r.Breakpoint),
			stylesheet.Declarations(m.cfg, r.Property),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Identifier", "Tier", "Declarations").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			if col == 3 {
				return StyleDim
			}
			return StyleValue
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	status := fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.filtered))
	if m.filter != "" {
		status += "  filter: " + m.filter
	}
	b.WriteString(listDimStyle.Render(status))

	return b.String()
}
