package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"torus-life/internal/life"
	"torus-life/internal/session"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("2"))
	menuStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// View implements tea.Model. It is re-rendered after every Update, so any
// mutating command is followed by a full redraw of the current board.
func (m Model) View() string {
	if m.err != nil {
		return ""
	}
	if !m.sized {
		return "measuring terminal..."
	}

	title := titleStyle.Render("GAME OF LIFE")
	board := boardStyle.Render(renderBoard(m.ctrl.Engine(), m.settings.Glyphs.Alive, m.settings.Glyphs.Dead))
	body := lipgloss.JoinHorizontal(lipgloss.Top, board, " ", renderMenu())

	footer := footerStyle.Render("q: quit    Enter: next state    s: save")
	status := statusStyle.Render(m.status)

	return lipgloss.JoinVertical(lipgloss.Left, title, body, footer, status)
}

// renderBoard draws each cell with one of the two glyphs, one text row per
// board row.
func renderBoard(eng *life.Engine, alive, dead string) string {
	var b strings.Builder
	for r := 0; r < eng.Rows(); r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < eng.Cols(); c++ {
			if eng.Alive(r, c) {
				b.WriteString(alive)
			} else {
				b.WriteString(dead)
			}
		}
	}
	return b.String()
}

// renderMenu draws the static pattern options panel.
func renderMenu() string {
	rows := make([][]string, 0, len(session.Choices()))
	for _, ch := range session.Choices() {
		rows = append(rows, []string{string(ch.Key()), ch.Name()})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(menuStyle).
		BorderHeader(true).
		BorderRow(false).
		Headers("Key", "Pattern").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return titleStyle
			}
			return menuStyle
		})

	return fmt.Sprintf("%s\n%s", menuStyle.Render("Options:"), t.Render())
}
