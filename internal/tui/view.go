package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	waitingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8")).Padding(1, 2)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8"))
)

func (m Model) View() string {
	if !m.ready || m.report == nil {
		return waitingStyle.Render("sampling...")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		helpStyle.Render(m.help.View(m.keys)),
	)
}
