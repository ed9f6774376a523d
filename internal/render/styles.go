package render

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B4BEFE"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(lipgloss.Color("#CBA6F7")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8"))

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
)

// levelStyle colours a percentage by how close it is to full.
func levelStyle(pct float64) lipgloss.Style {
	switch {
	case pct >= 90:
		return badStyle
	case pct >= 70:
		return warnStyle
	default:
		return okStyle
	}
}
