// Package tui is the interactive dashboard. Reports arrive from the refresh
// loop as messages; the model only renders them.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"sysdash/internal/domain"
)

// ReportMsg carries a freshly computed report into the program.
type ReportMsg domain.Report

type Model struct {
	keys     KeyMap
	help     help.Model
	viewport viewport.Model

	report *domain.Report
	width  int
	height int
	ready  bool
}

func NewModel() Model {
	return Model{
		keys: DefaultKeyMap,
		help: help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
