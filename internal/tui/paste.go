// Package tui provides the Bubble Tea paste box for timesheet text.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// PasteModel collects pasted portal text until the user submits or quits.
type PasteModel struct {
	input     textarea.Model
	submitted bool
	notice    string
}

// NewPaste returns a focused paste box, optionally prefilled.
func NewPaste(initial string) *PasteModel {
	ta := textarea.New()
	ta.Placeholder = "Paste the week from the attendance portal…"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetWidth(72)
	ta.SetHeight(20)
	ta.SetValue(initial)
	ta.Focus()
	return &PasteModel{input: ta}
}

// Init implements tea.Model.
func (m *PasteModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *PasteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 4 {
			m.input.SetWidth(msg.Width - 4)
		}
		if msg.Height > 6 {
			m.input.SetHeight(msg.Height - 6)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlS, tea.KeyCtrlD:
			if strings.TrimSpace(m.input.Value()) == "" {
				m.notice = "Please paste your timestamps first!"
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.notice = ""
	return m, cmd
}

// View implements tea.Model.
func (m *PasteModel) View() string {
	parts := []string{
		titleStyle.Render("Paste timesheet"),
		m.input.View(),
	}
	if m.notice != "" {
		parts = append(parts, errorStyle.Render(m.notice))
	}
	parts = append(parts, footerStyle.Render("ctrl+s compute • esc cancel"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Submitted reports whether the user asked to compute the pasted text.
func (m *PasteModel) Submitted() bool {
	return m.submitted
}

// Value returns the pasted text.
func (m *PasteModel) Value() string {
	return m.input.Value()
}
