package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title        lipgloss.Style
	label        lipgloss.Style
	focusedLabel lipgloss.Style
	mode         lipgloss.Style
	connected    lipgloss.Style
	disconnected lipgloss.Style
	notice       lipgloss.Style
	errText      lipgloss.Style
	help         lipgloss.Style
}

func newStyles(darkMode bool) styles {
	label := lipgloss.Color("240")
	if darkMode {
		label = lipgloss.Color("245")
	}

	return styles{
		title:        lipgloss.NewStyle().Bold(true),
		label:        lipgloss.NewStyle().Foreground(label),
		focusedLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		mode:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		connected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		disconnected: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		notice:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		errText:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		help:         lipgloss.NewStyle().Faint(true),
	}
}
