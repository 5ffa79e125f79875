package status

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title        lipgloss.Style
	header       lipgloss.Style
	fieldKey     lipgloss.Style
	fieldValue   lipgloss.Style
	empty        lipgloss.Style
	connected    lipgloss.Style
	disconnected lipgloss.Style
	section      lipgloss.Style
}

func newStyles(darkMode bool) styles {
	value := lipgloss.Color("235")
	if darkMode {
		value = lipgloss.Color("252")
	}

	return styles{
		title:        lipgloss.NewStyle().Bold(true),
		header:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		fieldKey:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		fieldValue:   lipgloss.NewStyle().Foreground(value),
		empty:        lipgloss.NewStyle().Faint(true),
		connected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		disconnected: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		section:      lipgloss.NewStyle().MarginTop(1),
	}
}
