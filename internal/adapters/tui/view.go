package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	lines := []string{
		m.styles.title.Render("Discord Rich Presence"),
		m.connectionLabel(),
		"",
	}

	for i := 0; i < fieldCount; i++ {
		label := m.styles.label.Render(fmt.Sprintf("%-18s", fieldLabels[i]))
		if i == m.focus {
			label = m.styles.focusedLabel.Render(fmt.Sprintf("%-18s", fieldLabels[i]))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label, m.inputs[i].View()))
	}

	lines = append(lines,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.label.Render(fmt.Sprintf("%-18s", "Timestamp")),
			m.styles.mode.Render(m.mode.Label()),
		),
	)

	if m.lastErr != nil {
		lines = append(lines, "", m.styles.errText.Render(m.lastErr.Error()))
	} else if m.notice != "" {
		lines = append(lines, "", m.styles.notice.Render(m.notice))
	}

	lines = append(lines, "", m.styles.help.Render(
		"tab: next field · ctrl+t: timestamp · ctrl+o: connect · ctrl+p: update · ctrl+d: disconnect · ctrl+s: save · esc: quit",
	))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) connectionLabel() string {
	if !m.session.Connected() {
		return m.styles.disconnected.Render("disconnected")
	}

	return m.styles.connected.Render(fmt.Sprintf("connected (%s)", m.session.BoundClientID()))
}
