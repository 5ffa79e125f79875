package status

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hrvstr/drp/internal/application"
	"github.com/hrvstr/drp/internal/domain"
)

type RenderOptions struct {
	Now time.Time
}

func renderView(status application.Status, opts RenderOptions, s styles) string {
	form := status.Form

	lines := []string{
		s.title.Render("Discord Rich Presence"),
		connectionLine(status, s),
	}

	if status.Connected && !opts.Now.IsZero() && !status.LastUpdateAt.IsZero() {
		lines = append(lines, s.header.Render(
			fmt.Sprintf("last push %s ago", opts.Now.Sub(status.LastUpdateAt).Round(time.Second)),
		))
	}

	lines = append(lines,
		s.section.Render(fieldLine("client id", string(form.ClientID), s)),
		fieldLine("details", form.Details, s),
		fieldLine("state", form.State, s),
		fieldLine("party", partyLabel(form), s),
		fieldLine("timestamp", timestampLabel(form), s),
	)

	lines = append(lines,
		s.section.Render(slotLine("large image", form.LargeImage, s)),
		slotLine("small image", form.SmallImage, s),
		buttonLine("button 1", form.Buttons[0], s),
		buttonLine("button 2", form.Buttons[1], s),
	)

	lines = append(lines, s.section.Render(preferencesLine(status, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func connectionLine(status application.Status, s styles) string {
	if !status.Connected {
		return s.disconnected.Render("disconnected")
	}

	return s.connected.Render(fmt.Sprintf("connected (%s)", status.BoundClientID))
}

func fieldLine(key, value string, s styles) string {
	if value == "" {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			s.fieldKey.Render(key+": "),
			s.empty.Render("unset"),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.fieldKey.Render(key+": "),
		s.fieldValue.Render(value),
	)
}

func partyLabel(form domain.Form) string {
	if form.PartySize == 0 || form.State == "" {
		return ""
	}

	return fmt.Sprintf("%d of %d", form.PartySize, form.PartyMax)
}

func timestampLabel(form domain.Form) string {
	if form.TimestampMode == domain.TimestampNone {
		return ""
	}
	if form.TimestampMode == domain.TimestampCustomDate && !form.CustomDate.IsZero() {
		return fmt.Sprintf("%s (%s)", form.TimestampMode.Label(), form.CustomDate.Format("2006-01-02"))
	}

	return form.TimestampMode.Label()
}

func slotLine(key string, slot domain.ImageSlot, s styles) string {
	if slot.Key == "" {
		return fieldLine(key, "", s)
	}
	if slot.Text == "" {
		return fieldLine(key, slot.Key, s)
	}

	return fieldLine(key, fmt.Sprintf("%s (%s)", slot.Key, slot.Text), s)
}

func buttonLine(key string, slot domain.ButtonSlot, s styles) string {
	if slot.Label == "" || slot.URL == "" {
		return fieldLine(key, "", s)
	}

	return fieldLine(key, fmt.Sprintf("%s -> %s", slot.Label, slot.URL), s)
}

func preferencesLine(status application.Status, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.fieldKey.Render("autoconnect: "),
		s.fieldValue.Render(boolLabel(status.Autoconnect)),
		s.fieldKey.Render("  darkmode: "),
		s.fieldValue.Render(boolLabel(status.DarkMode)),
	)
}

func boolLabel(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
