package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hrvstr/drp/internal/application"
	"github.com/hrvstr/drp/internal/domain"
	"github.com/hrvstr/drp/internal/ports"
)

const (
	fieldClientID = iota
	fieldDetails
	fieldState
	fieldPartySize
	fieldPartyMax
	fieldCustomDate
	fieldLargeKey
	fieldLargeText
	fieldSmallKey
	fieldSmallText
	fieldButton1Label
	fieldButton1URL
	fieldButton2Label
	fieldButton2URL
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Client ID",
	"Details",
	"State",
	"Party",
	"Party of",
	"Date (YYYY-MM-DD)",
	"Large image key",
	"Large image text",
	"Small image key",
	"Small image text",
	"Button 1 label",
	"Button 1 URL",
	"Button 2 label",
	"Button 2 URL",
}

const dateLayout = "2006-01-02"

// Model drives the interactive presence form over a live session. All
// session mutation happens on the bubbletea update goroutine; transport
// calls block until done, matching the session's synchronous model.
type Model struct {
	session  *application.Session
	repo     ports.SettingsRepository
	settings domain.Settings

	inputs [fieldCount]textinput.Model
	focus  int
	mode   domain.TimestampMode
	styles styles

	notice  string
	lastErr error
}

func NewModel(session *application.Session, repo ports.SettingsRepository, settings domain.Settings) Model {
	m := Model{
		session:  session,
		repo:     repo,
		settings: settings,
		mode:     session.Form().TimestampMode,
		styles:   newStyles(settings.DarkMode),
	}

	form := session.Form()
	values := [fieldCount]string{
		fieldClientID:     string(form.ClientID),
		fieldDetails:      form.Details,
		fieldState:        form.State,
		fieldPartySize:    strconv.Itoa(form.PartySize),
		fieldPartyMax:     strconv.Itoa(form.PartyMax),
		fieldLargeKey:     form.LargeImage.Key,
		fieldLargeText:    form.LargeImage.Text,
		fieldSmallKey:     form.SmallImage.Key,
		fieldSmallText:    form.SmallImage.Text,
		fieldButton1Label: form.Buttons[0].Label,
		fieldButton1URL:   form.Buttons[0].URL,
		fieldButton2Label: form.Buttons[1].Label,
		fieldButton2URL:   form.Buttons[1].URL,
	}
	if !form.CustomDate.IsZero() {
		values[fieldCustomDate] = form.CustomDate.Format(dateLayout)
	}

	for i := 0; i < fieldCount; i++ {
		input := textinput.New()
		input.Prompt = ""
		input.CharLimit = 128
		input.SetValue(values[i])
		m.inputs[i] = input
	}
	m.inputs[fieldClientID].Focus()

	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.saveSettings()
		return m, tea.Quit
	case "tab", "down":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	case "ctrl+t":
		m.cycleTimestampMode()
		return m, nil
	case "ctrl+o":
		m.connect()
		return m, nil
	case "ctrl+d":
		m.disconnect()
		return m, nil
	case "ctrl+p":
		m.push()
		return m, nil
	case "ctrl+s":
		m.saveSettings()
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(focus int) {
	m.inputs[m.focus].Blur()
	m.focus = focus
	m.inputs[m.focus].Focus()
}

func (m *Model) cycleTimestampMode() {
	modes := domain.TimestampModes()
	for i, mode := range modes {
		if mode == m.mode {
			m.mode = modes[(i+1)%len(modes)]
			m.session.Form().TimestampMode = m.mode
			return
		}
	}
	m.mode = domain.TimestampNone
	m.session.Form().TimestampMode = m.mode
}

// syncForm writes the input values back into the live field model.
func (m *Model) syncForm() {
	form := m.session.Form()

	form.ClientID = domain.ClientID(m.inputs[fieldClientID].Value())
	form.Details = m.inputs[fieldDetails].Value()
	form.State = m.inputs[fieldState].Value()
	form.PartySize = clampInt(m.inputs[fieldPartySize].Value(), domain.PartySizeMin, domain.PartySizeMax)
	form.PartyMax = clampInt(m.inputs[fieldPartyMax].Value(), domain.PartyMaxMin, domain.PartyMaxMax)
	form.LargeImage = domain.ImageSlot{
		Key:  m.inputs[fieldLargeKey].Value(),
		Text: m.inputs[fieldLargeText].Value(),
	}
	form.SmallImage = domain.ImageSlot{
		Key:  m.inputs[fieldSmallKey].Value(),
		Text: m.inputs[fieldSmallText].Value(),
	}
	form.Buttons[0] = domain.ButtonSlot{
		Label: m.inputs[fieldButton1Label].Value(),
		URL:   m.inputs[fieldButton1URL].Value(),
	}
	form.Buttons[1] = domain.ButtonSlot{
		Label: m.inputs[fieldButton2Label].Value(),
		URL:   m.inputs[fieldButton2URL].Value(),
	}
	form.TimestampMode = m.mode
	if date, err := time.Parse(dateLayout, m.inputs[fieldCustomDate].Value()); err == nil {
		form.CustomDate = date
	}
}

func (m *Model) connect() {
	m.syncForm()
	if err := m.session.Connect(context.Background()); err != nil {
		m.fail(err)
		return
	}
	if err := m.session.Update(context.Background()); err != nil {
		m.fail(err)
		return
	}
	m.succeed("presence published")
}

func (m *Model) disconnect() {
	if err := m.session.Disconnect(); err != nil {
		m.fail(err)
		return
	}
	m.succeed("disconnected")
}

func (m *Model) push() {
	m.syncForm()
	if err := m.session.Update(context.Background()); err != nil {
		m.fail(err)
		return
	}
	m.succeed("presence updated")
}

func (m *Model) saveSettings() {
	m.syncForm()
	m.settings.Form = *m.session.Form()
	if err := m.repo.Save(context.Background(), m.settings); err != nil {
		m.fail(err)
		return
	}
	m.succeed("settings saved")
}

func (m *Model) fail(err error) {
	m.lastErr = err
	m.notice = ""
}

func (m *Model) succeed(notice string) {
	m.lastErr = nil
	m.notice = notice
}

func clampInt(s string, min, max int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Run starts the interactive form and blocks until the user quits.
func Run(session *application.Session, repo ports.SettingsRepository, settings domain.Settings) error {
	p := tea.NewProgram(NewModel(session, repo, settings))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run presence form: %w", err)
	}
	return nil
}
