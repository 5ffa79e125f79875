package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrvstr/drp/internal/application"
	"github.com/hrvstr/drp/internal/domain"
	"github.com/hrvstr/drp/internal/ports"
)

type recordConn struct {
	activities []domain.Activity
}

func (c *recordConn) SetActivity(_ context.Context, activity domain.Activity) error {
	c.activities = append(c.activities, activity)
	return nil
}

func (c *recordConn) Close() error { return nil }

type recordTransport struct {
	conns []*recordConn
}

func (t *recordTransport) Dial(context.Context, domain.ClientID) (ports.Conn, error) {
	conn := &recordConn{}
	t.conns = append(t.conns, conn)
	return conn, nil
}

type recordRepo struct {
	saved []domain.Settings
}

func (r *recordRepo) Load(context.Context) (domain.Settings, error) {
	return domain.DefaultSettings(), nil
}

func (r *recordRepo) Save(_ context.Context, settings domain.Settings) error {
	r.saved = append(r.saved, settings)
	return nil
}

type stubClock struct{}

func (stubClock) Now() time.Time { return time.Unix(1000, 0) }

func press(m tea.Model, msg tea.Msg) tea.Model {
	next, _ := m.Update(msg)
	return next
}

func typeRunes(m tea.Model, s string) tea.Model {
	return press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+o":
		return tea.KeyMsg{Type: tea.KeyCtrlO}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func newTestModel(transport *recordTransport, repo *recordRepo) Model {
	settings := domain.DefaultSettings()
	session := application.NewSession(transport, stubClock{}, settings.Form)
	return NewModel(session, repo, settings)
}

func TestFormTypingEditsFocusedField(t *testing.T) {
	m := newTestModel(&recordTransport{}, &recordRepo{})

	var model tea.Model = m
	model = typeRunes(model, "123")

	form := model.(Model)
	assert.Equal(t, "123", form.inputs[fieldClientID].Value())
}

func TestFormTabMovesFocus(t *testing.T) {
	m := newTestModel(&recordTransport{}, &recordRepo{})

	var model tea.Model = m
	model = press(model, keyMsg("tab"))
	model = typeRunes(model, "Writing Go")

	form := model.(Model)
	assert.Equal(t, fieldDetails, form.focus)
	assert.Equal(t, "Writing Go", form.inputs[fieldDetails].Value())
}

func TestFormCtrlTCyclesTimestampMode(t *testing.T) {
	m := newTestModel(&recordTransport{}, &recordRepo{})

	var model tea.Model = m
	model = press(model, keyMsg("ctrl+t"))

	form := model.(Model)
	assert.Equal(t, domain.TimestampLocalDayStart, form.mode)
	assert.Equal(t, domain.TimestampLocalDayStart, form.session.Form().TimestampMode)
}

func TestFormConnectPublishesCurrentForm(t *testing.T) {
	transport := &recordTransport{}
	m := newTestModel(transport, &recordRepo{})

	var model tea.Model = m
	model = typeRunes(model, "123")
	model = press(model, keyMsg("tab"))
	model = typeRunes(model, "Writing Go")
	model = press(model, keyMsg("ctrl+o"))

	form := model.(Model)
	require.True(t, form.session.Connected())
	require.Len(t, transport.conns, 1)
	require.Len(t, transport.conns[0].activities, 1)
	assert.Equal(t, "Writing Go", transport.conns[0].activities[0].Details)
	assert.Equal(t, "presence published", form.notice)
}

func TestFormConnectWithEmptyClientIDShowsError(t *testing.T) {
	m := newTestModel(&recordTransport{}, &recordRepo{})

	var model tea.Model = m
	model = press(model, keyMsg("ctrl+o"))

	form := model.(Model)
	require.Error(t, form.lastErr)
	assert.ErrorIs(t, form.lastErr, application.ErrConnect)
	assert.False(t, form.session.Connected())
}

func TestFormSavePersistsSettings(t *testing.T) {
	repo := &recordRepo{}
	m := newTestModel(&recordTransport{}, repo)

	var model tea.Model = m
	model = typeRunes(model, "123")
	model = press(model, keyMsg("ctrl+s"))

	require.Len(t, repo.saved, 1)
	assert.Equal(t, domain.ClientID("123"), repo.saved[0].Form.ClientID)

	form := model.(Model)
	assert.Equal(t, "settings saved", form.notice)
}
