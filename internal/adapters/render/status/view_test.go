package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrvstr/drp/internal/application"
	"github.com/hrvstr/drp/internal/domain"
)

func sampleStatus() application.Status {
	form := domain.DefaultForm()
	form.ClientID = "123456789"
	form.Details = "Writing Go"
	form.State = "Focused"
	form.PartySize = 2
	form.PartyMax = 10
	form.TimestampMode = domain.TimestampSinceStart
	form.LargeImage = domain.ImageSlot{Key: "gopher", Text: "the gopher"}
	form.Buttons[0] = domain.ButtonSlot{Label: "Repo", URL: "https://example.com"}

	return application.Status{Form: form, Autoconnect: true}
}

func TestRenderShowsFormFields(t *testing.T) {
	rendered, err := Render(sampleStatus(), RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, rendered, "Discord Rich Presence")
	assert.Contains(t, rendered, "disconnected")
	assert.Contains(t, rendered, "123456789")
	assert.Contains(t, rendered, "Writing Go")
	assert.Contains(t, rendered, "Focused")
	assert.Contains(t, rendered, "2 of 10")
	assert.Contains(t, rendered, "since session start")
	assert.Contains(t, rendered, "gopher (the gopher)")
	assert.Contains(t, rendered, "Repo -> https://example.com")
	assert.Contains(t, rendered, "autoconnect: on")
}

func TestRenderConnectedShowsBoundID(t *testing.T) {
	status := sampleStatus()
	status.Connected = true
	status.BoundClientID = "123456789"
	status.LastUpdateAt = time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	rendered, err := Render(status, RenderOptions{
		Now: time.Date(2026, 8, 23, 12, 0, 5, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Contains(t, rendered, "connected (123456789)")
	assert.Contains(t, rendered, "last push 5s ago")
}

func TestRenderEmptyFieldsShowUnset(t *testing.T) {
	rendered, err := Render(application.Status{Form: domain.DefaultForm()}, RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, rendered, "unset")
	assert.NotContains(t, rendered, "of 1")
}
