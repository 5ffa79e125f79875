package toml

import (
	"fmt"
	"time"

	"github.com/hrvstr/drp/internal/domain"
)

const currentSchemaVersion = 1

const dateLayout = "2006-01-02"

type settingsSchema struct {
	Version int `toml:"version"`

	ClientID   string `toml:"client_id"`
	Details    string `toml:"details"`
	State      string `toml:"state"`
	PartySize  int    `toml:"party_size"`
	PartyMax   int    `toml:"party_max"`
	Timestamp  string `toml:"timestamp"`
	CustomDate string `toml:"custom_date,omitempty"`

	LargeImageKey  string `toml:"large_image_key"`
	LargeImageText string `toml:"large_image_text"`
	SmallImageKey  string `toml:"small_image_key"`
	SmallImageText string `toml:"small_image_text"`

	Button1Label string `toml:"button1_label"`
	Button1URL   string `toml:"button1_url"`
	Button2Label string `toml:"button2_label"`
	Button2URL   string `toml:"button2_url"`

	Autoconnect bool `toml:"autoconnect"`
	DarkMode    bool `toml:"darkmode"`
}

func (s *settingsSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.PartyMax == 0 {
		s.PartyMax = domain.PartyMaxMin
	}
}

func (s settingsSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported settings schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func toSchema(settings domain.Settings) settingsSchema {
	form := settings.Form

	schema := settingsSchema{
		Version:        currentSchemaVersion,
		ClientID:       string(form.ClientID),
		Details:        form.Details,
		State:          form.State,
		PartySize:      form.PartySize,
		PartyMax:       form.PartyMax,
		Timestamp:      string(form.TimestampMode),
		LargeImageKey:  form.LargeImage.Key,
		LargeImageText: form.LargeImage.Text,
		SmallImageKey:  form.SmallImage.Key,
		SmallImageText: form.SmallImage.Text,
		Button1Label:   form.Buttons[0].Label,
		Button1URL:     form.Buttons[0].URL,
		Button2Label:   form.Buttons[1].Label,
		Button2URL:     form.Buttons[1].URL,
		Autoconnect:    settings.Autoconnect,
		DarkMode:       settings.DarkMode,
	}

	if !form.CustomDate.IsZero() {
		schema.CustomDate = form.CustomDate.Format(dateLayout)
	}

	return schema
}

func fromSchema(schema settingsSchema) domain.Settings {
	form := domain.Form{
		ClientID:      domain.ClientID(schema.ClientID),
		Details:       schema.Details,
		State:         schema.State,
		PartySize:     schema.PartySize,
		PartyMax:      schema.PartyMax,
		TimestampMode: domain.ParseTimestampMode(schema.Timestamp),
		LargeImage:    domain.ImageSlot{Key: schema.LargeImageKey, Text: schema.LargeImageText},
		SmallImage:    domain.ImageSlot{Key: schema.SmallImageKey, Text: schema.SmallImageText},
		Buttons: [2]domain.ButtonSlot{
			{Label: schema.Button1Label, URL: schema.Button1URL},
			{Label: schema.Button2Label, URL: schema.Button2URL},
		},
	}

	if schema.CustomDate != "" {
		if date, err := time.Parse(dateLayout, schema.CustomDate); err == nil {
			form.CustomDate = date
		}
	}

	return domain.Settings{
		Form:        form,
		Autoconnect: schema.Autoconnect,
		DarkMode:    schema.DarkMode,
	}
}
