package domain

// Preset is a sparse snapshot of form fields loaded from a named preset
// file. Nil fields are absent and leave the target untouched on merge.
// Timestamp is the exception: a preset always declares a concrete mode,
// defaulting to none when the file omits it.
type Preset struct {
	ClientID  *string
	Details   *string
	State     *string
	PartySize *int
	PartyMax  *int
	Timestamp string

	LargeImageKey  *string
	LargeImageText *string
	SmallImageKey  *string
	SmallImageText *string

	Button1Label *string
	Button1URL   *string
	Button2Label *string
	Button2URL   *string
}

// ApplyTo merges the preset into form, field by field. Presets are
// one-shot: callers apply once and drop the record.
func (p Preset) ApplyTo(form *Form) {
	if p.ClientID != nil {
		form.ClientID = ClientID(*p.ClientID)
	}
	if p.Details != nil {
		form.Details = *p.Details
	}
	if p.State != nil {
		form.State = *p.State
	}
	if p.PartySize != nil {
		form.PartySize = *p.PartySize
	}
	if p.PartyMax != nil {
		form.PartyMax = *p.PartyMax
	}
	form.TimestampMode = ParseTimestampMode(p.Timestamp)

	if p.LargeImageKey != nil {
		form.LargeImage.Key = *p.LargeImageKey
	}
	if p.LargeImageText != nil {
		form.LargeImage.Text = *p.LargeImageText
	}
	if p.SmallImageKey != nil {
		form.SmallImage.Key = *p.SmallImageKey
	}
	if p.SmallImageText != nil {
		form.SmallImage.Text = *p.SmallImageText
	}

	if p.Button1Label != nil {
		form.Buttons[0].Label = *p.Button1Label
	}
	if p.Button1URL != nil {
		form.Buttons[0].URL = *p.Button1URL
	}
	if p.Button2Label != nil {
		form.Buttons[1].Label = *p.Button2Label
	}
	if p.Button2URL != nil {
		form.Buttons[1].URL = *p.Button2URL
	}
}
