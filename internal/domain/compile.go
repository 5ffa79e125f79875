package domain

// Compile maps the form and an already-resolved start instant into a
// complete activity. It is pure: each omission rule applies independently
// and the same form always yields the same payload.
//
// Rules:
//   - Details and State appear iff non-empty.
//   - An image slot appears iff its Key is non-empty; its Text rides along
//     only when also non-empty.
//   - A button appears iff both Label and URL are non-empty; declaration
//     order is preserved.
//   - The party block appears iff PartySize != 0 and State is non-empty,
//     carrying [PartyMax, PartySize].
//   - Timestamps appear iff hasStart.
func Compile(form Form, start int64, hasStart bool) Activity {
	activity := Activity{
		Details: form.Details,
		State:   form.State,
	}

	if hasStart {
		activity.Timestamps = &Timestamps{Start: start}
	}

	var assets Assets
	if form.LargeImage.Key != "" {
		assets.LargeImage = form.LargeImage.Key
		assets.LargeText = form.LargeImage.Text
	}
	if form.SmallImage.Key != "" {
		assets.SmallImage = form.SmallImage.Key
		assets.SmallText = form.SmallImage.Text
	}
	if assets != (Assets{}) {
		activity.Assets = &assets
	}

	for _, slot := range form.Buttons {
		if slot.Label == "" || slot.URL == "" {
			continue
		}
		activity.Buttons = append(activity.Buttons, Button{Label: slot.Label, URL: slot.URL})
	}

	if form.PartySize != 0 && form.State != "" {
		activity.Party = &Party{Size: [2]int{form.PartyMax, form.PartySize}}
	}

	return activity
}
