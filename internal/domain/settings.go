package domain

// Settings is the persisted blob: the whole form plus the two UI
// preferences that survive restarts.
type Settings struct {
	Form        Form
	Autoconnect bool
	DarkMode    bool
}

func DefaultSettings() Settings {
	return Settings{Form: DefaultForm()}
}
