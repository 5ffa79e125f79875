package application

import (
	"time"

	"github.com/hrvstr/drp/internal/domain"
)

// Status is a read-only snapshot of the session for rendering.
type Status struct {
	Form          domain.Form
	Connected     bool
	BoundClientID domain.ClientID
	Autoconnect   bool
	DarkMode      bool
	StartedAt     time.Time
	LastUpdateAt  time.Time
}

func (s *Session) Status() Status {
	return Status{
		Form:          s.form,
		Connected:     s.Connected(),
		BoundClientID: s.boundID,
		StartedAt:     s.startedAt,
		LastUpdateAt:  s.lastUpdateAt,
	}
}

// StatusFromSettings builds the same snapshot shape from the persisted
// blob, for commands that render without opening a session.
func StatusFromSettings(settings domain.Settings) Status {
	return Status{
		Form:        settings.Form,
		Autoconnect: settings.Autoconnect,
		DarkMode:    settings.DarkMode,
	}
}
