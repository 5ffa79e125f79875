package ports

import (
	"context"

	"github.com/hrvstr/drp/internal/domain"
)

// SettingsRepository persists the settings blob. Load recovers from an
// absent or unreadable blob by returning defaults; startup never fails on
// bad persisted state.
type SettingsRepository interface {
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
}
