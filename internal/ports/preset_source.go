package ports

import (
	"context"

	"github.com/hrvstr/drp/internal/domain"
)

// PresetSource resolves named presets. Load returns
// domain.ErrPresetNotFound for unknown names.
type PresetSource interface {
	List(ctx context.Context) ([]string, error)
	Load(ctx context.Context, name string) (domain.Preset, error)
}
