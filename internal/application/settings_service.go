package application

import (
	"context"
	"fmt"

	"github.com/hrvstr/drp/internal/domain"
	"github.com/hrvstr/drp/internal/ports"
)

// SettingsService edits the persisted settings blob for commands that run
// without a live session (set, status, preset).
type SettingsService struct {
	repo    ports.SettingsRepository
	presets ports.PresetSource
}

func NewSettingsService(repo ports.SettingsRepository, presets ports.PresetSource) *SettingsService {
	return &SettingsService{repo: repo, presets: presets}
}

func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

// Apply loads the blob, runs mutate on it, validates and saves.
func (s *SettingsService) Apply(ctx context.Context, mutate func(*domain.Settings)) (domain.Settings, error) {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}

	mutate(&settings)

	if err := settings.Form.Validate(); err != nil {
		return domain.Settings{}, fmt.Errorf("validate settings: %w", err)
	}
	if err := s.repo.Save(ctx, settings); err != nil {
		return domain.Settings{}, fmt.Errorf("save settings: %w", err)
	}

	return settings, nil
}

// ApplyPreset merges a named preset into the stored form and saves the
// result. The preset is consumed by this one call.
func (s *SettingsService) ApplyPreset(ctx context.Context, name string) (domain.Settings, error) {
	preset, err := s.presets.Load(ctx, name)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("load preset %q: %w", name, err)
	}

	return s.Apply(ctx, func(settings *domain.Settings) {
		preset.ApplyTo(&settings.Form)
	})
}

func (s *SettingsService) ListPresets(ctx context.Context) ([]string, error) {
	names, err := s.presets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	return names, nil
}
