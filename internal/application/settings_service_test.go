package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrvstr/drp/internal/domain"
)

type memSettingsRepo struct {
	settings  domain.Settings
	saveCount int
	loadErr   error
	saveErr   error
}

func (r *memSettingsRepo) Load(context.Context) (domain.Settings, error) {
	if r.loadErr != nil {
		return domain.Settings{}, r.loadErr
	}
	return r.settings, nil
}

func (r *memSettingsRepo) Save(_ context.Context, settings domain.Settings) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.settings = settings
	r.saveCount++
	return nil
}

type memPresetSource struct {
	presets map[string]domain.Preset
}

func (s *memPresetSource) List(context.Context) ([]string, error) {
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	return names, nil
}

func (s *memPresetSource) Load(_ context.Context, name string) (domain.Preset, error) {
	preset, ok := s.presets[name]
	if !ok {
		return domain.Preset{}, domain.ErrPresetNotFound
	}
	return preset, nil
}

func TestSettingsServiceApplyMutatesAndSaves(t *testing.T) {
	repo := &memSettingsRepo{settings: domain.DefaultSettings()}
	service := NewSettingsService(repo, &memPresetSource{})

	updated, err := service.Apply(context.Background(), func(s *domain.Settings) {
		s.Form.Details = "Coding"
		s.Autoconnect = true
	})

	require.NoError(t, err)
	assert.Equal(t, "Coding", updated.Form.Details)
	assert.True(t, updated.Autoconnect)
	assert.Equal(t, 1, repo.saveCount)
	assert.Equal(t, updated, repo.settings)
}

func TestSettingsServiceApplyRejectsInvalidForm(t *testing.T) {
	repo := &memSettingsRepo{settings: domain.DefaultSettings()}
	service := NewSettingsService(repo, &memPresetSource{})

	_, err := service.Apply(context.Background(), func(s *domain.Settings) {
		s.Form.PartySize = 99
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "party size")
	assert.Zero(t, repo.saveCount)
}

func TestSettingsServiceApplyPresetMergesSparseRecord(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.Form.Details = "Coding"
	repo := &memSettingsRepo{settings: settings}

	state := "Idle"
	presets := &memPresetSource{presets: map[string]domain.Preset{
		"idle": {State: &state},
	}}
	service := NewSettingsService(repo, presets)

	updated, err := service.ApplyPreset(context.Background(), "idle")

	require.NoError(t, err)
	assert.Equal(t, "Idle", updated.Form.State)
	assert.Equal(t, "Coding", updated.Form.Details)
	assert.Equal(t, 1, repo.saveCount)
}

func TestSettingsServiceApplyPresetTwiceIsIdempotent(t *testing.T) {
	repo := &memSettingsRepo{settings: domain.DefaultSettings()}

	state := "Raiding"
	size := 4
	presets := &memPresetSource{presets: map[string]domain.Preset{
		"raid": {State: &state, PartySize: &size},
	}}
	service := NewSettingsService(repo, presets)

	first, err := service.ApplyPreset(context.Background(), "raid")
	require.NoError(t, err)
	second, err := service.ApplyPreset(context.Background(), "raid")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSettingsServiceApplyPresetUnknownName(t *testing.T) {
	repo := &memSettingsRepo{settings: domain.DefaultSettings()}
	service := NewSettingsService(repo, &memPresetSource{})

	_, err := service.ApplyPreset(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrPresetNotFound)
	assert.Zero(t, repo.saveCount)
}

func TestSettingsServiceGetPropagatesLoadError(t *testing.T) {
	repo := &memSettingsRepo{loadErr: errors.New("disk on fire")}
	service := NewSettingsService(repo, &memPresetSource{})

	_, err := service.Get(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load settings")
}
