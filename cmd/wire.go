package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/hrvstr/drp/internal/adapters/ipc/discord"
	presetsource "github.com/hrvstr/drp/internal/adapters/preset/toml"
	statusadapter "github.com/hrvstr/drp/internal/adapters/render/status"
	tomlrepo "github.com/hrvstr/drp/internal/adapters/repo/toml"
	"github.com/hrvstr/drp/internal/application"
	"github.com/hrvstr/drp/internal/ports"
)

type app struct {
	settings       *application.SettingsService
	repo           ports.SettingsRepository
	presets        ports.PresetSource
	transport      ports.Transport
	statusRenderer func(application.Status, statusadapter.RenderOptions) (string, error)
	now            func() time.Time
}

func wireApp() (*app, error) {
	repo, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire settings repository: %w", err)
	}

	presets, err := presetsource.NewSource(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire preset source: %w", err)
	}

	return &app{
		settings:       application.NewSettingsService(repo, presets),
		repo:           repo,
		presets:        presets,
		transport:      discord.NewTransport(),
		statusRenderer: statusadapter.Render,
		now:            time.Now,
	}, nil
}
