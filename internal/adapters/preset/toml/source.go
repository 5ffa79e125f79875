package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/hrvstr/drp/internal/domain"
	"github.com/hrvstr/drp/internal/ports"
)

const (
	configName     = "config"
	configType     = "toml"
	presetsDirKey  = "presets.dir"
	configDirName  = "drp"
	presetsDirName = "presets"
	presetExt      = ".toml"
)

// Source resolves named presets from *.toml files in the presets
// directory. Unlike the settings blob, a corrupt preset file is a user
// action gone wrong and surfaces as an error.
type Source struct {
	dir string
}

var _ ports.PresetSource = (*Source)(nil)

func NewSource(cfg *viper.Viper) (*Source, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config directory: %w", err)
	}

	defaultDir := filepath.Join(configDir, configDirName, presetsDirName)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(configDir, configDirName))
	cfg.SetDefault(presetsDirKey, defaultDir)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	dir := cfg.GetString(presetsDirKey)
	if dir == "" {
		return nil, errors.New("presets directory is empty")
	}

	return &Source{dir: dir}, nil
}

func (s *Source) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read presets directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), presetExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), presetExt))
	}

	sort.Strings(names)
	return names, nil
}

func (s *Source) Load(ctx context.Context, name string) (domain.Preset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Preset{}, err
	}

	path := filepath.Join(s.dir, name+presetExt)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Preset{}, domain.ErrPresetNotFound
		}
		return domain.Preset{}, fmt.Errorf("read preset file: %w", err)
	}

	var schema presetSchema
	if err := toml.Unmarshal(data, &schema); err != nil {
		return domain.Preset{}, fmt.Errorf("decode preset file: %w", err)
	}

	return schema.toDomain(), nil
}

type presetSchema struct {
	ClientID  *string `toml:"client_id"`
	Details   *string `toml:"details"`
	State     *string `toml:"state"`
	PartySize *int    `toml:"party_size"`
	PartyMax  *int    `toml:"party_max"`
	Timestamp string  `toml:"timestamp"`

	LargeImageKey  *string `toml:"large_image_key"`
	LargeImageText *string `toml:"large_image_text"`
	SmallImageKey  *string `toml:"small_image_key"`
	SmallImageText *string `toml:"small_image_text"`

	Button1Label *string `toml:"button1_label"`
	Button1URL   *string `toml:"button1_url"`
	Button2Label *string `toml:"button2_label"`
	Button2URL   *string `toml:"button2_url"`
}

func (s presetSchema) toDomain() domain.Preset {
	return domain.Preset{
		ClientID:       s.ClientID,
		Details:        s.Details,
		State:          s.State,
		PartySize:      s.PartySize,
		PartyMax:       s.PartyMax,
		Timestamp:      s.Timestamp,
		LargeImageKey:  s.LargeImageKey,
		LargeImageText: s.LargeImageText,
		SmallImageKey:  s.SmallImageKey,
		SmallImageText: s.SmallImageText,
		Button1Label:   s.Button1Label,
		Button1URL:     s.Button1URL,
		Button2Label:   s.Button2Label,
		Button2URL:     s.Button2URL,
	}
}
