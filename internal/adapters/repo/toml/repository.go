package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/hrvstr/drp/internal/domain"
	"github.com/hrvstr/drp/internal/ports"
)

const (
	configName       = "config"
	configType       = "toml"
	settingsPathKey  = "settings.path"
	settingsFileMode = 0o600
	settingsDirMode  = 0o700
	configDirName    = "drp"
	settingsFileName = "settings.toml"
	tempFilePattern  = ".settings-*.toml.tmp"
)

// Repository persists the settings blob as a TOML file. A missing or
// unparseable blob loads as defaults; startup never fails on bad
// persisted state.
type Repository struct {
	settingsPath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SettingsRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config directory: %w", err)
	}

	defaultPath := filepath.Join(configDir, configDirName, settingsFileName)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(configDir, configDirName))
	cfg.SetDefault(settingsPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	settingsPath := cfg.GetString(settingsPathKey)
	if settingsPath == "" {
		return nil, errors.New("settings path is empty")
	}
	settingsPath, err = normalizePath(settingsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{settingsPath: settingsPath, mu: lockForPath(settingsPath)}, nil
}

func (r *Repository) Load(ctx context.Context) (domain.Settings, error) {
	if err := ctx.Err(); err != nil {
		return domain.Settings{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.settingsPath)
	if err != nil {
		// Absent blob is the first-run case, not an error.
		return domain.DefaultSettings(), nil
	}

	var schema settingsSchema
	if err := toml.Unmarshal(data, &schema); err != nil {
		// Corrupt blob: recover with defaults rather than failing startup.
		return domain.DefaultSettings(), nil
	}
	if err := schema.validateVersion(); err != nil {
		return domain.DefaultSettings(), nil
	}
	schema.applyDefaults()

	return fromSchema(schema), nil
}

func (r *Repository) Save(ctx context.Context, settings domain.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := toml.Marshal(toSchema(settings))
	if err != nil {
		return fmt.Errorf("encode settings file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.settingsPath), settingsDirMode); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.settingsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp settings file: %w", err)
	}

	if err := tempFile.Chmod(settingsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp settings file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp settings file: %w", err)
	}

	if err := os.Rename(tempName, r.settingsPath); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}

	cleanup = false

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
