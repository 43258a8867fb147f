package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/doeshing/cmdx/assets"
	"github.com/doeshing/cmdx/internal/domain"
	"github.com/doeshing/cmdx/internal/pkg/filesystem"
	"github.com/doeshing/cmdx/internal/ports"
)

// ConfigPathEnv overrides the config file location.
const ConfigPathEnv = domain.EnvPrefix + "_CONFIG"

// FileLoader loads YAML configuration from <config dir>/config.yaml
// (overridable via CMDX_CONFIG) and applies CMDX_* environment overrides.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. An empty path uses the default location.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Path returns the file the loader reads.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return expandPath(l.overridePath)
	}
	if custom := os.Getenv(ConfigPathEnv); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.ConfigDir(), domain.ConfigFileName)
}

// Load implements ports.ConfigProvider. A missing file is created from the
// embedded defaults.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	if err := filesystem.EnsureDir(filepath.Dir(path)); err != nil {
		return domain.Config{}, fmt.Errorf("create config dir: %w", err)
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions); err != nil {
			return domain.Config{}, fmt.Errorf("write default config: %w", err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(domain.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return domain.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg domain.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return domain.Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	return hydrateDefaults(cfg, filepath.Dir(path)), nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("config_format_version", d.ConfigFormatVersion)
	v.SetDefault("defaults.from", d.Defaults.From)
	v.SetDefault("defaults.to", d.Defaults.To)
	v.SetDefault("defaults.package_manager", d.Defaults.PackageManager)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.color", d.Output.Color)
	v.SetDefault("output.show_warnings", d.Output.ShowWarnings)
	v.SetDefault("mappings.file", d.Mappings.File)
	v.SetDefault("history.enabled", d.History.Enabled)
	v.SetDefault("history.backend", d.History.Backend)
	v.SetDefault("history.path", d.History.Path)
	v.SetDefault("history.limit", d.History.Limit)
	v.SetDefault("preprocess.from", d.Preprocess.From)
}

// DefaultConfig returns the settings used when the file omits a key.
func DefaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Defaults: domain.DefaultsSettings{
			From: string(domain.OSWindows),
		},
		Output: domain.OutputSettings{
			Format:       domain.OutputText,
			Color:        domain.ColorAuto,
			ShowWarnings: true,
		},
		History: domain.HistorySettings{
			Enabled: true,
			Backend: domain.HistoryBackendSQLite,
			Limit:   domain.DefaultHistoryLimit,
		},
		Preprocess: domain.PreprocessSettings{
			From: string(domain.OSWindows),
		},
	}
}

func hydrateDefaults(cfg domain.Config, dir string) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Defaults.From == "" {
		cfg.Defaults.From = string(domain.OSWindows)
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = domain.OutputText
	}
	if cfg.Output.Color == "" {
		cfg.Output.Color = domain.ColorAuto
	}
	if cfg.History.Backend == "" {
		cfg.History.Backend = domain.HistoryBackendSQLite
	}
	if cfg.Preprocess.From == "" {
		cfg.Preprocess.From = string(domain.OSWindows)
	}
	if cfg.Mappings.File == "" {
		cfg.Mappings.File = filepath.Join(dir, domain.MappingsFileName)
	} else {
		cfg.Mappings.File = expandPath(cfg.Mappings.File)
	}
	if cfg.History.Path != "" {
		cfg.History.Path = expandPath(cfg.History.Path)
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
