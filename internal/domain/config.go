package domain

// Config mirrors <config dir>/config.yaml.
type Config struct {
	ConfigFormatVersion string             `json:"config_format_version" yaml:"config_format_version" mapstructure:"config_format_version"`
	Defaults            DefaultsSettings   `json:"defaults" yaml:"defaults" mapstructure:"defaults"`
	Output              OutputSettings     `json:"output" yaml:"output" mapstructure:"output"`
	Mappings            MappingSettings    `json:"mappings" yaml:"mappings" mapstructure:"mappings"`
	History             HistorySettings    `json:"history" yaml:"history" mapstructure:"history"`
	Preprocess          PreprocessSettings `json:"preprocess" yaml:"preprocess" mapstructure:"preprocess"`
}

// DefaultsSettings holds the OS pair and package manager used when flags are omitted.
// An empty To or PackageManager means "detect from the host".
type DefaultsSettings struct {
	From           string `json:"from" yaml:"from" mapstructure:"from"`
	To             string `json:"to" yaml:"to" mapstructure:"to"`
	PackageManager string `json:"package_manager" yaml:"package_manager" mapstructure:"package_manager"`
}

// OutputSettings controls how results are printed.
type OutputSettings struct {
	Format       string `json:"format" yaml:"format" mapstructure:"format"`
	Color        string `json:"color" yaml:"color" mapstructure:"color"`
	ShowWarnings bool   `json:"show_warnings" yaml:"show_warnings" mapstructure:"show_warnings"`
}

// MappingSettings points at a user overlay of extra translation tables.
type MappingSettings struct {
	File string `json:"file" yaml:"file" mapstructure:"file"`
}

// HistorySettings controls the translation history store.
type HistorySettings struct {
	Enabled bool   `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	Backend string `json:"backend" yaml:"backend" mapstructure:"backend"`
	Path    string `json:"path" yaml:"path" mapstructure:"path"`
	Limit   int    `json:"limit" yaml:"limit" mapstructure:"limit"`
}

// PreprocessSettings configures the shell-hook entry point.
type PreprocessSettings struct {
	From string `json:"from" yaml:"from" mapstructure:"from"`
}

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// History backends.
const (
	HistoryBackendSQLite = "sqlite"
	HistoryBackendFile   = "file"
)
