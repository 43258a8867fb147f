package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for config and history files (rw-------)
	SecureFilePermissions = 0o600
	// ScriptFilePermissions is the permission for shell hook scripts (rw-r--r--)
	ScriptFilePermissions = 0o644
)

// Application identity
const (
	// AppName names the config directory and env prefix.
	AppName = "cmdx"
	// EnvPrefix is the prefix for environment overrides (CMDX_DEFAULTS_TO, ...).
	EnvPrefix = "CMDX"
	// ConfigFileName is the config file name inside the config directory.
	ConfigFileName = "config.yaml"
	// MappingsFileName is the default overlay file name inside the config directory.
	MappingsFileName = "mappings.yaml"
	// GuardrailFileName is the risk rules file inside the config directory.
	GuardrailFileName = "guardrail.yaml"
)

// History constants
const (
	// DefaultHistoryLimit is the default number of history records to display
	DefaultHistoryLimit = 20
	// DefaultHistorySearchLimit is the default number of search results to return
	DefaultHistorySearchLimit = 50
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
