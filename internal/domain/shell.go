package domain

// ShellName enumerates shells with a preprocess hook.
type ShellName string

const (
	ShellUnknown ShellName = "unknown"
	ShellZsh     ShellName = "zsh"
	ShellBash    ShellName = "bash"
)

// ShellInstallResult describes install/uninstall outcomes.
type ShellInstallResult struct {
	Shell         ShellName `json:"shell" yaml:"shell"`
	ScriptPath    string    `json:"script_path" yaml:"script_path"`
	RCFile        string    `json:"rc_file" yaml:"rc_file"`
	ScriptUpdated bool      `json:"script_updated" yaml:"script_updated"`
	RCUpdated     bool      `json:"rc_updated" yaml:"rc_updated"`
}

// ShellStatus captures current integration state.
type ShellStatus struct {
	Shell        ShellName `json:"shell" yaml:"shell"`
	ScriptPath   string    `json:"script_path" yaml:"script_path"`
	RCFile       string    `json:"rc_file" yaml:"rc_file"`
	ScriptExists bool      `json:"script_exists" yaml:"script_exists"`
	LinePresent  bool      `json:"line_present" yaml:"line_present"`
	Error        string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// Installed reports whether the hook is both written and sourced.
func (s ShellStatus) Installed() bool {
	return s.ScriptExists && s.LinePresent
}
