package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/doeshing/cmdx/assets"
	"github.com/doeshing/cmdx/internal/domain"
	"github.com/doeshing/cmdx/internal/pkg/filesystem"
	"github.com/doeshing/cmdx/internal/ports"
)

const headerComment = "# Added by cmdx\n"

// ErrUnsupportedShell is returned for shells without a preprocess hook.
var ErrUnsupportedShell = errors.New("unsupported shell")

// Installer writes the preprocess hook into the config directory and
// sources it from the shell's rc file.
type Installer struct {
	home      string
	configDir string
	getenv    func(string) string
}

// NewInstaller builds an installer rooted at the user's home directory.
func NewInstaller(configDir string) *Installer {
	return &Installer{
		home:      filesystem.UserHomeDir(),
		configDir: configDir,
		getenv:    os.Getenv,
	}
}

// Install writes the hook script and adds a source line to the rc file.
// The shell is detected from $SHELL when empty. Force rewrites the source
// line even when it is already present.
func (i *Installer) Install(shell string, force bool) (domain.ShellInstallResult, error) {
	name := i.normalize(shell)
	script, err := scriptFor(name)
	if err != nil {
		return domain.ShellInstallResult{}, err
	}
	scriptPath, rcFile := i.paths(name)

	if err := filesystem.EnsureDir(filepath.Dir(scriptPath)); err != nil {
		return domain.ShellInstallResult{}, fmt.Errorf("create hook dir: %w", err)
	}
	if err := os.WriteFile(scriptPath, []byte(script), domain.ScriptFilePermissions); err != nil {
		return domain.ShellInstallResult{}, fmt.Errorf("write hook: %w", err)
	}

	rcUpdated, err := ensureLine(rcFile, i.sourceLine(scriptPath), force)
	if err != nil {
		return domain.ShellInstallResult{}, err
	}

	return domain.ShellInstallResult{
		Shell:         name,
		ScriptPath:    scriptPath,
		RCFile:        rcFile,
		ScriptUpdated: true,
		RCUpdated:     rcUpdated,
	}, nil
}

// Uninstall removes the source line. The hook script is left in place.
func (i *Installer) Uninstall(shell string) (domain.ShellInstallResult, error) {
	name := i.normalize(shell)
	if name == domain.ShellUnknown {
		return domain.ShellInstallResult{}, ErrUnsupportedShell
	}
	scriptPath, rcFile := i.paths(name)
	updated, err := removeLine(rcFile, i.sourceLine(scriptPath))
	if err != nil {
		return domain.ShellInstallResult{}, err
	}
	return domain.ShellInstallResult{
		Shell:      name,
		ScriptPath: scriptPath,
		RCFile:     rcFile,
		RCUpdated:  updated,
	}, nil
}

// Status reports whether the hook is written and sourced.
func (i *Installer) Status(shell string) domain.ShellStatus {
	name := i.normalize(shell)
	if name == domain.ShellUnknown {
		return domain.ShellStatus{Shell: name, Error: ErrUnsupportedShell.Error()}
	}
	scriptPath, rcFile := i.paths(name)
	status := domain.ShellStatus{
		Shell:      name,
		ScriptPath: scriptPath,
		RCFile:     rcFile,
	}
	if info, err := os.Stat(scriptPath); err == nil && info.Mode().IsRegular() {
		status.ScriptExists = true
	}
	if contents, err := os.ReadFile(rcFile); err == nil {
		status.LinePresent = strings.Contains(string(contents), i.sourceLine(scriptPath))
	}
	return status
}

// DetectShell returns the base name of $SHELL.
func (i *Installer) DetectShell() string {
	shell := i.getenv("SHELL")
	if shell == "" {
		return ""
	}
	return filepath.Base(shell)
}

func (i *Installer) normalize(shell string) domain.ShellName {
	if shell == "" {
		shell = i.DetectShell()
	}
	switch strings.ToLower(shell) {
	case "zsh":
		return domain.ShellZsh
	case "bash":
		return domain.ShellBash
	default:
		return domain.ShellUnknown
	}
}

func (i *Installer) paths(shell domain.ShellName) (string, string) {
	script := filepath.Join(i.configDir, "shell", string(shell)+".sh")
	return script, filepath.Join(i.home, "."+string(shell)+"rc")
}

func (i *Installer) sourceLine(scriptPath string) string {
	path := scriptPath
	if rel, err := filepath.Rel(i.home, scriptPath); err == nil && !strings.HasPrefix(rel, "..") {
		path = "$HOME/" + filepath.ToSlash(rel)
	}
	return fmt.Sprintf(`[ -f "%s" ] && source "%s"`, path, path)
}

func scriptFor(shell domain.ShellName) (string, error) {
	switch shell {
	case domain.ShellZsh:
		return assets.ZshHook, nil
	case domain.ShellBash:
		return assets.BashHook, nil
	default:
		return "", ErrUnsupportedShell
	}
}

func ensureLine(path, line string, force bool) (bool, error) {
	contents, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return true, os.WriteFile(path, []byte(headerComment+line+"\n"), domain.ScriptFilePermissions)
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if strings.Contains(string(contents), line) && !force {
		return false, nil
	}

	kept := withoutLine(string(contents), line)
	if !strings.Contains(kept, headerComment) {
		kept += headerComment
	}
	return true, os.WriteFile(path, []byte(kept+line+"\n"), domain.ScriptFilePermissions)
}

func removeLine(path, line string) (bool, error) {
	contents, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if !strings.Contains(string(contents), line) {
		return false, nil
	}
	kept := strings.Replace(withoutLine(string(contents), line), headerComment, "", 1)
	return true, os.WriteFile(path, []byte(kept), domain.ScriptFilePermissions)
}

// withoutLine drops every line containing needle and keeps a trailing newline.
func withoutLine(contents, needle string) string {
	var kept []string
	for _, existing := range strings.Split(strings.TrimRight(contents, "\n"), "\n") {
		if strings.Contains(existing, needle) {
			continue
		}
		kept = append(kept, existing)
	}
	out := strings.Join(kept, "\n")
	if out != "" {
		out += "\n"
	}
	return out
}

var _ ports.ShellIntegrator = (*Installer)(nil)
