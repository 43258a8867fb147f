package shell

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/doeshing/cmdx/assets"
	"github.com/doeshing/cmdx/internal/domain"
)

func newTestInstaller(t *testing.T, shell string) *Installer {
	t.Helper()
	home := t.TempDir()
	return &Installer{
		home:      home,
		configDir: filepath.Join(home, ".config", "cmdx"),
		getenv: func(key string) string {
			if key == "SHELL" {
				return shell
			}
			return ""
		},
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestInstallerLifecycle(t *testing.T) {
	installer := newTestInstaller(t, "/usr/bin/zsh")
	rc := filepath.Join(installer.home, ".zshrc")
	if err := os.WriteFile(rc, []byte("export EDITOR=vim\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	res, err := installer.Install("", false)
	if err != nil {
		t.Fatalf("Install error: %v", err)
	}
	if res.Shell != domain.ShellZsh || !res.RCUpdated || res.RCFile != rc {
		t.Fatalf("Install = %+v", res)
	}
	if got := readFile(t, res.ScriptPath); got != assets.ZshHook {
		t.Fatal("hook script does not match the embedded asset")
	}
	line := `[ -f "$HOME/.config/cmdx/shell/zsh.sh" ] && source "$HOME/.config/cmdx/shell/zsh.sh"`
	if got, want := readFile(t, rc), "export EDITOR=vim\n"+headerComment+line+"\n"; got != want {
		t.Fatalf("rc = %q, want %q", got, want)
	}
	if !installer.Status("zsh").Installed() {
		t.Fatal("Status should report installed")
	}

	again, err := installer.Install("zsh", false)
	if err != nil || again.RCUpdated {
		t.Fatalf("second Install = %+v, %v", again, err)
	}
	forced, err := installer.Install("zsh", true)
	if err != nil || !forced.RCUpdated {
		t.Fatalf("forced Install = %+v, %v", forced, err)
	}
	if n := strings.Count(readFile(t, rc), line); n != 1 {
		t.Fatalf("source line present %d times", n)
	}

	removed, err := installer.Uninstall("zsh")
	if err != nil || !removed.RCUpdated {
		t.Fatalf("Uninstall = %+v, %v", removed, err)
	}
	if got := readFile(t, rc); got != "export EDITOR=vim\n" {
		t.Fatalf("rc after uninstall = %q", got)
	}
	status := installer.Status("zsh")
	if status.Installed() || !status.ScriptExists {
		t.Fatalf("Status after uninstall = %+v", status)
	}
}

func TestInstallerCreatesRCFile(t *testing.T) {
	installer := newTestInstaller(t, "")
	res, err := installer.Install("bash", false)
	if err != nil {
		t.Fatalf("Install error: %v", err)
	}
	if filepath.Base(res.RCFile) != ".bashrc" || !strings.HasPrefix(readFile(t, res.RCFile), headerComment) {
		t.Fatalf("Install = %+v", res)
	}
	if got := readFile(t, res.ScriptPath); got != assets.BashHook {
		t.Fatal("hook script does not match the embedded asset")
	}
}

func TestInstallerUnsupportedShell(t *testing.T) {
	installer := newTestInstaller(t, "/usr/bin/fish")

	if got := installer.DetectShell(); got != "fish" {
		t.Fatalf("DetectShell = %q", got)
	}
	if _, err := installer.Install("", false); !errors.Is(err, ErrUnsupportedShell) {
		t.Fatalf("Install error = %v", err)
	}
	if _, err := installer.Uninstall("tcsh"); !errors.Is(err, ErrUnsupportedShell) {
		t.Fatalf("Uninstall error = %v", err)
	}
	if status := installer.Status(""); status.Error == "" || status.Shell != domain.ShellUnknown {
		t.Fatalf("Status = %+v", status)
	}
	removed, err := installer.Uninstall("bash")
	if err != nil || removed.RCUpdated {
		t.Fatalf("Uninstall without rc = %+v, %v", removed, err)
	}
}
