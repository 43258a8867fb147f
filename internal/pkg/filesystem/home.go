package filesystem

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/doeshing/cmdx/internal/domain"
)

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// ConfigDir returns the per-user cmdx configuration directory.
func ConfigDir() string {
	return configDirFor(runtime.GOOS, os.Getenv, UserHomeDir())
}

func configDirFor(goos string, getenv func(string) string, home string) string {
	switch goos {
	case "windows":
		if appData := getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, domain.AppName)
		}
		return filepath.Join(home, "AppData", "Roaming", domain.AppName)
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", domain.AppName)
	default:
		if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, domain.AppName)
		}
		return filepath.Join(home, ".config", domain.AppName)
	}
}

// EnsureDir creates dir and its parents with the default permissions.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, domain.DirectoryPermissions)
}
