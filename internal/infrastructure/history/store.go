package history

import (
	"path/filepath"

	"github.com/doeshing/cmdx/internal/domain"
	"github.com/doeshing/cmdx/internal/ports"
)

const (
	sqliteFileName = "history.db"
	jsonlFileName  = "history.jsonl"
)

// Open returns the configured store. When sqlite cannot be opened the jsonl
// store in the same directory is used instead.
func Open(settings domain.HistorySettings, configDir string, logger ports.Logger) ports.HistoryRepository {
	dir := filepath.Join(configDir, "history")
	if settings.Backend == domain.HistoryBackendFile {
		path := settings.Path
		if path == "" {
			path = filepath.Join(dir, jsonlFileName)
		}
		return NewFileStore(path)
	}

	path := settings.Path
	if path == "" {
		path = filepath.Join(dir, sqliteFileName)
	}
	store, err := NewSQLiteStore(path)
	if err != nil {
		fallback := filepath.Join(filepath.Dir(path), jsonlFileName)
		logger.Warn("sqlite history unavailable, using jsonl", map[string]interface{}{
			"error":    err.Error(),
			"fallback": fallback,
		})
		return NewFileStore(fallback)
	}
	return store
}
