// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The translation engine itself is pure and needs no
// ports; these interfaces cover the state around it: configuration, the user
// mapping overlay, translation history, host detection, risk rules, shell
// hooks and logging.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., ConfigProvider, HistoryRepository)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/cmdx/internal/application/translate"
	"github.com/doeshing/cmdx/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read <config dir>/config.yaml and CMDX_* variables.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
	Path() string
}

// MappingSource loads the user overlay layered over the built-in tables.
// A missing source yields an empty overlay, not an error.
type MappingSource interface {
	Load(ctx context.Context, path string) (translate.Overlay, error)
}

// HistoryRepository persists translations performed through the CLI.
type HistoryRepository interface {
	Save(record domain.HistoryRecord) error
	Records(limit int, search string) ([]domain.HistoryRecord, error)
	Clear() error
	ExportJSON(dest string) error
	Path() string
}

// HostDetector describes the machine the CLI runs on.
type HostDetector interface {
	Detect(context.Context) domain.HostInfo
}

// SecurityService flags translated commands that are destructive on the
// target system. It never blocks a translation; it only adds warnings.
type SecurityService interface {
	Evaluate(command string) domain.RiskAssessment
}

// ShellIntegrator manages the interactive shell hook that pipes typed lines
// through "cmdx preprocess".
type ShellIntegrator interface {
	Install(shell string, force bool) (domain.ShellInstallResult, error)
	Uninstall(shell string) (domain.ShellInstallResult, error)
	Status(shell string) domain.ShellStatus
	DetectShell() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
