// Package translate rewrites shell commands, paths, environment variables,
// package-manager invocations and script headers between operating systems.
//
// The package-level functions use a shared engine built from the built-in
// tables. Callers that need user overlays construct their own Engine.
package translate

import (
	"sync"

	"github.com/doeshing/cmdx/internal/domain"
)

// Engine owns a read-only set of lookup tables. It is safe for concurrent use.
type Engine struct {
	tables *tables
}

// Option customises an Engine at construction.
type Option func(*engineOptions)

type engineOptions struct {
	overlays []Overlay
}

// WithOverlay layers extra mappings over the built-in tables. Overlays apply
// in the order given; later entries win.
func WithOverlay(o Overlay) Option {
	return func(opts *engineOptions) {
		opts.overlays = append(opts.overlays, o)
	}
}

var (
	builtinOnce   sync.Once
	builtinTables *tables

	defaultOnce   sync.Once
	defaultEngine *Engine
)

func builtin() *tables {
	builtinOnce.Do(func() {
		builtinTables = newTables()
	})
	return builtinTables
}

// New builds an engine. Overlays are validated; an invalid overlay yields an
// error wrapping domain.ErrInvalidMapping.
func New(opts ...Option) (*Engine, error) {
	var o engineOptions
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.overlays) == 0 {
		return &Engine{tables: builtin()}, nil
	}
	t := builtin().clone()
	for _, overlay := range o.overlays {
		if err := overlay.Validate(); err != nil {
			return nil, err
		}
		overlay.apply(t)
	}
	return &Engine{tables: t}, nil
}

// Default returns the shared engine over the built-in tables.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = &Engine{tables: builtin()}
	})
	return defaultEngine
}

// TranslateCommand translates a single simple command with the default engine.
func TranslateCommand(line string, from, to domain.OS) (domain.TranslationResult, error) {
	return Default().TranslateCommand(line, from, to)
}

// TranslateCompoundCommand translates a compound command with the default engine.
func TranslateCompoundCommand(line string, from, to domain.OS) (domain.TranslationResult, error) {
	return Default().TranslateCompoundCommand(line, from, to)
}

// TranslateFull translates a command and its path arguments with the default engine.
func TranslateFull(line string, from, to domain.OS) (domain.TranslationResult, error) {
	return Default().TranslateFull(line, from, to)
}

// TranslateBatch translates independent lines with the default engine.
func TranslateBatch(lines []string, from, to domain.OS) []domain.BatchItem {
	return Default().TranslateBatch(lines, from, to)
}

// TranslatePath translates a path with the default engine.
func TranslatePath(path string, from, to domain.OS) (domain.PathResult, error) {
	return Default().TranslatePath(path, from, to)
}

// TranslatePathAuto translates a path whose source convention is guessed.
func TranslatePathAuto(path string, to domain.OS) (domain.PathResult, error) {
	return Default().TranslatePathAuto(path, to)
}

// TranslatePaths translates several paths with the default engine.
func TranslatePaths(paths []string, from, to domain.OS) []domain.PathBatchItem {
	return Default().TranslatePaths(paths, from, to)
}

// TranslateEnvVars rewrites variable references with the default engine.
func TranslateEnvVars(text string, from, to domain.OS) string {
	return Default().TranslateEnvVars(text, from, to)
}

// TranslatePackageCommand translates a package-manager command with the default engine.
func TranslatePackageCommand(line string, fromPM, toPM domain.PackageManager) (domain.PackageResult, error) {
	return Default().TranslatePackageCommand(line, fromPM, toPM)
}

// TranslatePackageCommandAuto translates a package-manager command whose
// manager is read from the line.
func TranslatePackageCommandAuto(line string, toPM domain.PackageManager) (domain.PackageResult, error) {
	return Default().TranslatePackageCommandAuto(line, toPM)
}

// TranslateScriptExtension swaps a script extension with the default engine.
func TranslateScriptExtension(filename string, from, to domain.OS) string {
	return Default().TranslateScriptExtension(filename, from, to)
}

// TranslateShebang rewrites a script header with the default engine.
func TranslateShebang(line string, from, to domain.OS) string {
	return Default().TranslateShebang(line, from, to)
}

// IsNativeCommand reports whether cmd is canonical on os.
func IsNativeCommand(cmd string, os domain.OS) bool {
	return Default().IsNativeCommand(cmd, os)
}

// LookupCommand returns the built-in mapping for cmd between the pair.
func LookupCommand(cmd string, from, to domain.OS) (domain.CommandMapping, bool) {
	return Default().LookupCommand(cmd, from, to)
}

// LookupEnvVar maps one variable name with the default engine.
func LookupEnvVar(name string, from, to domain.OS) (string, bool) {
	return Default().LookupEnvVar(name, from, to)
}

// ListCommands returns the sorted built-in source commands for the pair.
func ListCommands(from, to domain.OS) []string {
	return Default().ListCommands(from, to)
}
