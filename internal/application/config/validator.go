package config

import (
	"fmt"
	"strings"

	"github.com/doeshing/cmdx/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateDefaults(cfg.Defaults); err != nil {
		return err
	}
	if err := validateOutput(cfg.Output); err != nil {
		return err
	}
	if err := validateHistory(cfg.History); err != nil {
		return err
	}
	if _, err := domain.ParseOS(cfg.Preprocess.From); err != nil {
		return fmt.Errorf("preprocess.from: %w", err)
	}
	return nil
}

func validateDefaults(d domain.DefaultsSettings) error {
	if _, err := domain.ParseOS(d.From); err != nil {
		return fmt.Errorf("defaults.from: %w", err)
	}
	if d.To != "" {
		if _, err := domain.ParseOS(d.To); err != nil {
			return fmt.Errorf("defaults.to: %w", err)
		}
	}
	if d.PackageManager != "" {
		if _, err := domain.ParsePackageManager(d.PackageManager); err != nil {
			return fmt.Errorf("defaults.package_manager: %w", err)
		}
	}
	return nil
}

func validateOutput(out domain.OutputSettings) error {
	switch strings.ToLower(out.Format) {
	case domain.OutputText, domain.OutputJSON, domain.OutputYAML:
	default:
		return fmt.Errorf("output.format must be text|json|yaml, got %s", out.Format)
	}
	switch strings.ToLower(out.Color) {
	case domain.ColorAuto, domain.ColorAlways, domain.ColorNever:
	default:
		return fmt.Errorf("output.color must be auto|always|never, got %s", out.Color)
	}
	return nil
}

func validateHistory(history domain.HistorySettings) error {
	switch history.Backend {
	case domain.HistoryBackendSQLite, domain.HistoryBackendFile:
	default:
		return fmt.Errorf("history.backend must be sqlite|file, got %s", history.Backend)
	}
	if history.Limit < 0 {
		return fmt.Errorf("history.limit must be >= 0")
	}
	return nil
}
