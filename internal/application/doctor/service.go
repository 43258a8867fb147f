package doctor

import (
	"context"
	"fmt"

	"github.com/doeshing/cmdx/internal/application/translate"
	"github.com/doeshing/cmdx/internal/domain"
	"github.com/doeshing/cmdx/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	MappingSource  ports.MappingSource
	History        ports.HistoryRepository
	HostDetector   ports.HostDetector
	Shell          ports.ShellIntegrator
}

// Run executes checks and returns a report. Only a config load failure is
// returned as an error; every other problem becomes a check.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded %s (format %s)", s.ConfigProvider.Path(), cfg.ConfigFormatVersion)))

	overlay := translate.Overlay{}
	if s.MappingSource != nil {
		loaded, err := s.MappingSource.Load(ctx, cfg.Mappings.File)
		switch {
		case err != nil:
			checks = append(checks, fail("Mappings", err.Error()))
		case loaded.Empty():
			checks = append(checks, ok("Mappings", "no overlay, built-in tables only"))
		default:
			overlay = loaded
			checks = append(checks, ok("Mappings", fmt.Sprintf("%d commands, %d env pairs from %s",
				len(loaded.Commands), len(loaded.Env), cfg.Mappings.File)))
		}
	}

	checks = append(checks, historyCheck(cfg.History, s.History))

	if s.HostDetector != nil {
		host := s.HostDetector.Detect(ctx)
		details := fmt.Sprintf("%s/%s", host.OS.DisplayName(), host.Arch)
		if host.Distro != "" {
			details += ", " + host.Distro.DisplayName()
		}
		if host.PackageManager != "" {
			details += ", " + string(host.PackageManager)
		}
		checks = append(checks, ok("Host", details))
	}

	if s.Shell != nil {
		checks = append(checks, shellCheck(s.Shell.Status("")))
	}

	checks = append(checks, engineCheck(overlay))

	return domain.HealthReport{Checks: checks}, nil
}

func historyCheck(settings domain.HistorySettings, repo ports.HistoryRepository) domain.HealthCheck {
	if !settings.Enabled {
		return warn("History", "disabled")
	}
	if repo == nil {
		return warn("History", "store not initialized")
	}
	if _, err := repo.Records(1, ""); err != nil {
		return fail("History", fmt.Sprintf("%s: %v", repo.Path(), err))
	}
	return ok("History", repo.Path())
}

func shellCheck(status domain.ShellStatus) domain.HealthCheck {
	switch {
	case status.Error != "":
		return warn("Shell hook", fmt.Sprintf("%s: %s", status.Shell, status.Error))
	case status.Installed():
		return ok("Shell hook", fmt.Sprintf("%s sourced from %s", status.ScriptPath, status.RCFile))
	case status.ScriptExists:
		return warn("Shell hook", fmt.Sprintf("%s not sourced from %s", status.ScriptPath, status.RCFile))
	default:
		return warn("Shell hook", fmt.Sprintf("not installed for %s", status.Shell))
	}
}

func engineCheck(overlay translate.Overlay) domain.HealthCheck {
	var opts []translate.Option
	if !overlay.Empty() {
		opts = append(opts, translate.WithOverlay(overlay))
	}
	engine, err := translate.New(opts...)
	if err != nil {
		return fail("Engine", err.Error())
	}
	res, err := engine.TranslateCommand("dir", domain.OSWindows, domain.OSLinux)
	if err != nil {
		return fail("Engine", err.Error())
	}
	if res.Translated != "ls" {
		return fail("Engine", fmt.Sprintf("dir translated to %q, want ls", res.Translated))
	}
	return ok("Engine", "self-check passed")
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
