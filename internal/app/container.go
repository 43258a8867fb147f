package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	configapp "github.com/doeshing/cmdx/internal/application/config"
	"github.com/doeshing/cmdx/internal/application/doctor"
	"github.com/doeshing/cmdx/internal/application/translate"
	"github.com/doeshing/cmdx/internal/domain"
	"github.com/doeshing/cmdx/internal/infrastructure/config"
	"github.com/doeshing/cmdx/internal/infrastructure/history"
	"github.com/doeshing/cmdx/internal/infrastructure/host"
	"github.com/doeshing/cmdx/internal/infrastructure/mappings"
	"github.com/doeshing/cmdx/internal/infrastructure/security"
	"github.com/doeshing/cmdx/internal/infrastructure/shell"
	"github.com/doeshing/cmdx/internal/pkg/logger"
	"github.com/doeshing/cmdx/internal/ports"
	"github.com/doeshing/cmdx/internal/services"
)

// Options controls how the container is built.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	MappingSource  ports.MappingSource
	Engine         *translate.Engine
	Translator     *services.Translator
	HistoryStore   ports.HistoryRepository
	Guardrail      ports.SecurityService
	ShellInstaller ports.ShellIntegrator
	Host           domain.HostInfo
	DoctorService  *doctor.Service
	Logger         ports.Logger
	Verbose        bool
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	log := logger.New(opts.Verbose)

	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := configapp.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", cfgLoader.Path(), err)
	}
	log.Debug("config loaded", map[string]interface{}{"path": cfgLoader.Path()})

	mappingSource := mappings.NewFileSource()
	engine := translate.Default()
	overlay, err := mappingSource.Load(ctx, cfg.Mappings.File)
	switch {
	case err != nil:
		log.Warn("mapping overlay ignored", map[string]interface{}{"error": err.Error()})
	case !overlay.Empty():
		custom, err := translate.New(translate.WithOverlay(overlay))
		if err != nil {
			log.Warn("mapping overlay ignored", map[string]interface{}{"error": err.Error()})
		} else {
			engine = custom
			log.Debug("mapping overlay applied", map[string]interface{}{
				"file":     cfg.Mappings.File,
				"commands": len(overlay.Commands),
			})
		}
	}

	configDir := filepath.Dir(cfgLoader.Path())
	historyStore := history.Open(cfg.History, configDir, log)
	var recorder ports.HistoryRepository
	if cfg.History.Enabled {
		recorder = historyStore
	}

	translator := services.NewTranslator(engine, recorder, log)
	var guardrail ports.SecurityService
	if rules, err := security.NewGuardrail(filepath.Join(configDir, domain.GuardrailFileName)); err != nil {
		log.Warn("guardrail rules ignored", map[string]interface{}{"error": err.Error()})
	} else {
		guardrail = rules
		translator.Risk = rules
	}

	installer := shell.NewInstaller(configDir)
	detector := host.NewDetector()

	return &Container{
		Config:         cfg,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		MappingSource:  mappingSource,
		Engine:         engine,
		Translator:     translator,
		HistoryStore:   historyStore,
		Guardrail:      guardrail,
		ShellInstaller: installer,
		Host:           detector.Detect(ctx),
		DoctorService: &doctor.Service{
			ConfigProvider: cfgLoader,
			MappingSource:  mappingSource,
			History:        recorder,
			HostDetector:   detector,
			Shell:          installer,
		},
		Logger:  log,
		Verbose: opts.Verbose,
	}, nil
}

// SourceOS resolves a source OS: the flag value, else defaults.from.
func (c *Container) SourceOS(flag domain.OS) domain.OS {
	if flag != "" {
		return flag
	}
	if parsed, err := domain.ParseOS(c.Config.Defaults.From); err == nil {
		return parsed
	}
	return domain.OSWindows
}

// TargetOS resolves a target OS: the flag value, else defaults.to, else the host.
func (c *Container) TargetOS(flag domain.OS) domain.OS {
	if flag != "" {
		return flag
	}
	if c.Config.Defaults.To != "" {
		if parsed, err := domain.ParseOS(c.Config.Defaults.To); err == nil {
			return parsed
		}
	}
	return c.Host.OS
}

// PreprocessSource is the OS shell-hook input is assumed to come from.
func (c *Container) PreprocessSource() domain.OS {
	if parsed, err := domain.ParseOS(c.Config.Preprocess.From); err == nil {
		return parsed
	}
	return c.SourceOS("")
}

// TargetPackageManager resolves the target manager: the flag value, else
// defaults.package_manager, else the host's, else apt.
func (c *Container) TargetPackageManager(flag domain.PackageManager) domain.PackageManager {
	if flag != "" {
		return flag
	}
	if c.Config.Defaults.PackageManager != "" {
		if pm, err := domain.ParsePackageManager(c.Config.Defaults.PackageManager); err == nil {
			return pm
		}
	}
	if c.Host.PackageManager != "" {
		return c.Host.PackageManager
	}
	return domain.PMApt
}

// Close releases the history store.
func (c *Container) Close() error {
	if closer, ok := c.HistoryStore.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
