package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/cmdx/internal/application/translate"
	"github.com/doeshing/cmdx/internal/domain"
	"github.com/doeshing/cmdx/internal/ports"
)

// Translator runs engine translations for the CLI and records them in
// history. History may be nil when recording is disabled. Risk, when set,
// adds a warning to command and package results that match a risk rule.
type Translator struct {
	Engine  *translate.Engine
	History ports.HistoryRepository
	Risk    ports.SecurityService
	Logger  ports.Logger

	now   func() time.Time
	newID func() string
}

// NewTranslator wires a Translator.
func NewTranslator(engine *translate.Engine, history ports.HistoryRepository, logger ports.Logger) *Translator {
	return &Translator{
		Engine:  engine,
		History: history,
		Logger:  logger,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

// Command translates a command line. Raw selects single-command mode; the
// default handles compound lines and path arguments.
func (s *Translator) Command(line string, from, to domain.OS, raw bool) (domain.TranslationResult, error) {
	var (
		res domain.TranslationResult
		err error
	)
	if raw {
		res, err = s.Engine.TranslateCommand(line, from, to)
	} else {
		res, err = s.Engine.TranslateCompoundCommand(line, from, to)
	}
	if err == nil {
		res.Warnings = append(res.Warnings, s.riskWarnings(res.Translated)...)
	}
	s.record(domain.KindCommand, string(from), string(to), line, res.Translated, res.Warnings, err)
	return res, err
}

// Path translates a path between explicit conventions.
func (s *Translator) Path(path string, from, to domain.OS) (domain.PathResult, error) {
	res, err := s.Engine.TranslatePath(path, from, to)
	s.record(domain.KindPath, string(from), string(to), path, res.Path, res.Warnings, err)
	return res, err
}

// PathAuto translates a path whose source convention is guessed.
func (s *Translator) PathAuto(path string, to domain.OS) (domain.PathResult, error) {
	res, err := s.Engine.TranslatePathAuto(path, to)
	s.record(domain.KindPath, string(res.From), string(to), path, res.Path, res.Warnings, err)
	return res, err
}

// Env rewrites variable references.
func (s *Translator) Env(text string, from, to domain.OS) string {
	out := s.Engine.TranslateEnvVars(text, from, to)
	s.record(domain.KindEnv, string(from), string(to), text, out, nil, nil)
	return out
}

// Package translates a package-manager command. An empty fromPM means the
// manager is read from the line.
func (s *Translator) Package(line string, fromPM, toPM domain.PackageManager) (domain.PackageResult, error) {
	var (
		res domain.PackageResult
		err error
	)
	if fromPM == "" {
		res, err = s.Engine.TranslatePackageCommandAuto(line, toPM)
	} else {
		res, err = s.Engine.TranslatePackageCommand(line, fromPM, toPM)
	}
	if err == nil {
		res.Warnings = append(res.Warnings, s.riskWarnings(res.Translated)...)
	}
	source := string(fromPM)
	if res.From != "" {
		source = string(res.From)
	}
	s.record(domain.KindPackage, source, string(toPM), line, res.Translated, res.Warnings, err)
	return res, err
}

// Script swaps a script file extension.
func (s *Translator) Script(name string, from, to domain.OS) string {
	out := s.Engine.TranslateScriptExtension(name, from, to)
	s.record(domain.KindScript, string(from), string(to), name, out, nil, nil)
	return out
}

// Shebang rewrites a script header line.
func (s *Translator) Shebang(line string, from, to domain.OS) string {
	out := s.Engine.TranslateShebang(line, from, to)
	s.record(domain.KindShebang, string(from), string(to), line, out, nil, nil)
	return out
}

// Preprocess returns the full translation of line, or line itself when it
// cannot be translated. It never records history.
func (s *Translator) Preprocess(line string, from, to domain.OS) string {
	if strings.TrimSpace(line) == "" {
		return line
	}
	res, err := s.Engine.TranslateCompoundCommand(line, from, to)
	if err != nil {
		s.Logger.Debug("preprocess passthrough", map[string]interface{}{"line": line, "error": err.Error()})
		return line
	}
	return res.Translated
}

func (s *Translator) riskWarnings(command string) []string {
	if s.Risk == nil {
		return nil
	}
	assessment := s.Risk.Evaluate(command)
	if !assessment.Risky() {
		return nil
	}
	warnings := make([]string, 0, len(assessment.Reasons))
	for _, reason := range assessment.Reasons {
		warnings = append(warnings, fmt.Sprintf("%s risk: %s", assessment.Level, reason))
	}
	return warnings
}

func (s *Translator) record(kind domain.TranslationKind, from, to, original, translated string, warnings []string, err error) {
	if s.History == nil {
		return
	}
	rec := domain.HistoryRecord{
		ID:         s.newID(),
		Timestamp:  s.now(),
		Kind:       kind,
		From:       from,
		To:         to,
		Original:   original,
		Translated: translated,
		Warnings:   warnings,
		Success:    err == nil,
	}
	if err != nil {
		rec.Error = err.Error()
	}
	if saveErr := s.History.Save(rec); saveErr != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{"error": saveErr.Error()})
	}
}
