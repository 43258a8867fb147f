package security

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/cmdx/assets"
	"github.com/doeshing/cmdx/internal/domain"
	"github.com/doeshing/cmdx/internal/ports"
)

// Guardrail implements the SecurityService port.
type Guardrail struct {
	patterns []compiledPattern
}

type compiledPattern struct {
	re   *regexp.Regexp
	rule DangerPattern
}

// DangerPattern describes a regex-based guardrail rule.
type DangerPattern struct {
	Pattern string `yaml:"pattern"`
	Level   string `yaml:"level"`
	Message string `yaml:"message"`
}

// RulesFile is the YAML schema root.
type RulesFile struct {
	Rules struct {
		DangerPatterns []DangerPattern `yaml:"danger_patterns"`
	} `yaml:"rules"`
}

// NewGuardrail loads rules from path. A missing file or an empty rule list
// falls back to the embedded defaults.
func NewGuardrail(path string) (*Guardrail, error) {
	rules, err := loadRules(path)
	if err != nil {
		return nil, err
	}

	var compiled []compiledPattern
	for i, pattern := range rules.Rules.DangerPatterns {
		re, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			return nil, fmt.Errorf("guardrail rule %d: %w", i, err)
		}
		compiled = append(compiled, compiledPattern{
			re:   re,
			rule: pattern,
		})
	}

	return &Guardrail{patterns: compiled}, nil
}

// Rules returns the number of compiled rules.
func (g *Guardrail) Rules() int {
	return len(g.patterns)
}

// Evaluate implements ports.SecurityService.
func (g *Guardrail) Evaluate(command string) domain.RiskAssessment {
	assessment := domain.RiskAssessment{Level: domain.RiskSafe}
	if g == nil {
		return assessment
	}
	for _, pattern := range g.patterns {
		if !pattern.re.MatchString(command) {
			continue
		}
		level := domain.RiskLevel(pattern.rule.Level)
		if level.Severity() > assessment.Level.Severity() {
			assessment.Level = level
		}
		assessment.Reasons = append(assessment.Reasons, pattern.rule.Message)
		assessment.MatchedRules = append(assessment.MatchedRules, pattern.rule.Pattern)
	}
	return assessment
}

func loadRules(path string) (RulesFile, error) {
	data := assets.DefaultGuardrailYAML
	if path != "" {
		custom, err := os.ReadFile(path)
		switch {
		case err == nil:
			data = custom
		case !errors.Is(err, os.ErrNotExist):
			return RulesFile{}, fmt.Errorf("read guardrail rules %s: %w", path, err)
		}
	}

	var rules RulesFile
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return RulesFile{}, fmt.Errorf("parse guardrail rules %s: %w", path, err)
	}
	if len(rules.Rules.DangerPatterns) == 0 {
		if err := yaml.Unmarshal(assets.DefaultGuardrailYAML, &rules); err != nil {
			return RulesFile{}, err
		}
	}
	return rules, nil
}

var _ ports.SecurityService = (*Guardrail)(nil)
