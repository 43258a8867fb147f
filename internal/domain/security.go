package domain

// RiskLevel enumerates how destructive a translated command is.
type RiskLevel string

const (
	RiskSafe     RiskLevel = "safe"
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Severity orders levels; unknown levels rank as safe.
func (l RiskLevel) Severity() int {
	switch l {
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	case RiskCritical:
		return 4
	default:
		return 0
	}
}

// RiskAssessment aggregates guardrail evaluation data.
type RiskAssessment struct {
	Level        RiskLevel `json:"level" yaml:"level"`
	Reasons      []string  `json:"reasons,omitempty" yaml:"reasons,omitempty"`
	MatchedRules []string  `json:"matched_rules,omitempty" yaml:"matched_rules,omitempty"`
}

// Risky reports whether any rule matched.
func (r RiskAssessment) Risky() bool {
	return r.Level.Severity() > 0
}
