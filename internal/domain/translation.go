package domain

import "strings"

// FlagPair maps one source flag to its target spelling. An empty Target drops
// the flag; a Target with spaces expands to several tokens.
type FlagPair struct {
	Source string `json:"source" yaml:"source" toml:"source"`
	Target string `json:"target" yaml:"target" toml:"target"`
}

// TargetTokens splits the target spelling into emitted tokens.
func (f FlagPair) TargetTokens() []string {
	return strings.Fields(f.Target)
}

// CommandMapping describes how one command is rewritten for a given OS pair.
// Flag order is authoritative.
type CommandMapping struct {
	SourceCommand string     `json:"source_command" yaml:"source_command"`
	TargetCommand string     `json:"target_command" yaml:"target_command"`
	Flags         []FlagPair `json:"flags,omitempty" yaml:"flags,omitempty"`
	Notes         string     `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Lookup returns the pair whose source matches flag exactly.
func (m CommandMapping) Lookup(flag string) (FlagPair, bool) {
	for _, pair := range m.Flags {
		if pair.Source == flag {
			return pair, true
		}
	}
	return FlagPair{}, false
}

// Operator joins two segments of a compound command.
type Operator string

const (
	OperatorNone Operator = ""
	OperatorAnd  Operator = "&&"
	OperatorOr   Operator = "||"
	OperatorPipe Operator = "|"
	OperatorSeq  Operator = ";"
)

// Segment is one simple command of a compound line and the operator that
// follows it. The final segment carries OperatorNone.
type Segment struct {
	Text     string   `json:"text"`
	Operator Operator `json:"operator,omitempty"`
}

// Token is a single shell word with its quotes removed.
type Token struct {
	Value  string
	Quoted bool
}

// TranslationResult is the outcome of translating a command line.
type TranslationResult struct {
	Original         string   `json:"original" yaml:"original"`
	Translated       string   `json:"translated" yaml:"translated"`
	From             OS       `json:"from" yaml:"from"`
	To               OS       `json:"to" yaml:"to"`
	HadUnmappedFlags bool     `json:"had_unmapped_flags" yaml:"had_unmapped_flags"`
	Warnings         []string `json:"warnings" yaml:"warnings"`
}

func (r TranslationResult) String() string {
	return r.Translated
}

// PathResult is the outcome of translating a filesystem path.
type PathResult struct {
	Original string   `json:"original" yaml:"original"`
	Path     string   `json:"path" yaml:"path"`
	From     OS       `json:"from" yaml:"from"`
	To       OS       `json:"to" yaml:"to"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func (r PathResult) String() string {
	return r.Path
}

// PackageResult is the outcome of translating a package-manager invocation.
type PackageResult struct {
	Original         string         `json:"original" yaml:"original"`
	Translated       string         `json:"translated" yaml:"translated"`
	From             PackageManager `json:"from" yaml:"from"`
	To               PackageManager `json:"to" yaml:"to"`
	Operation        Operation      `json:"operation,omitempty" yaml:"operation,omitempty"`
	RequiresSudo     bool           `json:"requires_sudo" yaml:"requires_sudo"`
	HadUnmappedFlags bool           `json:"had_unmapped_flags" yaml:"had_unmapped_flags"`
	Warnings         []string       `json:"warnings" yaml:"warnings"`
}

func (r PackageResult) String() string {
	return r.Translated
}

// BatchItem pairs a batch input with its independent outcome.
type BatchItem struct {
	Input  string
	Result TranslationResult
	Err    error
}

// PathBatchItem pairs a path with its independent outcome.
type PathBatchItem struct {
	Input  string
	Result PathResult
	Err    error
}
