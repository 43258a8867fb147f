package domain

import "time"

// TranslationKind names which translator produced a history record.
type TranslationKind string

const (
	KindCommand TranslationKind = "command"
	KindPath    TranslationKind = "path"
	KindEnv     TranslationKind = "env"
	KindPackage TranslationKind = "package"
	KindScript  TranslationKind = "script"
	KindShebang TranslationKind = "shebang"
)

// HistoryRecord captures one translation performed through the CLI.
type HistoryRecord struct {
	ID         string          `json:"id"`
	Timestamp  time.Time       `json:"timestamp"`
	Kind       TranslationKind `json:"kind"`
	From       string          `json:"from"`
	To         string          `json:"to"`
	Original   string          `json:"original"`
	Translated string          `json:"translated"`
	Warnings   []string        `json:"warnings,omitempty"`
	Success    bool            `json:"success"`
	Error      string          `json:"error,omitempty"`
}
