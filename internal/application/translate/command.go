package translate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/exp/slices"

	"github.com/doeshing/cmdx/internal/domain"
)

const maxSuggestions = 3

// parsedCommand is one simple command split into its parts.
type parsedCommand struct {
	name        domain.Token
	flags       []string
	positionals []domain.Token
	mapping     domain.CommandMapping
	passthrough bool
	warnings    []string
}

func newResult(original, translated string, from, to domain.OS) domain.TranslationResult {
	return domain.TranslationResult{
		Original:   original,
		Translated: translated,
		From:       from,
		To:         to,
		Warnings:   []string{},
	}
}

// TranslateCommand translates a single simple command.
func (e *Engine) TranslateCommand(line string, from, to domain.OS) (domain.TranslationResult, error) {
	parsed, err := e.parseCommand(line, from, to)
	if err != nil {
		return domain.TranslationResult{}, err
	}
	if parsed.passthrough {
		result := newResult(line, line, from, to)
		result.Warnings = append(result.Warnings, parsed.warnings...)
		return result, nil
	}
	return e.render(line, parsed, from, to, parsed.positionals), nil
}

// parseCommand tokenizes line and resolves its mapping, or marks it as a
// passthrough.
func (e *Engine) parseCommand(line string, from, to domain.OS) (parsedCommand, error) {
	if strings.TrimSpace(line) == "" {
		return parsedCommand{}, domain.ErrEmptyCommand
	}
	tokens := Tokenize(line)
	if len(tokens) == 0 || tokens[0].Value == "" {
		return parsedCommand{}, domain.ErrEmptyCommand
	}
	parsed := parsedCommand{name: tokens[0]}

	if from == to || e.tables.isNative(parsed.name.Value, to) {
		parsed.passthrough = true
		parsed.positionals = tokens[1:]
		return parsed, nil
	}

	m, ok := e.tables.lookupCommand(parsed.name.Value, from, to)
	if !ok {
		if !from.UsesWindowsConventions() && !to.UsesWindowsConventions() {
			parsed.passthrough = true
			parsed.positionals = tokens[1:]
			parsed.warnings = []string{fmt.Sprintf(
				"command %q passed through unchanged, %s and %s are assumed compatible",
				parsed.name.Value, from.DisplayName(), to.DisplayName())}
			return parsed, nil
		}
		return parsedCommand{}, &domain.UnknownCommandError{
			Name:        parsed.name.Value,
			From:        from,
			To:          to,
			Suggestions: e.suggest(parsed.name.Value, from, to),
		}
	}

	parsed.mapping = m
	parsed.flags, parsed.positionals = splitArgs(tokens[1:], from, m)
	return parsed, nil
}

// render assembles "target flags... positionals..." for a mapped command.
func (e *Engine) render(line string, parsed parsedCommand, from, to domain.OS, positionals []domain.Token) domain.TranslationResult {
	targetFlags, unmapped := MapFlags(parsed.mapping, parsed.flags)

	parts := make([]string, 0, 1+len(targetFlags)+len(positionals))
	parts = append(parts, parsed.mapping.TargetCommand)
	parts = append(parts, targetFlags...)
	parts = append(parts, renderAll(positionals, to)...)

	result := newResult(line, strings.Join(parts, " "), from, to)
	for _, flag := range unmapped {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"flag %q of %s has no %s equivalent and was kept as is",
			flag, parsed.mapping.SourceCommand, to.DisplayName()))
	}
	if parsed.mapping.Notes != "" {
		result.Warnings = append(result.Warnings, parsed.mapping.Notes)
	}
	result.HadUnmappedFlags = len(unmapped) > 0
	return result
}

// suggest ranks mapped source commands close to name.
func (e *Engine) suggest(name string, from, to domain.OS) []string {
	candidates := e.tables.sourceCommands(from, to)
	if len(candidates) == 0 {
		return nil
	}
	slices.Sort(candidates)
	ranks := fuzzy.RankFindFold(name, candidates)
	if len(ranks) == 0 {
		return nil
	}
	sort.Sort(ranks)
	out := make([]string, 0, maxSuggestions)
	for _, r := range ranks {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, r.Target)
	}
	return out
}

// TranslateBatch translates each line on its own; a failing line never stops
// the batch.
func (e *Engine) TranslateBatch(lines []string, from, to domain.OS) []domain.BatchItem {
	items := make([]domain.BatchItem, 0, len(lines))
	for _, line := range lines {
		result, err := e.TranslateCommand(line, from, to)
		items = append(items, domain.BatchItem{Input: line, Result: result, Err: err})
	}
	return items
}

// LookupCommand returns the mapping used for cmd between the pair.
func (e *Engine) LookupCommand(cmd string, from, to domain.OS) (domain.CommandMapping, bool) {
	return e.tables.lookupCommand(cmd, from, to)
}

// ListCommands returns the sorted source commands mapped between the pair.
func (e *Engine) ListCommands(from, to domain.OS) []string {
	out := e.tables.sourceCommands(from, to)
	slices.Sort(out)
	return out
}

// IsNativeCommand reports whether cmd is canonical on os.
func (e *Engine) IsNativeCommand(cmd string, os domain.OS) bool {
	return e.tables.isNative(cmd, os)
}
