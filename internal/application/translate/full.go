package translate

import (
	"fmt"
	"strings"

	"github.com/doeshing/cmdx/internal/domain"
)

// looksLikePath applies the source convention's path heuristic.
func looksLikePath(value string, from domain.OS) bool {
	if from.UsesWindowsConventions() {
		return IsWindowsPath(value)
	}
	return IsUnixPath(value)
}

// translatePositionals rewrites path-shaped arguments. A path that cannot be
// expressed on the target keeps its original spelling and adds a warning.
func (e *Engine) translatePositionals(positionals []domain.Token, from, to domain.OS) ([]domain.Token, []string) {
	out := make([]domain.Token, len(positionals))
	var warnings []string
	for i, tok := range positionals {
		out[i] = tok
		if !looksLikePath(tok.Value, from) {
			continue
		}
		res, err := e.TranslatePath(tok.Value, from, to)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("argument %q kept as is: %v", tok.Value, err))
			continue
		}
		out[i].Value = res.Path
		for _, w := range res.Warnings {
			warnings = append(warnings, fmt.Sprintf("argument %q: %s", tok.Value, w))
		}
		if res.Path != tok.Value && needsQuoting(res.Path) {
			out[i].Quoted = true
		}
	}
	return out, warnings
}

// TranslateFull translates a simple command and the paths among its
// arguments.
func (e *Engine) TranslateFull(line string, from, to domain.OS) (domain.TranslationResult, error) {
	parsed, err := e.parseCommand(line, from, to)
	if err != nil {
		return domain.TranslationResult{}, err
	}
	if from == to {
		return newResult(line, line, from, to), nil
	}

	positionals, pathWarnings := e.translatePositionals(parsed.positionals, from, to)

	var result domain.TranslationResult
	if parsed.passthrough {
		if !tokensChanged(parsed.positionals, positionals) {
			result = newResult(line, line, from, to)
		} else {
			parts := append([]string{Render(parsed.name, to)}, renderAll(positionals, to)...)
			result = newResult(line, strings.Join(parts, " "), from, to)
		}
		result.Warnings = append(result.Warnings, parsed.warnings...)
	} else {
		result = e.render(line, parsed, from, to, positionals)
	}
	result.Warnings = append(result.Warnings, pathWarnings...)
	return result, nil
}

func tokensChanged(a, b []domain.Token) bool {
	for i := range a {
		if a[i] != b[i] {
			return true
		}
	}
	return false
}

// TranslateCompoundCommand splits line on top-level operators, fully
// translates every segment and joins them back with the same operators.
// The first failing segment aborts the call.
func (e *Engine) TranslateCompoundCommand(line string, from, to domain.OS) (domain.TranslationResult, error) {
	if strings.TrimSpace(line) == "" {
		return domain.TranslationResult{}, domain.ErrEmptyCommand
	}
	if from == to {
		return newResult(line, line, from, to), nil
	}
	segments := SplitCompound(line)
	if len(segments) == 1 {
		result, err := e.TranslateFull(segments[0].Text, from, to)
		if err != nil {
			return domain.TranslationResult{}, err
		}
		result.Original = line
		return result, nil
	}

	result := newResult(line, "", from, to)
	translated := make([]domain.Segment, len(segments))
	for i, seg := range segments {
		if seg.Text == "" {
			return domain.TranslationResult{}, &domain.CompoundSegmentError{Index: i, Segment: seg.Text, Err: domain.ErrEmptyCommand}
		}
		segResult, err := e.TranslateFull(seg.Text, from, to)
		if err != nil {
			return domain.TranslationResult{}, &domain.CompoundSegmentError{Index: i, Segment: seg.Text, Err: err}
		}
		translated[i] = domain.Segment{Text: segResult.Translated, Operator: seg.Operator}
		result.Warnings = append(result.Warnings, segResult.Warnings...)
		result.HadUnmappedFlags = result.HadUnmappedFlags || segResult.HadUnmappedFlags
	}
	result.Translated = JoinSegments(translated)
	return result, nil
}
