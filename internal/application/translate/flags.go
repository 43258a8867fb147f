package translate

import "github.com/doeshing/cmdx/internal/domain"

// MapFlags rewrites flags through the mapping in source order. Matched flags
// emit their target tokens (none when the target is empty); unmatched flags
// are emitted verbatim and reported in unmapped.
func MapFlags(m domain.CommandMapping, flags []string) (target, unmapped []string) {
	target = make([]string, 0, len(flags))
	for _, flag := range flags {
		pair, ok := m.Lookup(flag)
		if !ok {
			target = append(target, flag)
			unmapped = append(unmapped, flag)
			continue
		}
		target = append(target, pair.TargetTokens()...)
	}
	return target, unmapped
}

// isFlag decides whether tok is a switch under the source OS conventions.
func isFlag(tok domain.Token, from domain.OS) bool {
	if tok.Quoted || tok.Value == "-" || tok.Value == "" {
		return false
	}
	switch tok.Value[0] {
	case '-':
		return true
	case '/':
		return from.UsesWindowsConventions()
	default:
		return false
	}
}

// splitArgs separates switches from positionals. For POSIX sources a bare
// "--" ends option parsing and is kept as a positional marker.
func splitArgs(args []domain.Token, from domain.OS, m domain.CommandMapping) (flagTokens []string, positionals []domain.Token) {
	endOfOptions := false
	for _, tok := range args {
		if endOfOptions {
			positionals = append(positionals, tok)
			continue
		}
		if !from.UsesWindowsConventions() && !tok.Quoted && tok.Value == "--" {
			endOfOptions = true
			positionals = append(positionals, tok)
			continue
		}
		if isFlag(tok, from) || isWordFlag(tok, m) {
			flagTokens = append(flagTokens, tok.Value)
			continue
		}
		positionals = append(positionals, tok)
	}
	return flagTokens, positionals
}

// isWordFlag covers mappings whose sources are subcommand words, such as
// "ip addr".
func isWordFlag(tok domain.Token, m domain.CommandMapping) bool {
	if tok.Quoted {
		return false
	}
	_, ok := m.Lookup(tok.Value)
	return ok
}
