package translate

import (
	"strings"
	"unicode"

	"mvdan.cc/sh/v3/syntax"

	"github.com/doeshing/cmdx/internal/domain"
)

type tokenState int

const (
	stateOutside tokenState = iota
	stateSingleQuote
	stateDoubleQuote
)

// Tokenize splits line into words. Quotes group text and are stripped;
// backslashes are literal so Windows paths survive. An unterminated quote
// extends to the end of the line.
func Tokenize(line string) []domain.Token {
	var (
		tokens  []domain.Token
		buf     strings.Builder
		quoted  bool
		inToken bool
		state   = stateOutside
	)

	flush := func() {
		if inToken {
			tokens = append(tokens, domain.Token{Value: buf.String(), Quoted: quoted})
		}
		buf.Reset()
		quoted = false
		inToken = false
	}

	for _, ch := range line {
		switch state {
		case stateOutside:
			switch {
			case unicode.IsSpace(ch):
				flush()
			case ch == '\'':
				state = stateSingleQuote
				quoted, inToken = true, true
			case ch == '"':
				state = stateDoubleQuote
				quoted, inToken = true, true
			default:
				buf.WriteRune(ch)
				inToken = true
			}
		case stateSingleQuote:
			if ch == '\'' {
				state = stateOutside
			} else {
				buf.WriteRune(ch)
			}
		case stateDoubleQuote:
			if ch == '"' {
				state = stateOutside
			} else {
				buf.WriteRune(ch)
			}
		}
	}
	flush()
	return tokens
}

// needsQuoting reports whether a token must be quoted to stay one word.
func needsQuoting(v string) bool {
	return v == "" || strings.ContainsAny(v, " \t\n\r&|;<>()'\"")
}

// JoinArgs rebuilds a command line from arguments the invoking shell already
// split. A single argument is taken as a whole line; otherwise arguments
// holding spaces, quotes or operators are quoted so Tokenize keeps them whole.
func JoinArgs(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	parts := make([]string, len(args))
	for i, arg := range args {
		switch {
		case !needsQuoting(arg):
			parts[i] = arg
		case strings.Contains(arg, `"`) && !strings.Contains(arg, "'"):
			parts[i] = "'" + arg + "'"
		default:
			parts[i] = `"` + arg + `"`
		}
	}
	return strings.Join(parts, " ")
}

// Render re-emits a token for the target shell. Unquoted tokens are written
// verbatim; quoted tokens are re-quoted only when they need it.
func Render(tok domain.Token, to domain.OS) string {
	if !tok.Quoted || !needsQuoting(tok.Value) {
		return tok.Value
	}
	if to.UsesWindowsConventions() {
		return `"` + strings.ReplaceAll(tok.Value, `"`, `""`) + `"`
	}
	if q, err := syntax.Quote(tok.Value, syntax.LangBash); err == nil {
		return q
	}
	return `'` + strings.ReplaceAll(tok.Value, `'`, `'\''`) + `'`
}

func renderAll(tokens []domain.Token, to domain.OS) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = Render(tok, to)
	}
	return out
}
