package translate

import (
	"strings"

	"github.com/doeshing/cmdx/internal/domain"
)

// EnvPair links a Windows variable to its POSIX counterpart.
type EnvPair struct {
	Windows string `json:"windows" yaml:"windows" toml:"windows"`
	Unix    string `json:"unix" yaml:"unix" toml:"unix"`
}

var defaultEnvPairs = []EnvPair{
	{Windows: "USERPROFILE", Unix: "HOME"},
	{Windows: "USERNAME", Unix: "USER"},
	{Windows: "APPDATA", Unix: "XDG_CONFIG_HOME"},
	{Windows: "LOCALAPPDATA", Unix: "XDG_DATA_HOME"},
	{Windows: "TEMP", Unix: "TMPDIR"},
	{Windows: "COMPUTERNAME", Unix: "HOSTNAME"},
	{Windows: "CD", Unix: "PWD"},
	{Windows: "COMSPEC", Unix: "SHELL"},
}

// defaultEnvAliases only apply Windows to POSIX.
var defaultEnvAliases = []EnvPair{
	{Windows: "TMP", Unix: "TMPDIR"},
	{Windows: "HOMEPATH", Unix: "HOME"},
}

type envTable struct {
	pairs     []EnvPair
	aliases   []EnvPair
	toUnix    map[string]string
	toWindows map[string]string
}

func newEnvTable(pairs, aliases []EnvPair) envTable {
	t := envTable{
		pairs:   append([]EnvPair(nil), pairs...),
		aliases: append([]EnvPair(nil), aliases...),
	}
	t.rebuild()
	return t
}

// rebuild derives both directions from the ordered pair list; the first pair
// naming a variable wins.
func (t *envTable) rebuild() {
	t.toUnix = make(map[string]string, len(t.pairs)+len(t.aliases))
	t.toWindows = make(map[string]string, len(t.pairs))
	for _, p := range t.pairs {
		key := strings.ToUpper(p.Windows)
		if _, ok := t.toUnix[key]; !ok {
			t.toUnix[key] = p.Unix
		}
		if _, ok := t.toWindows[p.Unix]; !ok {
			t.toWindows[p.Unix] = p.Windows
		}
	}
	for _, p := range t.aliases {
		key := strings.ToUpper(p.Windows)
		if _, ok := t.toUnix[key]; !ok {
			t.toUnix[key] = p.Unix
		}
	}
}

func (t envTable) clone() envTable {
	return newEnvTable(t.pairs, t.aliases)
}

func (t *envTable) append(pairs ...EnvPair) {
	t.pairs = append(t.pairs, pairs...)
	t.rebuild()
}

func (t envTable) lookup(name string, from, to domain.OS) (string, bool) {
	switch {
	case from.UsesWindowsConventions() && !to.UsesWindowsConventions():
		v, ok := t.toUnix[strings.ToUpper(name)]
		return v, ok
	case !from.UsesWindowsConventions() && to.UsesWindowsConventions():
		v, ok := t.toWindows[name]
		return v, ok
	default:
		return name, true
	}
}

func isNameStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isNameChar(b byte) bool {
	return isNameStart(b) || (b >= '0' && b <= '9')
}

// scanName returns the length of the variable name starting at s[i].
func scanName(s string, i int) int {
	if i >= len(s) || !isNameStart(s[i]) {
		return 0
	}
	j := i + 1
	for j < len(s) && isNameChar(s[j]) {
		j++
	}
	return j - i
}

func (t envTable) translate(text string, from, to domain.OS) string {
	fromWin, toWin := from.UsesWindowsConventions(), to.UsesWindowsConventions()
	switch {
	case fromWin && !toWin:
		return t.windowsToUnix(text)
	case !fromWin && toWin:
		return t.unixToWindows(text)
	default:
		return text
	}
}

func (t envTable) windowsToUnix(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if text[i] == '%' {
			if n := scanName(text, i+1); n > 0 && i+1+n < len(text) && text[i+1+n] == '%' {
				name := text[i+1 : i+1+n]
				if mapped, ok := t.toUnix[strings.ToUpper(name)]; ok {
					name = mapped
				}
				next := i + n + 2
				if next < len(text) && isNameChar(text[next]) {
					b.WriteString("${" + name + "}")
				} else {
					b.WriteString("$" + name)
				}
				i = next
				continue
			}
		}
		b.WriteByte(text[i])
		i++
	}
	return b.String()
}

func (t envTable) unixToWindows(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if text[i] == '$' && i+1 < len(text) {
			if text[i+1] == '{' {
				if n := scanName(text, i+2); n > 0 && i+2+n < len(text) && text[i+2+n] == '}' {
					b.WriteString(t.windowsVar(text[i+2 : i+2+n]))
					i += n + 3
					continue
				}
			} else if n := scanName(text, i+1); n > 0 {
				b.WriteString(t.windowsVar(text[i+1 : i+1+n]))
				i += n + 1
				continue
			}
		}
		b.WriteByte(text[i])
		i++
	}
	return b.String()
}

func (t envTable) windowsVar(name string) string {
	if mapped, ok := t.toWindows[name]; ok {
		name = mapped
	}
	return "%" + name + "%"
}

// TranslateEnvVars rewrites variable references in text. It never fails;
// unrecognised syntax is copied through.
func (e *Engine) TranslateEnvVars(text string, from, to domain.OS) string {
	if from == to {
		return text
	}
	return e.tables.env.translate(text, from, to)
}

// LookupEnvVar maps a single variable name between conventions.
func (e *Engine) LookupEnvVar(name string, from, to domain.OS) (string, bool) {
	return e.tables.env.lookup(name, from, to)
}

// EnvPairs returns the forward variable table in order.
func (e *Engine) EnvPairs() []EnvPair {
	return append([]EnvPair(nil), e.tables.env.pairs...)
}
