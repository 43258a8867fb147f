package translate

import (
	"strings"

	"github.com/doeshing/cmdx/internal/domain"
)

// PathRule is one structural path rewrite. Apply reports false when the rule
// does not match. Warning is set on heuristic rules whose result may not
// name the same location.
type PathRule struct {
	Name    string
	Apply   func(path string) (string, bool)
	Warning string
}

var windowsToPOSIXRules = []PathRule{
	{Name: "drive", Apply: driveToMount},
	{Name: "home", Apply: windowsHomeToTilde},
	{Name: "unc", Apply: uncToNetwork, Warning: "UNC path converted to network path format"},
}

var posixToWindowsRules = []PathRule{
	{Name: "mount", Apply: mountToDrive},
	{Name: "home", Apply: posixHomeToProfile, Warning: "~ translated to %USERPROFILE%"},
	{Name: "users", Apply: homeDirToUsers, Warning: `/home mapped to C:\Users`},
	{Name: "network", Apply: networkToUNC, Warning: "network path converted to UNC format"},
}

// LookupPathRules returns the structural rules for the pair in priority
// order. Same-convention pairs have none.
func LookupPathRules(from, to domain.OS) []PathRule {
	fromWin, toWin := from.UsesWindowsConventions(), to.UsesWindowsConventions()
	switch {
	case fromWin && !toWin:
		return windowsToPOSIXRules
	case !fromWin && toWin:
		return posixToWindowsRules
	default:
		return nil
	}
}

func toSlash(s string) string     { return strings.ReplaceAll(s, `\`, "/") }
func toBackslash(s string) string { return strings.ReplaceAll(s, "/", `\`) }

func isDriveLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isSep(b byte) bool { return b == '\\' || b == '/' }

func driveToMount(path string) (string, bool) {
	if len(path) < 2 || !isDriveLetter(path[0]) || path[1] != ':' {
		return "", false
	}
	if len(path) > 2 && !isSep(path[2]) {
		return "", false
	}
	rest := strings.TrimRight(toSlash(path[2:]), "/")
	return "/mnt/" + strings.ToLower(path[:1]) + rest, true
}

func windowsHomeToTilde(path string) (string, bool) {
	const profile = "%USERPROFILE%"
	var rest string
	switch {
	case len(path) >= len(profile) && strings.EqualFold(path[:len(profile)], profile):
		rest = path[len(profile):]
	case strings.HasPrefix(path, "~"):
		rest = path[1:]
	default:
		return "", false
	}
	if rest != "" && !isSep(rest[0]) {
		return "", false
	}
	return "~" + toSlash(rest), true
}

func uncToNetwork(path string) (string, bool) {
	if !strings.HasPrefix(path, `\\`) {
		return "", false
	}
	return "//" + toSlash(path[2:]), true
}

func mountToDrive(path string) (string, bool) {
	const prefix = "/mnt/"
	if !strings.HasPrefix(path, prefix) || len(path) < len(prefix)+1 || !isDriveLetter(path[len(prefix)]) {
		return "", false
	}
	rest := path[len(prefix)+1:]
	if rest != "" && rest[0] != '/' {
		return "", false
	}
	drive := strings.ToUpper(path[len(prefix) : len(prefix)+1])
	return drive + `:\` + strings.TrimPrefix(toBackslash(rest), `\`), true
}

func posixHomeToProfile(path string) (string, bool) {
	const profile = "%USERPROFILE%"
	for _, prefix := range []string{"${HOME}", "$HOME", "~"} {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		rest := path[len(prefix):]
		if rest != "" && rest[0] != '/' {
			continue
		}
		return profile + toBackslash(rest), true
	}
	return "", false
}

func homeDirToUsers(path string) (string, bool) {
	rest, ok := strings.CutPrefix(path, "/home/")
	if !ok || rest == "" {
		return "", false
	}
	return `C:\Users\` + toBackslash(rest), true
}

func networkToUNC(path string) (string, bool) {
	if !strings.HasPrefix(path, "//") || strings.HasPrefix(path, "///") {
		return "", false
	}
	return `\\` + toBackslash(path[2:]), true
}

// validWindowsPath rejects characters NTFS and cmd.exe do not accept.
func validWindowsPath(path string) bool {
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case c < 0x20:
			return false
		case strings.IndexByte(`<>"|?*`, c) >= 0:
			return false
		case c == ':' && !(i == 1 && isDriveLetter(path[0])):
			return false
		}
	}
	return true
}

func validPOSIXPath(path string) bool {
	return strings.IndexByte(path, 0) < 0
}

// TranslatePath rewrites path from one convention to the other. The first
// structural rule that matches wins; otherwise separators are swapped and the
// result must be a valid path on the target.
func (e *Engine) TranslatePath(path string, from, to domain.OS) (domain.PathResult, error) {
	if strings.TrimSpace(path) == "" {
		return domain.PathResult{}, domain.ErrEmptyPath
	}
	result := domain.PathResult{Original: path, Path: path, From: from, To: to}
	if from == to || from.UsesWindowsConventions() == to.UsesWindowsConventions() {
		return result, nil
	}

	for _, rule := range LookupPathRules(from, to) {
		if out, ok := rule.Apply(path); ok {
			result.Path = out
			if rule.Warning != "" {
				result.Warnings = append(result.Warnings, rule.Warning)
			}
			return result, nil
		}
	}

	if to.UsesWindowsConventions() {
		result.Path = toBackslash(path)
		if !validWindowsPath(result.Path) {
			return domain.PathResult{}, &domain.UnresolvedPathError{Path: path, To: to}
		}
		if strings.HasPrefix(path, "/") {
			result.Warnings = append(result.Warnings, "absolute path resolves against the current drive")
		}
		return result, nil
	}
	result.Path = toSlash(path)
	if !validPOSIXPath(result.Path) {
		return domain.PathResult{}, &domain.UnresolvedPathError{Path: path, To: to}
	}
	return result, nil
}

// TranslatePathAuto guesses the source convention from the path itself.
// Paths that look like neither are returned unchanged.
func (e *Engine) TranslatePathAuto(path string, to domain.OS) (domain.PathResult, error) {
	switch {
	case IsWindowsPath(path):
		return e.TranslatePath(path, domain.OSWindows, to)
	case IsUnixPath(path):
		from := domain.OSLinux
		if !to.UsesWindowsConventions() {
			from = to
		}
		return e.TranslatePath(path, from, to)
	default:
		if strings.TrimSpace(path) == "" {
			return domain.PathResult{}, domain.ErrEmptyPath
		}
		return domain.PathResult{Original: path, Path: path, From: to, To: to}, nil
	}
}

// TranslatePaths translates each path independently.
func (e *Engine) TranslatePaths(paths []string, from, to domain.OS) []domain.PathBatchItem {
	items := make([]domain.PathBatchItem, 0, len(paths))
	for _, p := range paths {
		result, err := e.TranslatePath(p, from, to)
		items = append(items, domain.PathBatchItem{Input: p, Result: result, Err: err})
	}
	return items
}

// IsWindowsPath reports whether path uses drive letters, UNC or backslashes.
func IsWindowsPath(path string) bool {
	if len(path) >= 2 && isDriveLetter(path[0]) && path[1] == ':' {
		return true
	}
	return strings.HasPrefix(path, `\\`) || strings.Contains(path, `\`)
}

// IsUnixPath reports whether path is absolute, home-relative or explicitly
// relative in POSIX form.
func IsUnixPath(path string) bool {
	if IsWindowsPath(path) {
		return false
	}
	for _, prefix := range []string{"/", "~", "./", "../"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
