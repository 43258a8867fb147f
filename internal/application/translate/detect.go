package translate

import (
	"bufio"
	"io"
	"runtime"
	"strings"

	"github.com/doeshing/cmdx/internal/domain"
)

// DetectOS maps the running platform onto the OS enumeration.
func DetectOS() domain.OS {
	return OSFromGOOS(runtime.GOOS)
}

// OSFromGOOS maps a runtime.GOOS value onto the OS enumeration. Unknown
// values are treated as Linux.
func OSFromGOOS(goos string) domain.OS {
	switch goos {
	case "windows":
		return domain.OSWindows
	case "darwin":
		return domain.OSMacOS
	case "freebsd", "dragonfly":
		return domain.OSFreeBSD
	case "openbsd":
		return domain.OSOpenBSD
	case "netbsd":
		return domain.OSNetBSD
	case "solaris", "illumos":
		return domain.OSSolaris
	case "android":
		return domain.OSAndroid
	case "ios":
		return domain.OSiOS
	default:
		return domain.OSLinux
	}
}

// DetectDistro reads an os-release document and returns the distribution
// named by ID, falling back to the first recognised ID_LIKE entry.
func DetectDistro(osRelease io.Reader) (domain.Distro, bool) {
	var id, idLike string
	scanner := bufio.NewScanner(osRelease)
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"'`)
		switch key {
		case "ID":
			id = value
		case "ID_LIKE":
			idLike = value
		}
	}
	if d, ok := domain.ParseDistro(id); ok {
		return d, true
	}
	for _, candidate := range strings.Fields(idLike) {
		if d, ok := domain.ParseDistro(candidate); ok {
			return d, true
		}
	}
	return "", false
}
