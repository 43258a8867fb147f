package domain

import "strings"

// OS enumerates the operating systems the translator knows about.
type OS string

const (
	OSWindows OS = "windows"
	OSLinux   OS = "linux"
	OSMacOS   OS = "macos"
	OSFreeBSD OS = "freebsd"
	OSOpenBSD OS = "openbsd"
	OSNetBSD  OS = "netbsd"
	OSSolaris OS = "solaris"
	OSAndroid OS = "android"
	OSiOS     OS = "ios"
)

var allOS = []OS{
	OSWindows,
	OSLinux,
	OSMacOS,
	OSFreeBSD,
	OSOpenBSD,
	OSNetBSD,
	OSSolaris,
	OSAndroid,
	OSiOS,
}

// AllOS returns every supported OS in declaration order.
func AllOS() []OS {
	out := make([]OS, len(allOS))
	copy(out, allOS)
	return out
}

// ParseOS resolves a case-insensitive name or alias.
func ParseOS(value string) (OS, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "windows", "win", "win32", "win64":
		return OSWindows, nil
	case "linux", "gnu/linux":
		return OSLinux, nil
	case "macos", "darwin", "osx", "mac":
		return OSMacOS, nil
	case "freebsd":
		return OSFreeBSD, nil
	case "openbsd":
		return OSOpenBSD, nil
	case "netbsd":
		return OSNetBSD, nil
	case "solaris", "sunos":
		return OSSolaris, nil
	case "android":
		return OSAndroid, nil
	case "ios":
		return OSiOS, nil
	default:
		return "", &UnknownOSError{Value: value}
	}
}

// Valid reports whether o is one of the enumerated values.
func (o OS) Valid() bool {
	for _, candidate := range allOS {
		if o == candidate {
			return true
		}
	}
	return false
}

// IsUnixLike reports whether o is a Unix-like desktop or server OS.
func (o OS) IsUnixLike() bool {
	switch o {
	case OSLinux, OSMacOS, OSFreeBSD, OSOpenBSD, OSNetBSD, OSSolaris, OSAndroid:
		return true
	default:
		return false
	}
}

// IsBSD reports whether o descends from BSD userland.
func (o OS) IsBSD() bool {
	switch o {
	case OSFreeBSD, OSOpenBSD, OSNetBSD, OSMacOS:
		return true
	default:
		return false
	}
}

// UsesWindowsConventions reports whether paths, variables and switches follow
// cmd.exe rules. Every other OS, iOS included, follows POSIX syntax.
func (o OS) UsesWindowsConventions() bool {
	return o == OSWindows
}

// DisplayName returns the human readable name.
func (o OS) DisplayName() string {
	switch o {
	case OSWindows:
		return "Windows"
	case OSLinux:
		return "Linux"
	case OSMacOS:
		return "macOS"
	case OSFreeBSD:
		return "FreeBSD"
	case OSOpenBSD:
		return "OpenBSD"
	case OSNetBSD:
		return "NetBSD"
	case OSSolaris:
		return "Solaris"
	case OSAndroid:
		return "Android"
	case OSiOS:
		return "iOS"
	default:
		return string(o)
	}
}

func (o OS) String() string {
	return o.DisplayName()
}

// MarshalText emits the canonical identifier.
func (o OS) MarshalText() ([]byte, error) {
	return []byte(o), nil
}

// UnmarshalText accepts any alias understood by ParseOS.
func (o *OS) UnmarshalText(text []byte) error {
	parsed, err := ParseOS(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Aliases lists the alternative spellings ParseOS accepts for o.
func (o OS) Aliases() []string {
	switch o {
	case OSWindows:
		return []string{"win", "win32", "win64"}
	case OSLinux:
		return []string{"gnu/linux"}
	case OSMacOS:
		return []string{"darwin", "osx", "mac"}
	case OSSolaris:
		return []string{"sunos"}
	default:
		return nil
	}
}
