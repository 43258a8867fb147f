package domain

import "strings"

// PackageManager enumerates the Linux package managers the translator speaks.
type PackageManager string

const (
	PMApt    PackageManager = "apt"
	PMYum    PackageManager = "yum"
	PMDnf    PackageManager = "dnf"
	PMPacman PackageManager = "pacman"
	PMZypper PackageManager = "zypper"
	PMApk    PackageManager = "apk"
	PMEmerge PackageManager = "emerge"
	PMXbps   PackageManager = "xbps"
	PMNix    PackageManager = "nix"
)

var allPackageManagers = []PackageManager{
	PMApt, PMYum, PMDnf, PMPacman, PMZypper, PMApk, PMEmerge, PMXbps, PMNix,
}

// AllPackageManagers returns every supported manager in declaration order.
func AllPackageManagers() []PackageManager {
	out := make([]PackageManager, len(allPackageManagers))
	copy(out, allPackageManagers)
	return out
}

// ParsePackageManager resolves a manager name or one of its binary names.
func ParsePackageManager(value string) (PackageManager, error) {
	if pm, ok := PackageManagerForBinary(value); ok {
		return pm, nil
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "portage":
		return PMEmerge, nil
	case "xbps":
		return PMXbps, nil
	default:
		return "", &UnknownPackageManagerError{Value: value}
	}
}

// PackageManagerForBinary maps an executable name to its package manager.
func PackageManagerForBinary(binary string) (PackageManager, bool) {
	switch strings.ToLower(strings.TrimSpace(binary)) {
	case "apt", "apt-get", "aptitude":
		return PMApt, true
	case "yum":
		return PMYum, true
	case "dnf":
		return PMDnf, true
	case "pacman":
		return PMPacman, true
	case "zypper":
		return PMZypper, true
	case "apk":
		return PMApk, true
	case "emerge":
		return PMEmerge, true
	case "xbps-install", "xbps-remove", "xbps-query":
		return PMXbps, true
	case "nix", "nix-env", "nix-channel", "nix-collect-garbage":
		return PMNix, true
	default:
		return "", false
	}
}

// CommandName returns the primary executable for the manager.
func (p PackageManager) CommandName() string {
	switch p {
	case PMXbps:
		return "xbps-install"
	case PMNix:
		return "nix-env"
	default:
		return string(p)
	}
}

// Binaries lists every executable that belongs to the manager.
func (p PackageManager) Binaries() []string {
	switch p {
	case PMApt:
		return []string{"apt", "apt-get", "aptitude"}
	case PMXbps:
		return []string{"xbps-install", "xbps-remove", "xbps-query"}
	case PMNix:
		return []string{"nix-env", "nix", "nix-channel", "nix-collect-garbage"}
	default:
		return []string{string(p)}
	}
}

func (p PackageManager) String() string {
	return string(p)
}

// UnmarshalText accepts manager names and binary aliases.
func (p *PackageManager) UnmarshalText(text []byte) error {
	parsed, err := ParsePackageManager(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Operation is an abstract package-manager action.
type Operation string

const (
	OpInstall    Operation = "install"
	OpRemove     Operation = "remove"
	OpUpdate     Operation = "update"
	OpUpgrade    Operation = "upgrade"
	OpSearch     Operation = "search"
	OpInfo       Operation = "info"
	OpList       Operation = "list"
	OpClean      Operation = "clean"
	OpAutoRemove Operation = "autoremove"
)

// AllOperations returns every operation in declaration order.
func AllOperations() []Operation {
	return []Operation{OpInstall, OpRemove, OpUpdate, OpUpgrade, OpSearch, OpInfo, OpList, OpClean, OpAutoRemove}
}

// Distro identifies a Linux distribution family.
type Distro string

const (
	DistroDebian   Distro = "debian"
	DistroUbuntu   Distro = "ubuntu"
	DistroRHEL     Distro = "rhel"
	DistroCentOS   Distro = "centos"
	DistroFedora   Distro = "fedora"
	DistroArch     Distro = "arch"
	DistroManjaro  Distro = "manjaro"
	DistroOpenSUSE Distro = "opensuse"
	DistroAlpine   Distro = "alpine"
	DistroGentoo   Distro = "gentoo"
	DistroVoid     Distro = "void"
	DistroNixOS    Distro = "nixos"
)

// ParseDistro resolves an os-release style identifier.
func ParseDistro(value string) (Distro, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case v == "debian" || v == "raspbian":
		return DistroDebian, true
	case v == "ubuntu" || v == "linuxmint" || v == "pop":
		return DistroUbuntu, true
	case v == "rhel" || v == "redhat" || v == "red hat" || v == "rocky" || v == "almalinux":
		return DistroRHEL, true
	case v == "centos":
		return DistroCentOS, true
	case v == "fedora":
		return DistroFedora, true
	case v == "arch" || v == "archlinux" || v == "endeavouros":
		return DistroArch, true
	case v == "manjaro":
		return DistroManjaro, true
	case v == "opensuse" || v == "suse" || strings.HasPrefix(v, "opensuse-") || v == "sles":
		return DistroOpenSUSE, true
	case v == "alpine":
		return DistroAlpine, true
	case v == "gentoo":
		return DistroGentoo, true
	case v == "void":
		return DistroVoid, true
	case v == "nixos" || v == "nix":
		return DistroNixOS, true
	default:
		return "", false
	}
}

// PackageManager returns the native manager of the distribution.
func (d Distro) PackageManager() PackageManager {
	switch d {
	case DistroDebian, DistroUbuntu:
		return PMApt
	case DistroRHEL, DistroCentOS:
		return PMYum
	case DistroFedora:
		return PMDnf
	case DistroArch, DistroManjaro:
		return PMPacman
	case DistroOpenSUSE:
		return PMZypper
	case DistroAlpine:
		return PMApk
	case DistroGentoo:
		return PMEmerge
	case DistroVoid:
		return PMXbps
	case DistroNixOS:
		return PMNix
	default:
		return ""
	}
}

// DisplayName returns the vendor spelling of the distribution.
func (d Distro) DisplayName() string {
	switch d {
	case DistroRHEL:
		return "RHEL"
	case DistroCentOS:
		return "CentOS"
	case DistroOpenSUSE:
		return "openSUSE"
	case DistroNixOS:
		return "NixOS"
	case "":
		return "unknown"
	default:
		s := string(d)
		return strings.ToUpper(s[:1]) + s[1:]
	}
}
