package translate

import "github.com/doeshing/cmdx/internal/domain"

// pmOp is the target spelling of one operation for one manager.
type pmOp struct {
	command string
	sudo    bool
	notes   string
}

func op(command string, sudo bool) pmOp { return pmOp{command: command, sudo: sudo} }

var pmOperations = map[domain.PackageManager]map[domain.Operation]pmOp{
	domain.PMApt: {
		domain.OpInstall:    op("apt install", true),
		domain.OpRemove:     op("apt remove", true),
		domain.OpUpdate:     op("apt update", true),
		domain.OpUpgrade:    op("apt upgrade", true),
		domain.OpSearch:     op("apt search", false),
		domain.OpInfo:       op("apt show", false),
		domain.OpList:       op("apt list --installed", false),
		domain.OpClean:      op("apt clean", true),
		domain.OpAutoRemove: op("apt autoremove", true),
	},
	domain.PMYum: {
		domain.OpInstall:    op("yum install", true),
		domain.OpRemove:     op("yum remove", true),
		domain.OpUpdate:     op("yum check-update", false),
		domain.OpUpgrade:    op("yum update", true),
		domain.OpSearch:     op("yum search", false),
		domain.OpInfo:       op("yum info", false),
		domain.OpList:       op("yum list installed", false),
		domain.OpClean:      op("yum clean all", true),
		domain.OpAutoRemove: op("yum autoremove", true),
	},
	domain.PMDnf: {
		domain.OpInstall:    op("dnf install", true),
		domain.OpRemove:     op("dnf remove", true),
		domain.OpUpdate:     op("dnf check-update", false),
		domain.OpUpgrade:    op("dnf upgrade", true),
		domain.OpSearch:     op("dnf search", false),
		domain.OpInfo:       op("dnf info", false),
		domain.OpList:       op("dnf list installed", false),
		domain.OpClean:      op("dnf clean all", true),
		domain.OpAutoRemove: op("dnf autoremove", true),
	},
	domain.PMPacman: {
		domain.OpInstall: op("pacman -S", true),
		domain.OpRemove:  op("pacman -R", true),
		domain.OpUpdate:  op("pacman -Sy", true),
		domain.OpUpgrade: op("pacman -Syu", true),
		domain.OpSearch:  op("pacman -Ss", false),
		domain.OpInfo:    op("pacman -Si", false),
		domain.OpList:    op("pacman -Q", false),
		domain.OpClean:   op("pacman -Sc", true),
		domain.OpAutoRemove: {
			command: "pacman -Rs", sudo: true,
			notes: "pacman removes orphans with: pacman -Rns $(pacman -Qdtq)",
		},
	},
	domain.PMZypper: {
		domain.OpInstall:    op("zypper install", true),
		domain.OpRemove:     op("zypper remove", true),
		domain.OpUpdate:     op("zypper refresh", true),
		domain.OpUpgrade:    op("zypper update", true),
		domain.OpSearch:     op("zypper search", false),
		domain.OpInfo:       op("zypper info", false),
		domain.OpList:       op("zypper search --installed-only", false),
		domain.OpClean:      op("zypper clean", true),
		domain.OpAutoRemove: op("zypper remove --clean-deps", true),
	},
	domain.PMApk: {
		domain.OpInstall: op("apk add", true),
		domain.OpRemove:  op("apk del", true),
		domain.OpUpdate:  op("apk update", true),
		domain.OpUpgrade: op("apk upgrade", true),
		domain.OpSearch:  op("apk search", false),
		domain.OpInfo:    op("apk info", false),
		domain.OpList:    op("apk list --installed", false),
		domain.OpClean:   op("apk cache clean", true),
		domain.OpAutoRemove: {
			command: "apk del", sudo: true,
			notes: "apk removes orphaned dependencies automatically on del",
		},
	},
	domain.PMEmerge: {
		domain.OpInstall: op("emerge", true),
		domain.OpRemove:  op("emerge --unmerge", true),
		domain.OpUpdate:  op("emerge --sync", true),
		domain.OpUpgrade: op("emerge --update --deep --with-bdeps=y @world", true),
		domain.OpSearch:  op("emerge --search", false),
		domain.OpInfo:    op("emerge --info", false),
		domain.OpList: {
			command: "qlist -I", sudo: false,
			notes: "qlist is part of app-portage/portage-utils",
		},
		domain.OpClean:      op("emerge --depclean", true),
		domain.OpAutoRemove: op("emerge --depclean", true),
	},
	domain.PMXbps: {
		domain.OpInstall:    op("xbps-install", true),
		domain.OpRemove:     op("xbps-remove", true),
		domain.OpUpdate:     op("xbps-install -S", true),
		domain.OpUpgrade:    op("xbps-install -Su", true),
		domain.OpSearch:     op("xbps-query -Rs", false),
		domain.OpInfo:       op("xbps-query -R", false),
		domain.OpList:       op("xbps-query -l", false),
		domain.OpClean:      op("xbps-remove -O", true),
		domain.OpAutoRemove: op("xbps-remove -o", true),
	},
	domain.PMNix: {
		domain.OpInstall:    op("nix-env -i", false),
		domain.OpRemove:     op("nix-env -e", false),
		domain.OpUpdate:     op("nix-channel --update", false),
		domain.OpUpgrade:    op("nix-env -u", false),
		domain.OpSearch:     op("nix search", false),
		domain.OpInfo:       op("nix-env -qa --description", false),
		domain.OpList:       op("nix-env -q", false),
		domain.OpClean:      op("nix-collect-garbage", false),
		domain.OpAutoRemove: op("nix-collect-garbage -d", false),
	},
}

type pmFlagKey struct {
	from domain.PackageManager
	to   domain.PackageManager
	op   domain.Operation
}

var pmFlags = map[pmFlagKey][]domain.FlagPair{
	{domain.PMApt, domain.PMDnf, domain.OpInstall}: flags(
		"-y", "-y", "--yes", "-y", "--assume-yes", "-y",
		"--no-install-recommends", "--setopt=install_weak_deps=False",
		"--reinstall", "--reinstall", "-q", "-q", "--quiet", "--quiet"),
	{domain.PMApt, domain.PMYum, domain.OpInstall}: flags(
		"-y", "-y", "--yes", "-y", "--assume-yes", "-y",
		"--reinstall", "reinstall", "-q", "-q", "--quiet", "--quiet"),
	{domain.PMApt, domain.PMPacman, domain.OpInstall}: flags(
		"-y", "--noconfirm", "--yes", "--noconfirm", "--assume-yes", "--noconfirm",
		"--no-install-recommends", "--asdeps", "-q", "-q", "--quiet", "--quiet"),
	{domain.PMApt, domain.PMZypper, domain.OpInstall}: flags(
		"-y", "-y", "--yes", "--no-confirm", "--assume-yes", "--non-interactive",
		"--reinstall", "--force", "-q", "-q"),
	{domain.PMDnf, domain.PMApt, domain.OpInstall}: flags(
		"-y", "-y", "--assumeyes", "--assume-yes", "--reinstall", "--reinstall",
		"-q", "-q", "--quiet", "--quiet"),
	{domain.PMYum, domain.PMApt, domain.OpInstall}: flags(
		"-y", "-y", "--assumeyes", "--assume-yes", "-q", "-q", "--quiet", "--quiet"),
	{domain.PMDnf, domain.PMPacman, domain.OpInstall}: flags(
		"-y", "--noconfirm", "--assumeyes", "--noconfirm", "-q", "-q"),
	{domain.PMPacman, domain.PMApt, domain.OpInstall}: flags(
		"--noconfirm", "-y", "--asdeps", "", "-q", "-q", "--quiet", "--quiet"),
	{domain.PMPacman, domain.PMDnf, domain.OpInstall}: flags(
		"--noconfirm", "-y", "-q", "-q"),
	{domain.PMApt, domain.PMDnf, domain.OpRemove}: flags(
		"-y", "-y", "--yes", "-y", "--purge", "", "--auto-remove", "--noautoremove"),
	{domain.PMApt, domain.PMPacman, domain.OpRemove}: flags(
		"-y", "--noconfirm", "--yes", "--noconfirm", "--purge", "-n"),
	{domain.PMPacman, domain.PMApt, domain.OpRemove}: flags(
		"--noconfirm", "-y", "-n", "--purge", "-s", "--auto-remove"),
	{domain.PMApt, domain.PMDnf, domain.OpUpgrade}: flags(
		"-y", "-y", "--yes", "-y", "-q", "-q"),
	{domain.PMApt, domain.PMPacman, domain.OpUpgrade}: flags(
		"-y", "--noconfirm", "--yes", "--noconfirm"),
	{domain.PMPacman, domain.PMApt, domain.OpUpgrade}: flags(
		"--noconfirm", "-y"),
	{domain.PMApt, domain.PMDnf, domain.OpSearch}: flags(
		"-n", "", "--names-only", ""),
	{domain.PMApt, domain.PMPacman, domain.OpSearch}: flags(
		"-n", "", "--names-only", ""),
}

// verboseFamily shares -v across the rpm and deb style managers.
var verboseFamily = []domain.PackageManager{domain.PMApt, domain.PMDnf, domain.PMYum, domain.PMZypper}
