package translate_test

import (
	"errors"
	"testing"

	"github.com/doeshing/cmdx/internal/application/translate"
	"github.com/doeshing/cmdx/internal/domain"
)

func TestTranslatePackageCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		from, to     domain.PackageManager
		want         string
		wantOp       domain.Operation
		wantSudo     bool
		wantWarnings int
	}{
		{name: "apt to pacman", input: "apt install -y vim", from: domain.PMApt, to: domain.PMPacman, want: "pacman -S --noconfirm vim", wantOp: domain.OpInstall, wantSudo: true},
		{name: "sudo kept", input: "sudo apt install -y vim", from: domain.PMApt, to: domain.PMPacman, want: "sudo pacman -S --noconfirm vim", wantOp: domain.OpInstall, wantSudo: true},
		{name: "flag before verb", input: "apt-get -y install curl git", from: domain.PMApt, to: domain.PMDnf, want: "dnf install -y curl git", wantOp: domain.OpInstall, wantSudo: true},
		{name: "pacman to apt", input: "pacman -S --noconfirm vim", from: domain.PMPacman, to: domain.PMApt, want: "apt install -y vim", wantOp: domain.OpInstall, wantSudo: true},
		{name: "purge to pacman", input: "apt remove --purge vim", from: domain.PMApt, to: domain.PMPacman, want: "pacman -R -n vim", wantOp: domain.OpRemove, wantSudo: true},
		{name: "update without sudo", input: "apt update", from: domain.PMApt, to: domain.PMDnf, want: "dnf check-update", wantOp: domain.OpUpdate},
		{name: "upgrade", input: "apt upgrade -y", from: domain.PMApt, to: domain.PMDnf, want: "dnf upgrade -y", wantOp: domain.OpUpgrade, wantSudo: true},
		{name: "search", input: "apt search --names-only vim", from: domain.PMApt, to: domain.PMPacman, want: "pacman -Ss vim", wantOp: domain.OpSearch},
		{name: "list", input: "apt list --installed", from: domain.PMApt, to: domain.PMYum, want: "yum list installed", wantOp: domain.OpList},
		{name: "unknown flag", input: "apt install --foo vim", from: domain.PMApt, to: domain.PMPacman, want: "pacman -S --foo vim", wantOp: domain.OpInstall, wantSudo: true, wantWarnings: 1},
		{name: "verbose family", input: "apt install -v vim", from: domain.PMApt, to: domain.PMZypper, want: "zypper install -v vim", wantOp: domain.OpInstall, wantSudo: true},
		{name: "dnf to apt", input: "dnf install --assumeyes git", from: domain.PMDnf, to: domain.PMApt, want: "apt install --assume-yes git", wantOp: domain.OpInstall, wantSudo: true},
		{name: "yum clean all", input: "yum clean all", from: domain.PMYum, to: domain.PMApt, want: "apt clean", wantOp: domain.OpClean, wantSudo: true},
		{name: "zypper short verb", input: "zypper in vim", from: domain.PMZypper, to: domain.PMApk, want: "apk add vim", wantOp: domain.OpInstall, wantSudo: true},
		{name: "apk", input: "apk add curl", from: domain.PMApk, to: domain.PMApt, want: "apt install curl", wantOp: domain.OpInstall, wantSudo: true},
		{name: "apk cache clean", input: "apk cache clean", from: domain.PMApk, to: domain.PMPacman, want: "pacman -Sc", wantOp: domain.OpClean, wantSudo: true},
		{name: "pacman sync", input: "pacman -Sy", from: domain.PMPacman, to: domain.PMApt, want: "apt update", wantOp: domain.OpUpdate, wantSudo: true},
		{name: "pacman upgrade", input: "pacman -Syu --noconfirm", from: domain.PMPacman, to: domain.PMApt, want: "apt upgrade -y", wantOp: domain.OpUpgrade, wantSudo: true},
		{name: "pacman query", input: "pacman -Q", from: domain.PMPacman, to: domain.PMDnf, want: "dnf list installed", wantOp: domain.OpList},
		{name: "pacman combined modifiers", input: "pacman -Rns vim", from: domain.PMPacman, to: domain.PMApt, want: "apt remove --purge --auto-remove vim", wantOp: domain.OpRemove, wantSudo: true},
		{name: "pacman combined recursive", input: "pacman -Rs vim", from: domain.PMPacman, to: domain.PMApt, want: "apt remove --auto-remove vim", wantOp: domain.OpRemove, wantSudo: true},
		{name: "pacman split recursive", input: "pacman -R -s vim", from: domain.PMPacman, to: domain.PMApt, want: "apt remove --auto-remove vim", wantOp: domain.OpRemove, wantSudo: true},
		{name: "pacman download only", input: "pacman -Sw vim", from: domain.PMPacman, to: domain.PMApt, want: "apt install -w vim", wantOp: domain.OpInstall, wantSudo: true, wantWarnings: 1},
		{name: "pacman refresh and install", input: "pacman -Sy vim", from: domain.PMPacman, to: domain.PMApt, want: "apt install vim", wantOp: domain.OpInstall, wantSudo: true, wantWarnings: 1},
		{name: "pacman orphans", input: "pacman -Rs", from: domain.PMPacman, to: domain.PMApt, want: "apt autoremove", wantOp: domain.OpAutoRemove, wantSudo: true},
		{name: "to pacman autoremove note", input: "apt autoremove", from: domain.PMApt, to: domain.PMPacman, want: "pacman -Rs", wantOp: domain.OpAutoRemove, wantSudo: true, wantWarnings: 1},
		{name: "emerge bare package", input: "emerge vim", from: domain.PMEmerge, to: domain.PMApt, want: "apt install vim", wantOp: domain.OpInstall, wantSudo: true},
		{name: "emerge sync", input: "emerge --sync", from: domain.PMEmerge, to: domain.PMDnf, want: "dnf check-update", wantOp: domain.OpUpdate},
		{name: "emerge world", input: "emerge --update --deep @world", from: domain.PMEmerge, to: domain.PMApt, want: "apt upgrade", wantOp: domain.OpUpgrade, wantSudo: true},
		{name: "xbps update", input: "xbps-install -S", from: domain.PMXbps, to: domain.PMApt, want: "apt update", wantOp: domain.OpUpdate, wantSudo: true},
		{name: "xbps upgrade", input: "xbps-install -Su", from: domain.PMXbps, to: domain.PMPacman, want: "pacman -Syu", wantOp: domain.OpUpgrade, wantSudo: true},
		{name: "xbps remove orphans", input: "xbps-remove -o", from: domain.PMXbps, to: domain.PMApt, want: "apt autoremove", wantOp: domain.OpAutoRemove, wantSudo: true},
		{name: "xbps search", input: "xbps-query -Rs vim", from: domain.PMXbps, to: domain.PMApt, want: "apt search vim", wantOp: domain.OpSearch},
		{name: "nix install", input: "nix-env -i hello", from: domain.PMNix, to: domain.PMApt, want: "apt install hello", wantOp: domain.OpInstall, wantSudo: true},
		{name: "nix search", input: "nix search hello", from: domain.PMNix, to: domain.PMPacman, want: "pacman -Ss hello", wantOp: domain.OpSearch},
		{name: "to nix", input: "sudo apt install hello", from: domain.PMApt, to: domain.PMNix, want: "sudo nix-env -i hello", wantOp: domain.OpInstall},
		{name: "same manager", input: "apt install vim", from: domain.PMApt, to: domain.PMApt, want: "apt install vim", wantOp: domain.OpInstall, wantSudo: true},
		{name: "mismatched source", input: "apt install vim", from: domain.PMDnf, to: domain.PMPacman, want: "pacman -S vim", wantOp: domain.OpInstall, wantSudo: true, wantWarnings: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := translate.TranslatePackageCommand(tt.input, tt.from, tt.to)
			if err != nil {
				t.Fatalf("TranslatePackageCommand(%q) error: %v", tt.input, err)
			}
			if got.Translated != tt.want {
				t.Errorf("Translated = %q, want %q", got.Translated, tt.want)
			}
			if got.Operation != tt.wantOp {
				t.Errorf("Operation = %s, want %s", got.Operation, tt.wantOp)
			}
			if got.RequiresSudo != tt.wantSudo {
				t.Errorf("RequiresSudo = %v, want %v", got.RequiresSudo, tt.wantSudo)
			}
			if len(got.Warnings) != tt.wantWarnings {
				t.Errorf("Warnings = %v, want %d", got.Warnings, tt.wantWarnings)
			}
		})
	}
}

func TestTranslatePackageCommandErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty", input: "  ", want: domain.ErrEmptyCommand},
		{name: "not a manager", input: "ls -la", want: domain.ErrNotPackageCommand},
		{name: "sudo only", input: "sudo", want: domain.ErrNotPackageCommand},
		{name: "missing verb", input: "apt -y", want: domain.ErrNotPackageCommand},
		{name: "unknown verb", input: "apt frobnicate vim", want: domain.ErrUnsupportedOperation},
		{name: "pacman without operation", input: "pacman --noconfirm", want: domain.ErrNotPackageCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := translate.TranslatePackageCommand(tt.input, domain.PMApt, domain.PMPacman)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTranslatePackageCommandAuto(t *testing.T) {
	t.Parallel()
	got, err := translate.TranslatePackageCommandAuto("sudo dnf install -y nginx", domain.PMApt)
	if err != nil {
		t.Fatalf("TranslatePackageCommandAuto error: %v", err)
	}
	if got.Translated != "sudo apt install -y nginx" || got.From != domain.PMDnf {
		t.Fatalf("result = %+v", got)
	}

	if _, err := translate.TranslatePackageCommandAuto("brew install wget", domain.PMApt); !errors.Is(err, domain.ErrNotPackageCommand) {
		t.Fatalf("error = %v, want ErrNotPackageCommand", err)
	}
}

func TestLookupPackageCommand(t *testing.T) {
	t.Parallel()
	m, ok := translate.LookupPackageCommand(domain.OpInstall, domain.PMApt, domain.PMPacman)
	if !ok {
		t.Fatal("expected mapping")
	}
	if m.SourceCommand != "apt install" || m.TargetCommand != "pacman -S" {
		t.Fatalf("mapping = %+v", m)
	}
	if pair, ok := m.Lookup("--yes"); !ok || pair.Target != "--noconfirm" {
		t.Fatalf("--yes pair = %+v, %v", pair, ok)
	}
	for _, pm := range domain.AllPackageManagers() {
		for _, op := range domain.AllOperations() {
			if _, ok := translate.LookupPackageCommand(op, domain.PMApt, pm); !ok {
				t.Errorf("no %s entry for %s", op, pm)
			}
		}
	}
}

func TestTranslatePackageCommandPacmanModifiers(t *testing.T) {
	t.Parallel()

	got, err := translate.TranslatePackageCommand("pacman -Sw vim", domain.PMPacman, domain.PMApt)
	if err != nil {
		t.Fatalf("TranslatePackageCommand error: %v", err)
	}
	if !got.HadUnmappedFlags {
		t.Fatal("download-only modifier should be reported as unmapped")
	}

	combined, err := translate.TranslatePackageCommand("pacman -Rs vim", domain.PMPacman, domain.PMApt)
	if err != nil {
		t.Fatal(err)
	}
	split, err := translate.TranslatePackageCommand("pacman -R -s vim", domain.PMPacman, domain.PMApt)
	if err != nil {
		t.Fatal(err)
	}
	if combined.Translated != split.Translated {
		t.Fatalf("combined %q != split %q", combined.Translated, split.Translated)
	}
}
