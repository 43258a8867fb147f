package domain_test

import (
	"errors"
	"testing"

	"github.com/doeshing/cmdx/internal/domain"
)

func TestParsePackageManager(t *testing.T) {
	tests := []struct {
		input   string
		want    domain.PackageManager
		wantErr bool
	}{
		{input: "apt", want: domain.PMApt},
		{input: "apt-get", want: domain.PMApt},
		{input: "aptitude", want: domain.PMApt},
		{input: "DNF", want: domain.PMDnf},
		{input: "portage", want: domain.PMEmerge},
		{input: "xbps", want: domain.PMXbps},
		{input: "xbps-remove", want: domain.PMXbps},
		{input: "nix-env", want: domain.PMNix},
		{input: "brew", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParsePackageManager(tt.input)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrUnknownPackageManager) {
					t.Fatalf("error = %v, want ErrUnknownPackageManager", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParsePackageManager(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestPackageManagerCommandName(t *testing.T) {
	tests := map[domain.PackageManager]string{
		domain.PMApt:    "apt",
		domain.PMPacman: "pacman",
		domain.PMXbps:   "xbps-install",
		domain.PMNix:    "nix-env",
	}
	for pm, want := range tests {
		if got := pm.CommandName(); got != want {
			t.Errorf("%s.CommandName() = %q, want %q", pm, got, want)
		}
	}
}

func TestDistroPackageManager(t *testing.T) {
	tests := []struct {
		id   string
		want domain.PackageManager
	}{
		{"ubuntu", domain.PMApt},
		{"debian", domain.PMApt},
		{"centos", domain.PMYum},
		{"fedora", domain.PMDnf},
		{"archlinux", domain.PMPacman},
		{"manjaro", domain.PMPacman},
		{"opensuse-tumbleweed", domain.PMZypper},
		{"alpine", domain.PMApk},
		{"gentoo", domain.PMEmerge},
		{"void", domain.PMXbps},
		{"nixos", domain.PMNix},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			distro, ok := domain.ParseDistro(tt.id)
			if !ok {
				t.Fatalf("ParseDistro(%q) not recognised", tt.id)
			}
			if got := distro.PackageManager(); got != tt.want {
				t.Errorf("PackageManager() = %s, want %s", got, tt.want)
			}
		})
	}

	if _, ok := domain.ParseDistro("haiku"); ok {
		t.Fatal("expected unknown distro")
	}
	if got := domain.DistroOpenSUSE.DisplayName(); got != "openSUSE" {
		t.Errorf("DisplayName() = %q", got)
	}
	if got := domain.DistroAlpine.DisplayName(); got != "Alpine" {
		t.Errorf("DisplayName() = %q", got)
	}
}
