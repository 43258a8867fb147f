package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/doeshing/cmdx/internal/domain"
)

func TestParseOS(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.OS
		wantErr bool
	}{
		{name: "canonical", input: "windows", want: domain.OSWindows},
		{name: "mixed case", input: "WINDOWS", want: domain.OSWindows},
		{name: "win alias", input: "win64", want: domain.OSWindows},
		{name: "darwin alias", input: "darwin", want: domain.OSMacOS},
		{name: "mac alias", input: "mac", want: domain.OSMacOS},
		{name: "gnu linux", input: "GNU/Linux", want: domain.OSLinux},
		{name: "sunos alias", input: "sunos", want: domain.OSSolaris},
		{name: "ios", input: "iOS", want: domain.OSiOS},
		{name: "surrounding space", input: "  freebsd ", want: domain.OSFreeBSD},
		{name: "unknown", input: "plan9", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseOS(tt.input)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrUnknownOS) {
					t.Fatalf("ParseOS(%q) error = %v, want ErrUnknownOS", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOS(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseOS(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestOSPredicates(t *testing.T) {
	tests := []struct {
		os       domain.OS
		unixLike bool
		bsd      bool
		windows  bool
	}{
		{domain.OSWindows, false, false, true},
		{domain.OSLinux, true, false, false},
		{domain.OSMacOS, true, true, false},
		{domain.OSFreeBSD, true, true, false},
		{domain.OSOpenBSD, true, true, false},
		{domain.OSNetBSD, true, true, false},
		{domain.OSSolaris, true, false, false},
		{domain.OSAndroid, true, false, false},
		{domain.OSiOS, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.os), func(t *testing.T) {
			if got := tt.os.IsUnixLike(); got != tt.unixLike {
				t.Errorf("IsUnixLike() = %v, want %v", got, tt.unixLike)
			}
			if got := tt.os.IsBSD(); got != tt.bsd {
				t.Errorf("IsBSD() = %v, want %v", got, tt.bsd)
			}
			if got := tt.os.UsesWindowsConventions(); got != tt.windows {
				t.Errorf("UsesWindowsConventions() = %v, want %v", got, tt.windows)
			}
		})
	}
}

func TestOSDisplayName(t *testing.T) {
	if got := domain.OSMacOS.DisplayName(); got != "macOS" {
		t.Errorf("DisplayName() = %q, want macOS", got)
	}
	if got := domain.OSiOS.String(); got != "iOS" {
		t.Errorf("String() = %q, want iOS", got)
	}
	if len(domain.AllOS()) != 9 {
		t.Fatalf("AllOS() returned %d entries, want 9", len(domain.AllOS()))
	}
}

func TestOSJSONUsesCanonicalID(t *testing.T) {
	raw, err := json.Marshal(struct {
		To domain.OS `json:"to"`
	}{To: domain.OSMacOS})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(raw) != `{"to":"macos"}` {
		t.Fatalf("Marshal = %s", raw)
	}

	var decoded struct {
		To domain.OS `json:"to"`
	}
	if err := json.Unmarshal([]byte(`{"to":"darwin"}`), &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if decoded.To != domain.OSMacOS {
		t.Fatalf("Unmarshal alias = %s, want macos", decoded.To)
	}
}
