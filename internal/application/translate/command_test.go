package translate_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/cmdx/internal/application/translate"
	"github.com/doeshing/cmdx/internal/domain"
)

func TestTranslateCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		from, to     domain.OS
		want         string
		wantWarnings int
		wantUnmapped bool
	}{
		{name: "identity", input: "dir /w /s", from: domain.OSWindows, to: domain.OSWindows, want: "dir /w /s"},
		{name: "native passthrough", input: "ls -la", from: domain.OSWindows, to: domain.OSLinux, want: "ls -la"},
		{name: "flags in order", input: "dir /w /s", from: domain.OSWindows, to: domain.OSLinux, want: "ls -C -R"},
		{name: "reversed flags", input: "dir /s /w", from: domain.OSWindows, to: domain.OSLinux, want: "ls -R -C"},
		{name: "dropped flag", input: "dir /p", from: domain.OSWindows, to: domain.OSLinux, want: "ls"},
		{name: "uppercase command", input: "DIR /b", from: domain.OSWindows, to: domain.OSLinux, want: "ls -1"},
		{name: "positionals after flags", input: "copy a.txt /y b.txt", from: domain.OSWindows, to: domain.OSLinux, want: "cp -f a.txt b.txt"},
		{name: "multi word target", input: "md build", from: domain.OSWindows, to: domain.OSLinux, want: "mkdir -p build"},
		{name: "grep count has no findstr switch", input: "grep -c foo notes.txt", from: domain.OSLinux, to: domain.OSWindows, want: "findstr -c foo notes.txt", wantWarnings: 1, wantUnmapped: true},
		{name: "shared name passes through", input: "ping -n 4 example.com", from: domain.OSWindows, to: domain.OSLinux, want: "ping -n 4 example.com"},
		{name: "unmapped flag", input: "dir /x", from: domain.OSWindows, to: domain.OSLinux, want: "ls /x", wantWarnings: 1, wantUnmapped: true},
		{name: "notes become warnings", input: "systeminfo", from: domain.OSWindows, to: domain.OSLinux, want: "uname -a && cat /etc/os-release", wantWarnings: 1},
		{name: "bsd ls sort", input: "dir /o:s", from: domain.OSWindows, to: domain.OSFreeBSD, want: "ls -S"},
		{name: "macos ipconfig", input: "ipconfig /all", from: domain.OSWindows, to: domain.OSMacOS, want: "ifconfig -a"},
		{name: "linux to windows", input: "ls -la", from: domain.OSLinux, to: domain.OSWindows, want: "dir /a"},
		{name: "combined flag expands", input: "rm -rf build", from: domain.OSLinux, to: domain.OSWindows, want: "del /s /q build"},
		{name: "word flag", input: "ip addr", from: domain.OSLinux, to: domain.OSWindows, want: "ipconfig /all"},
		{name: "end of options", input: "grep -i -- -v file.txt", from: domain.OSLinux, to: domain.OSWindows, want: "findstr /i -- -v file.txt"},
		{name: "quoted argument requoted for posix", input: `findstr /i "hello world" notes.txt`, from: domain.OSWindows, to: domain.OSLinux, want: "grep -i 'hello world' notes.txt"},
		{name: "quoted argument requoted for windows", input: `grep -n 'a b' f`, from: domain.OSLinux, to: domain.OSWindows, want: `findstr /n "a b" f`},
		{name: "quoted flag is positional", input: `grep "-v" f`, from: domain.OSLinux, to: domain.OSWindows, want: "findstr -v f"},
		{name: "unix pair passthrough", input: "htop -d 5", from: domain.OSLinux, to: domain.OSMacOS, want: "htop -d 5", wantWarnings: 1},
		{name: "unix pair native", input: "ls -la", from: domain.OSLinux, to: domain.OSMacOS, want: "ls -la"},
		{name: "ios uses posix tables", input: "cls", from: domain.OSWindows, to: domain.OSiOS, want: "clear"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := translate.TranslateCommand(tt.input, tt.from, tt.to)
			if err != nil {
				t.Fatalf("TranslateCommand(%q) error: %v", tt.input, err)
			}
			if got.Translated != tt.want {
				t.Errorf("Translated = %q, want %q", got.Translated, tt.want)
			}
			if len(got.Warnings) != tt.wantWarnings {
				t.Errorf("Warnings = %v, want %d entries", got.Warnings, tt.wantWarnings)
			}
			if got.HadUnmappedFlags != tt.wantUnmapped {
				t.Errorf("HadUnmappedFlags = %v, want %v", got.HadUnmappedFlags, tt.wantUnmapped)
			}
			if got.Original != tt.input || got.From != tt.from || got.To != tt.to {
				t.Errorf("result metadata = %+v", got)
			}
		})
	}
}

func TestTranslateCommandWarningNamesFlag(t *testing.T) {
	t.Parallel()
	got, err := translate.TranslateCommand("dir /x /w", domain.OSWindows, domain.OSLinux)
	if err != nil {
		t.Fatalf("TranslateCommand error: %v", err)
	}
	if got.Translated != "ls /x -C" {
		t.Fatalf("Translated = %q", got.Translated)
	}
	if !strings.Contains(got.Warnings[0], "/x") {
		t.Fatalf("warning %q does not name the flag", got.Warnings[0])
	}
}

func TestTranslateCommandWarningsNeverNil(t *testing.T) {
	t.Parallel()
	got, err := translate.TranslateCommand("cls", domain.OSWindows, domain.OSLinux)
	if err != nil {
		t.Fatalf("TranslateCommand error: %v", err)
	}
	if got.Warnings == nil {
		t.Fatal("Warnings is nil")
	}
}

func TestTranslateCommandErrors(t *testing.T) {
	t.Parallel()

	_, err := translate.TranslateCommand("   ", domain.OSWindows, domain.OSLinux)
	if !errors.Is(err, domain.ErrEmptyCommand) {
		t.Fatalf("blank input error = %v, want ErrEmptyCommand", err)
	}

	_, err = translate.TranslateCommand("frobnicate --now", domain.OSLinux, domain.OSWindows)
	var unknown *domain.UnknownCommandError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want UnknownCommandError", err)
	}
	if unknown.Name != "frobnicate" {
		t.Fatalf("Name = %q", unknown.Name)
	}
	if !errors.Is(err, domain.ErrUnknownCommand) {
		t.Fatal("expected errors.Is ErrUnknownCommand")
	}
}

func TestUnknownCommandSuggestions(t *testing.T) {
	t.Parallel()
	_, err := translate.TranslateCommand("cop a b", domain.OSWindows, domain.OSLinux)
	var unknown *domain.UnknownCommandError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want UnknownCommandError", err)
	}
	if len(unknown.Suggestions) == 0 || unknown.Suggestions[0] != "copy" {
		t.Fatalf("Suggestions = %v, want copy first", unknown.Suggestions)
	}
}

func TestTranslateBatch(t *testing.T) {
	t.Parallel()
	items := translate.TranslateBatch([]string{"cat a.txt", "", "frobnicate"}, domain.OSLinux, domain.OSWindows)
	if len(items) != 3 {
		t.Fatalf("got %d items", len(items))
	}
	if items[0].Err != nil || items[0].Result.Translated != "type a.txt" {
		t.Errorf("item 0 = %+v", items[0])
	}
	if !errors.Is(items[1].Err, domain.ErrEmptyCommand) {
		t.Errorf("item 1 error = %v", items[1].Err)
	}
	if !errors.Is(items[2].Err, domain.ErrUnknownCommand) {
		t.Errorf("item 2 error = %v", items[2].Err)
	}
}

func TestListCommands(t *testing.T) {
	t.Parallel()
	got := translate.ListCommands(domain.OSWindows, domain.OSLinux)
	for _, want := range []string{"cls", "copy", "dir", "xcopy"} {
		found := false
		for _, name := range got {
			if name == want {
				found = true
			}
		}
		if !found {
			t.Errorf("ListCommands missing %q", want)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] > got[i] {
			t.Fatalf("ListCommands not sorted at %d: %v", i, got)
		}
	}
	if len(translate.ListCommands(domain.OSLinux, domain.OSMacOS)) != 0 {
		t.Fatal("expected no table between two POSIX systems")
	}
}

func TestLookupCommand(t *testing.T) {
	t.Parallel()
	m, ok := translate.LookupCommand("dir", domain.OSWindows, domain.OSLinux)
	if !ok {
		t.Fatal("dir mapping missing")
	}
	want := domain.FlagPair{Source: "/w", Target: "-C"}
	if diff := cmp.Diff(want, m.Flags[0]); diff != "" {
		t.Fatalf("first flag mismatch (-want +got):\n%s", diff)
	}
	if _, ok := translate.LookupCommand("dir", domain.OSLinux, domain.OSWindows); ok {
		t.Fatal("unexpected reverse dir mapping")
	}
}

func TestIsNativeCommand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cmd  string
		os   domain.OS
		want bool
	}{
		{"ls", domain.OSLinux, true},
		{"dir", domain.OSWindows, true},
		{"DIR", domain.OSWindows, true},
		{"dir", domain.OSLinux, false},
		{"ls", domain.OSWindows, false},
		{"brew", domain.OSMacOS, true},
		{"brew", domain.OSLinux, false},
		{"apt", domain.OSLinux, true},
	}
	for _, tt := range tests {
		if got := translate.IsNativeCommand(tt.cmd, tt.os); got != tt.want {
			t.Errorf("IsNativeCommand(%q, %s) = %v, want %v", tt.cmd, tt.os, got, tt.want)
		}
	}
}
