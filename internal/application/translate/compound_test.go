package translate_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"

	"github.com/doeshing/cmdx/internal/application/translate"
	"github.com/doeshing/cmdx/internal/domain"
)

func TestSplitCompound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []domain.Segment
	}{
		{
			name:  "single",
			input: "dir /w",
			want:  []domain.Segment{{Text: "dir /w"}},
		},
		{
			name:  "all operators",
			input: "a && b || c | d ; e",
			want: []domain.Segment{
				{Text: "a", Operator: domain.OperatorAnd},
				{Text: "b", Operator: domain.OperatorOr},
				{Text: "c", Operator: domain.OperatorPipe},
				{Text: "d", Operator: domain.OperatorSeq},
				{Text: "e"},
			},
		},
		{
			name:  "no spaces",
			input: "dir&&cls",
			want: []domain.Segment{
				{Text: "dir", Operator: domain.OperatorAnd},
				{Text: "cls"},
			},
		},
		{
			name:  "quoted operators stay",
			input: `echo "a && b" && findstr 'x|y' f`,
			want: []domain.Segment{
				{Text: `echo "a && b"`, Operator: domain.OperatorAnd},
				{Text: `findstr 'x|y' f`},
			},
		},
		{
			name:  "trailing semicolon dropped",
			input: "cls;",
			want:  []domain.Segment{{Text: "cls"}},
		},
		{
			name:  "trailing pipe kept",
			input: "dir |",
			want: []domain.Segment{
				{Text: "dir", Operator: domain.OperatorPipe},
				{Text: ""},
			},
		},
		{
			name:  "single ampersand is text",
			input: "start app &",
			want:  []domain.Segment{{Text: "start app &"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, translate.SplitCompound(tt.input)); diff != "" {
				t.Fatalf("SplitCompound(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestJoinSegmentsRoundTrip(t *testing.T) {
	t.Parallel()
	line := "dir /w && cls || echo done | more ; type a.txt"
	if got := translate.JoinSegments(translate.SplitCompound(line)); got != line {
		t.Fatalf("JoinSegments = %q, want %q", got, line)
	}
}

func TestTranslateCompoundCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		from, to     domain.OS
		want         string
		wantUnmapped bool
	}{
		{name: "and", input: "dir && cls", from: domain.OSWindows, to: domain.OSLinux, want: "ls && clear"},
		{name: "pipe with quotes", input: `dir /b | findstr /i "a|b"`, from: domain.OSWindows, to: domain.OSLinux, want: "ls -1 | grep -i 'a|b'"},
		{name: "normalises spacing", input: "dir;cls", from: domain.OSWindows, to: domain.OSLinux, want: "ls ; clear"},
		{name: "paths translated", input: `cd C:\work && del /q old.txt`, from: domain.OSWindows, to: domain.OSLinux, want: "cd /mnt/c/work && rm -f old.txt"},
		{name: "unmapped flags or-ed", input: "cls && dir /x", from: domain.OSWindows, to: domain.OSLinux, want: "clear && ls /x", wantUnmapped: true},
		{name: "trailing semicolon", input: "dir /w; cls;", from: domain.OSWindows, to: domain.OSLinux, want: "ls -C ; clear"},
		{name: "single segment", input: "ls -la /tmp", from: domain.OSLinux, to: domain.OSWindows, want: `dir /a \tmp`},
		{name: "identity", input: "dir&&cls", from: domain.OSWindows, to: domain.OSWindows, want: "dir&&cls"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := translate.TranslateCompoundCommand(tt.input, tt.from, tt.to)
			if err != nil {
				t.Fatalf("TranslateCompoundCommand(%q) error: %v", tt.input, err)
			}
			if got.Translated != tt.want {
				t.Errorf("Translated = %q, want %q", got.Translated, tt.want)
			}
			if got.HadUnmappedFlags != tt.wantUnmapped {
				t.Errorf("HadUnmappedFlags = %v, want %v", got.HadUnmappedFlags, tt.wantUnmapped)
			}
			if got.Original != tt.input {
				t.Errorf("Original = %q", got.Original)
			}
		})
	}
}

func TestTranslateCompoundCommandFailingSegment(t *testing.T) {
	t.Parallel()

	_, err := translate.TranslateCompoundCommand("ls && frobnicate -x && clear", domain.OSLinux, domain.OSWindows)
	var segErr *domain.CompoundSegmentError
	if !errors.As(err, &segErr) {
		t.Fatalf("error = %v, want CompoundSegmentError", err)
	}
	if segErr.Index != 1 || segErr.Segment != "frobnicate -x" {
		t.Fatalf("segment error = %+v", segErr)
	}
	if !errors.Is(err, domain.ErrInvalidCompoundSegment) || !errors.Is(err, domain.ErrUnknownCommand) {
		t.Fatalf("error chain incomplete: %v", err)
	}

	_, err = translate.TranslateCompoundCommand("dir && ", domain.OSWindows, domain.OSLinux)
	if !errors.Is(err, domain.ErrEmptyCommand) {
		t.Fatalf("empty segment error = %v", err)
	}
}

func TestTranslateCompoundCommandPathWarnings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		want     string
		wantWarn string
	}{
		{name: "home dir", input: "cat /home/alice/notes.txt", want: `type C:\Users\alice\notes.txt`, wantWarn: `argument "/home/alice/notes.txt": /home mapped to C:\Users`},
		{name: "tilde", input: "cat ~/notes.txt", want: `type %USERPROFILE%\notes.txt`, wantWarn: `argument "~/notes.txt": ~ translated to %USERPROFILE%`},
		{name: "network", input: "cat //nas/a.txt", want: `type \\nas\a.txt`, wantWarn: `argument "//nas/a.txt": network path converted to UNC format`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := translate.TranslateCompoundCommand(tt.input, domain.OSLinux, domain.OSWindows)
			if err != nil {
				t.Fatalf("TranslateCompoundCommand(%q) error: %v", tt.input, err)
			}
			if got.Translated != tt.want {
				t.Errorf("Translated = %q, want %q", got.Translated, tt.want)
			}
			if !slices.Contains(got.Warnings, tt.wantWarn) {
				t.Errorf("Warnings = %q, want %q", got.Warnings, tt.wantWarn)
			}
		})
	}
}
