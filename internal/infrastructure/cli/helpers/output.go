package helpers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/cmdx/internal/domain"
)

// Printer renders command results in the configured output format.
type Printer struct {
	Out          io.Writer
	Err          io.Writer
	Format       string
	ShowWarnings bool
	Styles       Styles
}

// NewPrinter builds a printer for out. A non-empty format overrides the
// configured one; verbose forces warnings on.
func NewPrinter(out, errOut io.Writer, settings domain.OutputSettings, format string, verbose bool) (*Printer, error) {
	if format == "" {
		format = settings.Format
	}
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "", domain.OutputText:
		format = domain.OutputText
	case domain.OutputJSON, domain.OutputYAML:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	renderer := lipgloss.NewRenderer(out)
	if UseColor(settings.Color, out) {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		Out:          out,
		Err:          errOut,
		Format:       format,
		ShowWarnings: verbose || settings.ShowWarnings,
		Styles:       NewStyles(renderer),
	}, nil
}

// UseColor resolves a color mode against the destination stream.
func UseColor(mode string, out io.Writer) bool {
	switch strings.ToLower(mode) {
	case domain.ColorAlways:
		return true
	case domain.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Structured reports whether the printer emits json or yaml.
func (p *Printer) Structured() bool {
	return p.Format != domain.OutputText
}

// Encode writes v as json or yaml.
func (p *Printer) Encode(v interface{}) error {
	switch p.Format {
	case domain.OutputJSON:
		enc := json.NewEncoder(p.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case domain.OutputYAML:
		enc := yaml.NewEncoder(p.Out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(p.Out, v)
		return err
	}
}

// Result prints one translation. Text mode prints the translated line and,
// when enabled, its warnings on the error stream.
func (p *Printer) Result(v interface{}, text string, warnings []string) error {
	if p.Structured() {
		return p.Encode(v)
	}
	fmt.Fprintln(p.Out, p.Styles.Command.Render(text))
	if p.ShowWarnings {
		p.PrintWarnings(warnings)
	}
	return nil
}

// PrintWarnings outputs a list of warning messages to the error stream.
func (p *Printer) PrintWarnings(warnings []string) {
	for _, warning := range warnings {
		warning = strings.TrimSpace(warning)
		if warning == "" {
			continue
		}
		fmt.Fprintln(p.Err, p.Styles.Warning.Render("warning: "+warning))
	}
}

// Failure prints an item-level error in batch modes without aborting.
func (p *Printer) Failure(input string, err error) {
	fmt.Fprintf(p.Err, "%s %s: %v\n", p.Styles.Error.Render("error:"), input, err)
}
