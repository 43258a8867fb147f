package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/cmdx/internal/app"
	"github.com/doeshing/cmdx/internal/domain"
	"github.com/doeshing/cmdx/internal/infrastructure/cli/helpers"
)

// NewDetectCommand creates the detect command
func NewDetectCommand(container *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Show the detected OS, distribution and package manager",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := newPrinter(cmd, container, format, false)
			if err != nil {
				return err
			}
			if printer.Structured() {
				return printer.Encode(container.Host)
			}
			displayHost(cmd.OutOrStdout(), printer, container.Host)
			return nil
		},
	}

	helpers.AddOutputFlag(cmd.Flags(), &format)
	return cmd
}

func displayHost(out io.Writer, printer *helpers.Printer, info domain.HostInfo) {
	row := func(label, value string) {
		if value == "" {
			value = printer.Styles.Muted.Render("unknown")
		}
		fmt.Fprintf(out, "%-16s %s\n", label+":", value)
	}
	row("OS", fmt.Sprintf("%s (%s)", info.OS.DisplayName(), info.OS))
	row("Architecture", info.Arch)
	if info.OS == domain.OSLinux || info.OS == domain.OSAndroid {
		distro := ""
		if info.Distro != "" {
			distro = info.Distro.DisplayName()
		}
		row("Distribution", distro)
	}
	row("Package manager", string(info.PackageManager))
	row("Shell", info.Shell)
}

// osEntry describes one supported OS.
type osEntry struct {
	Name      domain.OS `json:"name" yaml:"name"`
	Display   string    `json:"display" yaml:"display"`
	Aliases   []string  `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	UnixLike  bool      `json:"unix_like" yaml:"unix_like"`
	Separator string    `json:"path_separator" yaml:"path_separator"`
}

// NewOSCommand creates the os command
func NewOSCommand(container *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "os",
		Short: "List supported operating systems and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := newPrinter(cmd, container, format, false)
			if err != nil {
				return err
			}
			entries := supportedOS()
			if printer.Structured() {
				return printer.Encode(entries)
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				line := fmt.Sprintf("%-8s %-10s", e.Name, e.Display)
				if len(e.Aliases) > 0 {
					line += printer.Styles.Muted.Render(" aliases: " + strings.Join(e.Aliases, ", "))
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	helpers.AddOutputFlag(cmd.Flags(), &format)
	return cmd
}

func supportedOS() []osEntry {
	all := domain.AllOS()
	entries := make([]osEntry, 0, len(all))
	for _, o := range all {
		sep := "/"
		if o.UsesWindowsConventions() {
			sep = `\`
		}
		entries = append(entries, osEntry{
			Name:      o,
			Display:   o.DisplayName(),
			Aliases:   o.Aliases(),
			UnixLike:  o.IsUnixLike(),
			Separator: sep,
		})
	}
	return entries
}
