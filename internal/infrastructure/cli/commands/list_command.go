package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/doeshing/cmdx/internal/app"
	"github.com/doeshing/cmdx/internal/domain"
	"github.com/doeshing/cmdx/internal/infrastructure/cli/helpers"
)

// NewListCommand creates the list command
func NewListCommand(container *app.Container) *cobra.Command {
	var (
		from, to helpers.OSFlag
		filter   string
		format   string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List commands with a mapping for an OS pair",
		Example: `  cmdx list -f windows -t linux
  cmdx ls -f linux -t windows --filter grp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := newPrinter(cmd, container, format, false)
			if err != nil {
				return err
			}
			src, dst := container.SourceOS(from.Value), container.TargetOS(to.Value)
			names := filterCommands(container.Engine.ListCommands(src, dst), filter)

			mappings := make([]domain.CommandMapping, 0, len(names))
			for _, name := range names {
				if m, ok := container.Engine.LookupCommand(name, src, dst); ok {
					mappings = append(mappings, m)
				}
			}
			if printer.Structured() {
				return printer.Encode(mappings)
			}
			displayMappings(cmd.OutOrStdout(), printer, mappings, filter)
			return nil
		},
	}

	helpers.AddOSPairFlags(cmd.Flags(), &from, &to)
	helpers.AddOutputFlag(cmd.Flags(), &format)
	cmd.Flags().StringVar(&filter, "filter", "", "Fuzzy filter on source command names")
	return cmd
}

// filterCommands ranks names by fuzzy match quality; an empty pattern keeps
// the original order.
func filterCommands(names []string, pattern string) []string {
	if pattern == "" {
		return names
	}
	matches := fuzzy.Find(pattern, names)
	sort.Sort(matches)

	results := make([]string, len(matches))
	for i, m := range matches {
		results[i] = names[m.Index]
	}
	return results
}

func displayMappings(out io.Writer, printer *helpers.Printer, mappings []domain.CommandMapping, filter string) {
	if len(mappings) == 0 {
		if filter != "" {
			fmt.Fprintln(out, MsgNoMatches)
		} else {
			fmt.Fprintln(out, MsgNoCommands)
		}
		return
	}
	for _, m := range mappings {
		line := m.SourceCommand + ArrowSeparator + printer.Styles.Command.Render(m.TargetCommand)
		if len(m.Flags) > 0 {
			line += printer.Styles.Muted.Render(fmt.Sprintf("  (%d flags)", len(m.Flags)))
		}
		if m.Notes != "" {
			line += printer.Styles.Muted.Render("  # " + m.Notes)
		}
		fmt.Fprintln(out, line)
	}
}
