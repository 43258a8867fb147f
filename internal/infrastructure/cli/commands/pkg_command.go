package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/cmdx/internal/app"
	"github.com/doeshing/cmdx/internal/infrastructure/cli/helpers"
)

// NewPkgCommand creates the pkg command
func NewPkgCommand(container *app.Container) *cobra.Command {
	var (
		from, to helpers.PackageManagerFlag
		verbose  bool
		format   string
	)

	cmd := &cobra.Command{
		Use:     "pkg [command]",
		Aliases: []string{"package"},
		Short:   "Translate package-manager commands",
		Long: `Translate install, remove, update, upgrade, search and other operations
between apt, yum, dnf, pacman, zypper, apk, emerge, xbps and nix. The source
manager is read from the command when --from is omitted; the target defaults
to the configured or detected manager.`,
		Example: `  cmdx pkg --to pacman sudo apt install -y vim
  cmdx pkg -f dnf -t apk -- dnf search nginx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := newPrinter(cmd, container, format, verbose)
			if err != nil {
				return err
			}
			inputs, err := inputLines(cmd, args)
			if err != nil {
				return err
			}
			dst := container.TargetPackageManager(to.Value)
			return runBatch(printer, inputs, func(line string) (outcome, error) {
				res, err := container.Translator.Package(line, from.Value, dst)
				if err != nil {
					return outcome{}, err
				}
				return outcome{result: res, text: res.Translated, warnings: res.Warnings}, nil
			})
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().VarP(&from, "from", "f", "Source package manager (default: read from the command)")
	cmd.Flags().VarP(&to, "to", "t", "Target package manager (default: configured or detected)")
	helpers.AddOutputFlag(cmd.Flags(), &format)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show translation warnings")
	return cmd
}
