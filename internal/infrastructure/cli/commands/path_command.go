package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/cmdx/internal/app"
	"github.com/doeshing/cmdx/internal/domain"
	"github.com/doeshing/cmdx/internal/infrastructure/cli/helpers"
)

// NewPathCommand creates the path command
func NewPathCommand(container *app.Container) *cobra.Command {
	var (
		from, to helpers.OSFlag
		verbose  bool
		format   string
	)

	cmd := &cobra.Command{
		Use:   "path [path...]",
		Short: "Translate filesystem paths",
		Long: `Translate drive letters, UNC shares, home directories and separators.
The source convention is guessed from each path when --from is omitted.`,
		Example: `  cmdx path --to linux 'C:\Users\me\file.txt'
  cmdx path -f linux -t windows /mnt/d/data ~/notes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := newPrinter(cmd, container, format, verbose)
			if err != nil {
				return err
			}
			inputs := args
			if len(inputs) == 0 {
				if inputs, err = inputLines(cmd, nil); err != nil {
					return err
				}
			}
			dst := container.TargetOS(to.Value)
			return runBatch(printer, inputs, func(path string) (outcome, error) {
				var (
					res domain.PathResult
					err error
				)
				if from.Value == "" {
					res, err = container.Translator.PathAuto(path, dst)
				} else {
					res, err = container.Translator.Path(path, from.Value, dst)
				}
				if err != nil {
					return outcome{}, err
				}
				return outcome{result: res, text: res.Path, warnings: res.Warnings}, nil
			})
		},
	}

	helpers.AddOSPairFlags(cmd.Flags(), &from, &to)
	helpers.AddOutputFlag(cmd.Flags(), &format)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show translation warnings")
	return cmd
}
