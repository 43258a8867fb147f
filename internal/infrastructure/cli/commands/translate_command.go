package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/cmdx/internal/app"
	"github.com/doeshing/cmdx/internal/application/translate"
	"github.com/doeshing/cmdx/internal/infrastructure/cli/helpers"
)

// NewTranslateCommand creates the translate command
func NewTranslateCommand(container *app.Container) *cobra.Command {
	var (
		from, to helpers.OSFlag
		raw      bool
		verbose  bool
		format   string
	)

	cmd := &cobra.Command{
		Use:     "translate [command]",
		Aliases: []string{"t"},
		Short:   "Translate a command line between operating systems",
		Long: `Translate a command, its flags, path arguments and compound operators.
Without an argument every non-blank stdin line is translated independently.`,
		Example: `  cmdx translate --from windows --to linux dir /w /s
  cmdx t -f linux -t windows -- ls -la /tmp
  printf 'cls\ndir && type a.txt\n' | cmdx t -f windows -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := newPrinter(cmd, container, format, verbose)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				args = []string{translate.JoinArgs(args)}
			}
			inputs, err := inputLines(cmd, args)
			if err != nil {
				return err
			}
			src, dst := container.SourceOS(from.Value), container.TargetOS(to.Value)
			return runBatch(printer, inputs, func(line string) (outcome, error) {
				res, err := container.Translator.Command(line, src, dst, raw)
				if err != nil {
					return outcome{}, err
				}
				return outcome{result: res, text: res.Translated, warnings: res.Warnings}, nil
			})
		},
	}

	cmd.Flags().SetInterspersed(false)
	helpers.AddOSPairFlags(cmd.Flags(), &from, &to)
	helpers.AddOutputFlag(cmd.Flags(), &format)
	cmd.Flags().BoolVar(&raw, "raw", false, "Translate a single command only (no compound split, no path rewriting)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show translation warnings")
	return cmd
}
