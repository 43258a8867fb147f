package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/cmdx/internal/app"
	"github.com/doeshing/cmdx/internal/domain"
	"github.com/doeshing/cmdx/internal/infrastructure/cli/helpers"
)

type envResult struct {
	Original   string    `json:"original" yaml:"original"`
	Translated string    `json:"translated" yaml:"translated"`
	From       domain.OS `json:"from" yaml:"from"`
	To         domain.OS `json:"to" yaml:"to"`
}

// NewEnvCommand creates the env command
func NewEnvCommand(container *app.Container) *cobra.Command {
	var (
		from, to helpers.OSFlag
		format   string
	)

	cmd := &cobra.Command{
		Use:   "env [text]",
		Short: "Translate environment variable references",
		Example: `  cmdx env -f windows -t linux '%USERPROFILE%\bin;%PATH%'
  cmdx env -f linux -t windows '$HOME/.cache'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := newPrinter(cmd, container, format, false)
			if err != nil {
				return err
			}
			inputs, err := inputLines(cmd, args)
			if err != nil {
				return err
			}
			src, dst := container.SourceOS(from.Value), container.TargetOS(to.Value)
			return runBatch(printer, inputs, func(text string) (outcome, error) {
				out := container.Translator.Env(text, src, dst)
				return outcome{
					result: envResult{Original: text, Translated: out, From: src, To: dst},
					text:   out,
				}, nil
			})
		},
	}

	helpers.AddOSPairFlags(cmd.Flags(), &from, &to)
	helpers.AddOutputFlag(cmd.Flags(), &format)
	return cmd
}
