package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/cmdx/internal/app"
	"github.com/doeshing/cmdx/internal/application/translate"
	"github.com/doeshing/cmdx/internal/infrastructure/cli/helpers"
)

// NewPreprocessCommand creates the preprocess command used by shell hooks.
// It always exits successfully so a hook never blocks the user's line.
func NewPreprocessCommand(container *app.Container) *cobra.Command {
	var from, to helpers.OSFlag

	cmd := &cobra.Command{
		Use:   "preprocess [line]",
		Short: "Translate one line for a shell hook, echoing it unchanged on failure",
		RunE: func(cmd *cobra.Command, args []string) error {
			line := translate.JoinArgs(args)
			if len(args) == 0 {
				read, err := helpers.ReadLine(cmd.InOrStdin())
				if err != nil {
					container.Logger.Debug("preprocess read failed", map[string]interface{}{"error": err.Error()})
				}
				line = read
			}

			src := from.Value
			if src == "" {
				src = container.PreprocessSource()
			}
			dst := to.Value
			if dst == "" {
				dst = container.Host.OS
			}
			fmt.Fprintln(cmd.OutOrStdout(), container.Translator.Preprocess(line, src, dst))
			return nil
		},
	}

	cmd.Flags().SetInterspersed(false)
	helpers.AddOSPairFlags(cmd.Flags(), &from, &to)
	return cmd
}
