package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/cmdx/internal/app"
	"github.com/doeshing/cmdx/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// NewRootCmd wires the cobra root command. The returned container must be
// closed by the caller once the command has run.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, *app.Container, error) {
	container, err := app.BuildContainer(ctx, app.Options{
		Verbose:    opts.Verbose,
		ConfigPath: opts.ConfigPath,
	})
	if err != nil {
		return nil, nil, err
	}

	root := &cobra.Command{
		Use:   "cmdx",
		Short: "cmdx - cross-platform shell command translator",
		Long: `cmdx translates shell commands, flags, paths, environment variables,
package-manager invocations and script headers between Windows, Linux,
macOS, the BSDs and other Unix-like systems.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("debug", opts.Verbose, "Enable debug logging (also CMDX_DEBUG=1)")

	root.AddCommand(
		commands.NewTranslateCommand(container),
		commands.NewPathCommand(container),
		commands.NewEnvCommand(container),
		commands.NewPkgCommand(container),
		commands.NewScriptCommand(container),
		commands.NewShebangCommand(container),
		commands.NewListCommand(container),
		commands.NewDetectCommand(container),
		commands.NewOSCommand(container),
		commands.NewHistoryCommand(container),
		commands.NewConfigCommand(container),
		commands.NewDoctorCommand(container),
		commands.NewPreprocessCommand(container),
		commands.NewHookCommand(container),
		commands.NewVersionCommand(),
	)
	return root, container, nil
}
