package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/cmdx/internal/app"
	"github.com/doeshing/cmdx/internal/domain"
	"github.com/doeshing/cmdx/internal/infrastructure/cli/helpers"
	"github.com/doeshing/cmdx/internal/ports"
)

// NewHookCommand creates the hook command group for the preprocess shell hook.
func NewHookCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Manage the shell hook that translates typed lines before they run",
	}
	cmd.AddCommand(
		newHookInstallCommand(container),
		newHookUninstallCommand(container),
		newHookStatusCommand(container),
	)
	return cmd
}

func newHookInstallCommand(container *app.Container) *cobra.Command {
	var (
		shell string
		force bool
	)
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Write the hook script and source it from the shell rc file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return forEachShell(container, shell, func(integrator ports.ShellIntegrator, name domain.ShellName) error {
				result, err := integrator.Install(string(name), force)
				if err != nil {
					return fmt.Errorf("install hook for %s: %w", name, err)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Installed %s hook\n  script: %s\n  rc file: %s", result.Shell, result.ScriptPath, result.RCFile)
				if !result.RCUpdated {
					fmt.Fprint(out, " (already sourced)")
				}
				fmt.Fprintf(out, "\nRestart the shell or run: source %s\n", result.RCFile)
				return nil
			})
		},
	}
	addShellFlag(cmd, &shell)
	cmd.Flags().BoolVar(&force, "force", false, "Rewrite the rc entry even when present")
	return cmd
}

func newHookUninstallCommand(container *app.Container) *cobra.Command {
	var shell string
	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the source line from the shell rc file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return forEachShell(container, shell, func(integrator ports.ShellIntegrator, name domain.ShellName) error {
				result, err := integrator.Uninstall(string(name))
				if err != nil {
					return fmt.Errorf("uninstall hook for %s: %w", name, err)
				}
				if result.RCUpdated {
					fmt.Fprintf(cmd.OutOrStdout(), "Removed %s hook from %s\n", result.Shell, result.RCFile)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "No %s hook found in %s\n", result.Shell, result.RCFile)
				}
				return nil
			})
		},
	}
	addShellFlag(cmd, &shell)
	return cmd
}

func newHookStatusCommand(container *app.Container) *cobra.Command {
	var (
		shell  string
		format string
	)
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether the hook is installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := newPrinter(cmd, container, format, false)
			if err != nil {
				return err
			}
			var statuses []domain.ShellStatus
			err = forEachShell(container, shell, func(integrator ports.ShellIntegrator, name domain.ShellName) error {
				statuses = append(statuses, integrator.Status(string(name)))
				return nil
			})
			if err != nil {
				return err
			}
			if printer.Structured() {
				return printer.Encode(statuses)
			}
			for _, status := range statuses {
				displayShellStatus(cmd.OutOrStdout(), status)
			}
			return nil
		},
	}
	addShellFlag(cmd, &shell)
	helpers.AddOutputFlag(cmd.Flags(), &format)
	return cmd
}

func addShellFlag(cmd *cobra.Command, shell *string) {
	cmd.Flags().StringVar(shell, "shell", "", "Shell to manage (zsh|bash|all, auto-detected by default)")
}

// forEachShell resolves the --shell value and runs fn once per shell.
func forEachShell(container *app.Container, flag string, fn func(ports.ShellIntegrator, domain.ShellName) error) error {
	if container.ShellInstaller == nil {
		return errors.New(ErrShellInstallerUnavailable)
	}
	shells, err := targetShells(flag, container.ShellInstaller.DetectShell())
	if err != nil {
		return err
	}
	for _, name := range shells {
		if err := fn(container.ShellInstaller, name); err != nil {
			return err
		}
	}
	return nil
}

func targetShells(flag, detected string) ([]domain.ShellName, error) {
	name := strings.ToLower(strings.TrimSpace(flag))
	if name == "" {
		name = strings.ToLower(detected)
		if name == "" {
			return nil, errors.New(ErrShellNotDetected)
		}
	}
	switch name {
	case "all":
		return []domain.ShellName{domain.ShellZsh, domain.ShellBash}, nil
	case string(domain.ShellZsh), string(domain.ShellBash):
		return []domain.ShellName{domain.ShellName(name)}, nil
	default:
		return nil, fmt.Errorf("unsupported shell %q (supported: zsh, bash)", name)
	}
}

func displayShellStatus(out io.Writer, status domain.ShellStatus) {
	state := "not installed"
	switch {
	case status.Installed():
		state = "installed"
	case status.ScriptExists:
		state = "script present, not sourced"
	}
	fmt.Fprintf(out, "%s: %s\n  script: %s\n  rc file: %s\n", status.Shell, state, status.ScriptPath, status.RCFile)
}
