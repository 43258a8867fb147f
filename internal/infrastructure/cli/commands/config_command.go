package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/doeshing/cmdx/assets"
	"github.com/doeshing/cmdx/internal/app"
	"github.com/doeshing/cmdx/internal/domain"
	"github.com/doeshing/cmdx/internal/infrastructure/cli/helpers"
	"github.com/doeshing/cmdx/internal/pkg/filesystem"
)

// NewConfigCommand creates the config command with all subcommands
func NewConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect cmdx configuration",
	}

	configCmd.AddCommand(
		newConfigShowCommand(container),
		newConfigPathCommand(container),
		newConfigInitMappingsCommand(container),
	)

	return configCmd
}

// newConfigShowCommand creates the 'config show' subcommand
func newConfigShowCommand(container *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration (file plus CMDX_* overrides)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = domain.OutputYAML
			}
			printer, err := newPrinter(cmd, container, format, false)
			if err != nil {
				return err
			}
			if !printer.Structured() {
				printer.Format = domain.OutputYAML
			}
			return printer.Encode(container.Config)
		},
	}

	helpers.AddOutputFlag(cmd.Flags(), &format)
	return cmd
}

// newConfigPathCommand creates the 'config path' subcommand
func newConfigPathCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.ConfigLoader == nil {
				return errors.New(ErrConfigLoaderUnavailable)
			}
			fmt.Fprintln(cmd.OutOrStdout(), container.ConfigLoader.Path())
			return nil
		},
	}
}

// newConfigInitMappingsCommand creates the 'config init-mappings' subcommand
func newConfigInitMappingsCommand(container *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init-mappings",
		Short: "Write an example mapping overlay to mappings.file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := container.Config.Mappings.File
			if err := writeExampleMappings(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote example mappings to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

// writeExampleMappings writes the embedded example overlay to path
func writeExampleMappings(path string, force bool) error {
	if path == "" {
		return errors.New("mappings.file is not set")
	}
	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(ErrMappingsFileExists)
	}
	if err := filesystem.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create mappings directory: %w", err)
	}
	if err := os.WriteFile(path, assets.ExampleMappingsYAML, domain.SecureFilePermissions); err != nil {
		return fmt.Errorf("failed to write mappings file: %w", err)
	}
	return nil
}
