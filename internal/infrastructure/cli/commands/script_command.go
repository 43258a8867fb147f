package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/cmdx/internal/app"
	"github.com/doeshing/cmdx/internal/application/translate"
	"github.com/doeshing/cmdx/internal/domain"
	"github.com/doeshing/cmdx/internal/infrastructure/cli/helpers"
)

type scriptResult struct {
	Original   string    `json:"original" yaml:"original"`
	Translated string    `json:"translated" yaml:"translated"`
	From       domain.OS `json:"from" yaml:"from"`
	To         domain.OS `json:"to" yaml:"to"`
}

type shebangResult struct {
	Original    string    `json:"original" yaml:"original"`
	Translated  string    `json:"translated" yaml:"translated"`
	From        domain.OS `json:"from" yaml:"from"`
	To          domain.OS `json:"to" yaml:"to"`
	Interpreter string    `json:"interpreter,omitempty" yaml:"interpreter,omitempty"`
	Args        []string  `json:"args,omitempty" yaml:"args,omitempty"`
}

// NewScriptCommand creates the script command
func NewScriptCommand(container *app.Container) *cobra.Command {
	var (
		from, to helpers.OSFlag
		format   string
	)

	cmd := &cobra.Command{
		Use:   "script <file...>",
		Short: "Translate script file extensions",
		Example: `  cmdx script -f windows -t linux build.bat setup.ps1
  cmdx script -f linux -t windows deploy.sh`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := newPrinter(cmd, container, format, false)
			if err != nil {
				return err
			}
			src, dst := container.SourceOS(from.Value), container.TargetOS(to.Value)
			return runBatch(printer, args, func(name string) (outcome, error) {
				out := container.Translator.Script(name, src, dst)
				return outcome{
					result: scriptResult{Original: name, Translated: out, From: src, To: dst},
					text:   out,
				}, nil
			})
		},
	}

	helpers.AddOSPairFlags(cmd.Flags(), &from, &to)
	helpers.AddOutputFlag(cmd.Flags(), &format)
	return cmd
}

// NewShebangCommand creates the shebang command
func NewShebangCommand(container *app.Container) *cobra.Command {
	var (
		from, to helpers.OSFlag
		format   string
	)

	cmd := &cobra.Command{
		Use:   "shebang [line]",
		Short: "Translate a script header line",
		Long: `Translate a "#!" interpreter line to "@echo off" and back. Without an
argument the first line of stdin is used, so a script can be piped in.`,
		Example: `  cmdx shebang -f linux -t windows '#!/usr/bin/env bash'
  head -1 build.bat | cmdx shebang -f windows -t linux`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := newPrinter(cmd, container, format, false)
			if err != nil {
				return err
			}
			var line string
			if len(args) > 0 {
				line = args[0]
			} else if line, err = helpers.ReadLine(cmd.InOrStdin()); err != nil {
				return err
			}
			src, dst := container.SourceOS(from.Value), container.TargetOS(to.Value)
			out := container.Translator.Shebang(line, src, dst)
			info := translate.ParseShebang(line)
			res := shebangResult{
				Original:    line,
				Translated:  out,
				From:        src,
				To:          dst,
				Interpreter: info.Interpreter,
				Args:        info.Args,
			}
			return printer.Result(res, out, nil)
		},
	}

	helpers.AddOSPairFlags(cmd.Flags(), &from, &to)
	helpers.AddOutputFlag(cmd.Flags(), &format)
	return cmd
}
