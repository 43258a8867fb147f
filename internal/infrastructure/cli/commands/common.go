package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/cmdx/internal/app"
	"github.com/doeshing/cmdx/internal/infrastructure/cli/helpers"
)

// newPrinter builds the output printer for cmd from config plus flags.
func newPrinter(cmd *cobra.Command, container *app.Container, format string, verbose bool) (*helpers.Printer, error) {
	return helpers.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), container.Config.Output, format, verbose || container.Verbose)
}

// inputLines returns the joined arguments as one line, or stdin lines when
// no argument was given.
func inputLines(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}
	lines, err := helpers.ReadLines(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.New(ErrNoInput)
	}
	return lines, nil
}

// batchEntry is one line of a stdin batch in structured output.
type batchEntry struct {
	Input  string      `json:"input" yaml:"input"`
	Result interface{} `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string      `json:"error,omitempty" yaml:"error,omitempty"`
}

// batchError summarises per-line failures after the whole batch ran.
func batchError(failed, total int) error {
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d inputs failed", failed, total)
}

// outcome is what one translation hands back to runBatch.
type outcome struct {
	result   interface{}
	text     string
	warnings []string
}

// runBatch translates every input independently. A single input fails
// fast; with several, failures are reported per line and summarised at the
// end. Structured modes encode one value for a single input and a list of
// entries otherwise.
func runBatch(printer *helpers.Printer, inputs []string, translate func(string) (outcome, error)) error {
	if len(inputs) == 1 {
		out, err := translate(inputs[0])
		if err != nil {
			return err
		}
		return printer.Result(out.result, out.text, out.warnings)
	}

	entries := make([]batchEntry, 0, len(inputs))
	failed := 0
	for _, input := range inputs {
		out, err := translate(input)
		if err != nil {
			failed++
			entries = append(entries, batchEntry{Input: input, Error: err.Error()})
			if !printer.Structured() {
				printer.Failure(input, err)
			}
			continue
		}
		entries = append(entries, batchEntry{Input: input, Result: out.result})
		if !printer.Structured() {
			if err := printer.Result(out.result, out.text, out.warnings); err != nil {
				return err
			}
		}
	}
	if printer.Structured() {
		if err := printer.Encode(entries); err != nil {
			return err
		}
	}
	return batchError(failed, len(inputs))
}
