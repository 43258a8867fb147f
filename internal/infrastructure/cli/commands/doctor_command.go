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
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(container *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the cmdx setup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctorDiagnostics(cmd, container, format)
		},
	}

	helpers.AddOutputFlag(cmd.Flags(), &format)
	return cmd
}

// runDoctorDiagnostics runs environment diagnostics
func runDoctorDiagnostics(cmd *cobra.Command, container *app.Container, format string) error {
	if container.DoctorService == nil {
		return errors.New(ErrDoctorServiceUnavailable)
	}
	printer, err := newPrinter(cmd, container, format, false)
	if err != nil {
		return err
	}

	report, err := container.DoctorService.Run(cmd.Context())

	// Display report even if there were errors
	if printer.Structured() {
		if encErr := printer.Encode(report); encErr != nil {
			return encErr
		}
	} else {
		displayDoctorReport(cmd.OutOrStdout(), printer, report)
	}

	if err != nil {
		return fmt.Errorf("diagnostics completed with errors: %w", err)
	}
	if !report.Healthy() {
		return errors.New(ErrDiagnosticsFailed)
	}
	return nil
}

// displayDoctorReport displays the health check report
func displayDoctorReport(out io.Writer, printer *helpers.Printer, report domain.HealthReport) {
	for _, check := range report.Checks {
		label := fmt.Sprintf("[%s]", strings.ToUpper(string(check.Status)))
		switch check.Status {
		case domain.HealthOK:
			label = printer.Styles.Success.Render(label)
		case domain.HealthWarn:
			label = printer.Styles.Warning.Render(label)
		default:
			label = printer.Styles.Error.Render(label)
		}
		fmt.Fprintf(out, "%s %s - %s\n", label, check.Name, check.Details)
	}
}
