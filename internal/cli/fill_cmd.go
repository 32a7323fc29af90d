package cli

import (
	"io"

	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/spf13/cobra"
)

func newFillCmd(app *App) *cobra.Command {
	var flags formFlags
	var outDir, format string

	cmd := &cobra.Command{
		Use:   "fill [FILE]",
		Short: "Fill in the week interactively",
		Long: "Open the timesheet form. Totals update as you type; ctrl+e exports,\n" +
			"ctrl+r clears the form after confirmation.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := resolveForm(optionalArg(args), flags, app.Config.Week.DefaultBreakMinutes)
			if err != nil {
				return err
			}
			app.Config.Export.OutputDir = orDefault(outDir, app.Config.Export.OutputDir)
			app.Config.Export.Format = orDefault(format, app.Config.Export.Format)
			return runFill(cmd, app, form)
		},
	}

	addFormFlags(cmd.Flags(), &flags)
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory for exports")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Report format: pdf or csv")
	return cmd
}

// runFill opens the form model prefilled with form.
func runFill(cmd *cobra.Command, app *App, form domain.Form) error {
	exporter, err := app.newExporter("", "")
	if err != nil {
		return err
	}
	// Log lines on stderr would tear the alternate screen.
	if app.Config.Log.File == "" {
		app.Logger.SetOutput(io.Discard)
	}
	m := newFormModel(cmd.Context(), app.rules(), exporter, app.Config.BannerDuration())
	m.load(form)
	return app.runProgram(cmd.Context(), m, cmd.InOrStdin(), cmd.OutOrStdout())
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
