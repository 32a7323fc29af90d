package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/timesheet/internal/cli/formatter"
	"github.com/alexanderramin/timesheet/internal/service"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var flags formFlags
	var outDir, format string

	cmd := &cobra.Command{
		Use:   "export [FILE]",
		Short: "Validate the week and write the timesheet report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := loadSession(app, args, flags)
			if err != nil {
				return err
			}
			exporter, err := app.newExporter(format, outDir)
			if err != nil {
				return err
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Generating report...")
			}
			result, err := exporter.Export(cmd.Context(), session.Form())
			stop()

			out := cmd.OutOrStdout()
			if err != nil {
				var invalid *service.ValidationError
				if errors.As(err, &invalid) {
					fmt.Fprintln(out, formatter.FormatValidation(invalid.Result))
				}
				return err
			}

			fmt.Fprintln(out, formatter.FormatExported(result.Path, result.Bytes, result.Document.HasOvertime))
			return nil
		},
	}

	addFormFlags(cmd.Flags(), &flags)
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default from config, export.outputdir)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Report format: pdf or csv (default from config, export.format)")
	return cmd
}
