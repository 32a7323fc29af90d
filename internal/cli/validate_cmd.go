package cli

import (
	"fmt"

	"github.com/alexanderramin/timesheet/internal/cli/formatter"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/service"
	"github.com/alexanderramin/timesheet/internal/validate"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	var flags formFlags

	cmd := &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Check that a week is complete enough to export",
		Long: "Check the required fields and that at least one day has working hours.\n" +
			"Days with an invalid time range are reported but do not fail validation.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := loadSession(app, args, flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			form := session.Form()
			for _, d := range form.Days {
				if d.Error != domain.EntryOK {
					fmt.Fprintln(out, formatter.StyleYellow.Render("! "+validate.DayMessage(d, d.Error)))
				}
			}

			result := session.Validate()
			fmt.Fprintln(out, formatter.FormatValidation(result))
			if !result.IsValid {
				return &service.ValidationError{Result: result}
			}
			return nil
		},
	}

	addFormFlags(cmd.Flags(), &flags)
	return cmd
}
