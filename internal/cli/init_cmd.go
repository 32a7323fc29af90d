package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/timesheet/internal/cli/formatter"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/service"
	"github.com/alexanderramin/timesheet/internal/weekfile"
	"github.com/spf13/cobra"
)

// errInitDeclined is returned when the user keeps an existing week file.
var errInitDeclined = errors.New("week file left unchanged")

func newInitCmd(app *App) *cobra.Command {
	var flags formFlags
	var force bool

	cmd := &cobra.Command{
		Use:   "init FILE",
		Short: "Write a week file template",
		Long: "Write a week file listing all five days with the default break.\n" +
			"Required fields come from --name, --week and --cost-center, or from a\n" +
			"short wizard when running in a terminal.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if _, err := os.Stat(path); err == nil && !force {
				if !app.overwriteConfirmer(cmd, path)() {
					return errInitDeclined
				}
			}

			form := domain.NewForm(app.Config.Week.DefaultBreakMinutes)
			form.EmployeeName = flags.name
			form.CalendarWeek = flags.week
			form.CostCenter = flags.costCenter

			if app.interactive() && hasBlankField(form) {
				if err := app.runForm(wizardEmployee(&form.EmployeeName, &form.CalendarWeek, &form.CostCenter)); err != nil {
					return fmt.Errorf("employee wizard: %w", err)
				}
			}

			if err := weekfile.Save(path, weekfile.FromForm(form)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", formatter.StyleGreen.Render("✔"), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.name, "name", "", "Employee name")
	cmd.Flags().StringVar(&flags.week, "week", "", "Calendar week")
	cmd.Flags().StringVar(&flags.costCenter, "cost-center", "", "Cost center")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file without asking")
	return cmd
}

// overwriteConfirmer asks with a huh dialog in a terminal and with a plain
// y/N prompt otherwise.
func (a *App) overwriteConfirmer(cmd *cobra.Command, path string) service.Confirmer {
	title := fmt.Sprintf("%s already exists. Overwrite?", path)
	if !a.interactive() {
		return promptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout(), title+" [y/N]: ")
	}
	return func() bool {
		var ok bool
		if err := a.runForm(wizardConfirm(title, &ok)); err != nil {
			return false
		}
		return ok
	}
}

func hasBlankField(form domain.Form) bool {
	for _, f := range form.RequiredFields() {
		if f.Value == "" {
			return true
		}
	}
	return false
}
