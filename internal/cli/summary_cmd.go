package cli

import (
	"fmt"

	"github.com/alexanderramin/timesheet/internal/cli/formatter"
	"github.com/alexanderramin/timesheet/internal/service"
	"github.com/spf13/cobra"
)

// loadSession resolves the command's week input into a recomputed session.
func loadSession(app *App, args []string, flags formFlags) (*service.FormSession, error) {
	form, err := resolveForm(optionalArg(args), flags, app.Config.Week.DefaultBreakMinutes)
	if err != nil {
		return nil, err
	}
	session := service.NewFormSession(app.rules())
	session.Load(form)
	return session, nil
}

func newSummaryCmd(app *App) *cobra.Command {
	var flags formFlags

	cmd := &cobra.Command{
		Use:   "summary [FILE]",
		Short: "Show daily hours, the weekly total and overtime",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := loadSession(app, args, flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWeek(session.Form(), session.Summary()))
			return nil
		},
	}

	addFormFlags(cmd.Flags(), &flags)
	return cmd
}
