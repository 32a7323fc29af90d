package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/timesheet/internal/clock"
	"github.com/alexanderramin/timesheet/internal/config"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/logging"
	"github.com/alexanderramin/timesheet/internal/report"
	"github.com/alexanderramin/timesheet/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// App holds the collaborators shared by all commands. Config and Logger are
// filled in by the root command before any subcommand runs.
type App struct {
	Config config.Config
	Logger *log.Logger
	Clock  clock.Clock

	// ConfigPath overrides config.DefaultPath when set.
	ConfigPath string

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// NewSink returns where exported reports are written.
	NewSink func(dir string) report.Sink

	// RunProgram runs a bubbletea model to completion.
	RunProgram func(ctx context.Context, m tea.Model, in io.Reader, out io.Writer) error

	// RunForm runs a huh wizard to completion.
	RunForm func(f *huh.Form) error

	closeLog io.Closer
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runForm(f *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(f)
	}
	return f.Run()
}

func (a *App) runProgram(ctx context.Context, m tea.Model, in io.Reader, out io.Writer) error {
	if a.RunProgram != nil {
		return a.RunProgram(ctx, m, in, out)
	}
	_, err := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	).Run()
	return err
}

func (a *App) rules() domain.WeekRules {
	return domain.WeekRules{
		ThresholdMinutes:    a.Config.Week.ThresholdMinutes,
		DefaultBreakMinutes: a.Config.Week.DefaultBreakMinutes,
	}
}

func (a *App) newExporter(format, outDir string) (*service.ExportService, error) {
	if format == "" {
		format = a.Config.Export.Format
	}
	if outDir == "" {
		outDir = a.Config.Export.OutputDir
	}
	renderer, err := report.NewRenderer(report.Format(format))
	if err != nil {
		return nil, err
	}
	newSink := a.NewSink
	if newSink == nil {
		newSink = func(dir string) report.Sink { return report.NewFileSink(dir) }
	}
	observer := service.NewLogUseCaseObserver(a.Logger)
	return service.NewExportService(renderer, newSink(outDir), a.Clock, a.rules(), observer), nil
}

// setup loads configuration and builds the logger. logOut receives log
// lines unless a log file is configured.
func (a *App) setup(logOut io.Writer) error {
	path := a.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(cfg.Log, logOut)
	if err != nil {
		return err
	}
	a.Config = cfg
	a.Logger = logger
	a.closeLog = closer
	if a.Clock == nil {
		a.Clock = clock.SystemClock{}
	}
	logger.WithField("config", path).Debug("configuration loaded")
	return nil
}

// Close releases the log file, if one was opened. It is safe to call
// more than once.
func (a *App) Close() error {
	if a.closeLog == nil {
		return nil
	}
	err := a.closeLog.Close()
	a.closeLog = nil
	return err
}

// NewRootCmd creates the top-level "timesheet" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "timesheet",
		Short:         "Weekly timesheet with live totals and PDF export",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runFill(cmd, app, domain.NewForm(app.Config.Week.DefaultBreakMinutes))
		},
	}

	root.PersistentFlags().StringVar(&app.ConfigPath, "config", app.ConfigPath,
		fmt.Sprintf("config file (default $%s or ~/.timesheet.yaml)", config.ConfigPathEnv))

	root.AddCommand(
		newFillCmd(app),
		newSummaryCmd(app),
		newValidateCmd(app),
		newExportCmd(app),
		newInitCmd(app),
	)

	return root
}
