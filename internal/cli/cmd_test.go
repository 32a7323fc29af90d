package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/timesheet/internal/clock"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/report"
	"github.com/alexanderramin/timesheet/internal/testutil"
	"github.com/alexanderramin/timesheet/internal/weekfile"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a non-interactive App with no config file and a fixed clock.
func testApp(t *testing.T) *App {
	t.Helper()
	return &App{
		ConfigPath:    filepath.Join(t.TempDir(), "missing.yaml"),
		Clock:         &clock.FixedClock{FixedNow: testutil.FixedTime},
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	return executeCmdWithInput(t, app, "", args...)
}

func executeCmdWithInput(t *testing.T, app *App, input string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(input))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeWeekFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "week.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const completeWeek = `
employee:
  name: Jane Doe
  calendar_week: KW 42
  cost_center: "4711"
days:
  - {day: monday, start: "09:00", end: "17:00"}
  - {day: tuesday, start: "09:00", end: "17:00", break: 45}
`

// --- root ---

func TestRootCmd_NonInteractivePrintsHelp(t *testing.T) {
	out, err := executeCmd(t, testApp(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "summary")
	assert.Contains(t, out, "export")
}

func TestRootCmd_InvalidConfigFails(t *testing.T) {
	app := testApp(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("export:\n  format: docx\n"), 0o644))

	_, err := executeCmd(t, app, "--config", cfgPath, "summary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export.format")
}

// --- summary ---

func TestSummaryCmd_FromDayFlags(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "summary",
		"--name", "Jane Doe", "--week", "KW 42", "--cost-center", "4711",
		"--day", "mon=09:00-17:00", "--day", "fri=08:00-12:00/0")
	require.NoError(t, err)

	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "7:30")
	assert.Contains(t, out, "4:00")
	assert.Contains(t, out, "11:30")
	assert.Contains(t, out, "40:00")
}

func TestSummaryCmd_FromWeekFileWithOverride(t *testing.T) {
	path := writeWeekFile(t, completeWeek)

	out, err := executeCmd(t, testApp(t), "summary", path, "--name", "John Roe")
	require.NoError(t, err)

	assert.Contains(t, out, "John Roe")
	assert.NotContains(t, out, "Jane Doe")
	assert.Contains(t, out, "14:45")
}

func TestSummaryCmd_ShowsDayErrors(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "summary", "--day", "wed=17:00-09:00")
	require.NoError(t, err)
	assert.Contains(t, out, "Wednesday: End time must be after the start time")
}

func TestSummaryCmd_ConfigThreshold(t *testing.T) {
	app := testApp(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("week:\n  thresholdminutes: 420\n"), 0o644))

	out, err := executeCmd(t, app, "--config", cfgPath, "summary", "--day", "mon=09:00-17:00")
	require.NoError(t, err)
	assert.Contains(t, out, "7:00")
	assert.Contains(t, out, "+0:30")
}

func TestSummaryCmd_EnvOverridesDefaultBreak(t *testing.T) {
	t.Setenv("TIMESHEET_WEEK_DEFAULTBREAKMINUTES", "60")

	out, err := executeCmd(t, testApp(t), "summary", "--day", "mon=09:00-17:00")
	require.NoError(t, err)
	assert.Contains(t, out, "7:00")
	assert.Contains(t, out, "60 min")
}

func TestSummaryCmd_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"bad day flag", []string{"--day", "sat=09:00-17:00"}, "unknown weekday"},
		{"missing span", []string{"--day", "mon"}, "expected DAY=START-END"},
		{"negative break", []string{"--day", "mon=09:00-17:00/-5"}, "non-negative"},
		{"missing file", []string{filepath.Join(os.TempDir(), "does-not-exist-week.yaml")}, "reading week file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCmd(t, testApp(t), append([]string{"summary"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSummaryCmd_InvalidWeekFile(t *testing.T) {
	path := writeWeekFile(t, "days:\n  - {day: monday}\n  - {day: mon}\n  - {day: friday, break: -1}\n")

	_, err := executeCmd(t, testApp(t), "summary", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate day")
	assert.Contains(t, err.Error(), "break must not be negative")
}

// --- validate ---

func TestValidateCmd_EmptyFormFails(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "validate")
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrRequiredFieldMissing)
	assert.ErrorIs(t, err, domain.ErrNoWorkingHoursEntered)
	assert.Contains(t, out, "Employee name: This field is required")
	assert.Contains(t, out, "Calendar week: This field is required")
	assert.Contains(t, out, "Cost center: This field is required")
	assert.Contains(t, out, "Please enter working hours for at least one day.")
}

func TestValidateCmd_CompleteWeekPasses(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "validate", writeWeekFile(t, completeWeek))
	require.NoError(t, err)
	assert.Contains(t, out, "ready for export")
}

func TestValidateCmd_DayErrorIsWarningOnly(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "validate", writeWeekFile(t, completeWeek),
		"--day", "wed=10:00-10:10")
	require.NoError(t, err)
	assert.Contains(t, out, "Wednesday: Break is longer than the working time")
}

func TestValidateCmd_OnlyInvalidDaysFails(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "validate",
		"--name", "Jane", "--week", "KW 1", "--cost-center", "1", "--day", "mon=17:00-09:00")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoWorkingHoursEntered)
	assert.NotErrorIs(t, err, domain.ErrRequiredFieldMissing)
}

// --- export ---

func TestExportCmd_WritesCSV(t *testing.T) {
	outDir := t.TempDir()

	out, err := executeCmd(t, testApp(t), "export", writeWeekFile(t, completeWeek),
		"--out", outDir, "--format", "csv")
	require.NoError(t, err)

	path := filepath.Join(outDir, "Timesheet_Jane_Doe_KW_42.csv")
	assert.Contains(t, out, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Jane Doe")
	assert.Contains(t, string(data), "14:45")
}

func TestExportCmd_WritesPDFByDefault(t *testing.T) {
	outDir := t.TempDir()

	_, err := executeCmd(t, testApp(t), "export", writeWeekFile(t, completeWeek), "-o", outDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "Timesheet_Jane_Doe_KW_42.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestExportCmd_IncompleteFormWritesNothing(t *testing.T) {
	outDir := t.TempDir()

	out, err := executeCmd(t, testApp(t), "export", "--day", "mon=09:00-17:00", "--out", outDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequiredFieldMissing)
	assert.Contains(t, out, "Employee name: This field is required")

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExportCmd_UnknownFormat(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "export", writeWeekFile(t, completeWeek), "--format", "docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestExportCmd_SinkFailure(t *testing.T) {
	app := testApp(t)
	sink := testutil.NewMemorySink()
	sink.Err = testutil.ErrInjected
	app.NewSink = func(string) report.Sink { return sink }

	_, err := executeCmd(t, app, "export", writeWeekFile(t, completeWeek))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReportGenerationFailed)
	assert.ErrorIs(t, err, testutil.ErrInjected)
}

// --- init ---

func TestInitCmd_WritesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "week.yaml")

	out, err := executeCmd(t, testApp(t), "init", path, "--name", "Jane Doe", "--week", "KW 42", "--cost-center", "4711")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	wf, err := weekfile.Load(path)
	require.NoError(t, err)
	assert.Empty(t, weekfile.Validate(wf))
	assert.Equal(t, "Jane Doe", wf.Employee.Name)
	require.Len(t, wf.Days, domain.DaysPerWeek)
	require.NotNil(t, wf.Days[0].Break)
	assert.Equal(t, 30, *wf.Days[0].Break)
}

func TestInitCmd_ExistingFile(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		args      []string
		wantErr   error
		wantName  string
		wantAsked bool
	}{
		{name: "declined", input: "n\n", wantErr: errInitDeclined, wantName: "Old", wantAsked: true},
		{name: "confirmed", input: "y\n", wantName: "New", wantAsked: true},
		{name: "forced", args: []string{"--force"}, wantName: "New"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeWeekFile(t, "employee:\n  name: Old\n")
			args := append([]string{"init", path, "--name", "New"}, tt.args...)

			out, err := executeCmdWithInput(t, testApp(t), tt.input, args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantAsked, strings.Contains(out, "Overwrite?"))

			wf, err := weekfile.Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, wf.Employee.Name)
		})
	}
}

// --- fill ---

func TestFillCmd_RunsFormWithPrefilledWeek(t *testing.T) {
	app := testApp(t)
	var got *formModel
	app.RunProgram = func(_ context.Context, m tea.Model, _ io.Reader, _ io.Writer) error {
		got = m.(*formModel)
		return nil
	}

	_, err := executeCmd(t, app, "fill", writeWeekFile(t, completeWeek), "--format", "csv")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "Jane Doe", got.session.Form().EmployeeName)
	assert.Equal(t, 450+435, got.session.Summary().TotalMinutes)
	assert.Equal(t, "09:00", got.fields[dayFieldIndex(domain.Monday, fieldStart)].input.Value())
	assert.Equal(t, "45", got.fields[dayFieldIndex(domain.Tuesday, fieldBreak)].input.Value())
}

func TestRootCmd_InteractiveOpensForm(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	errRun := errors.New("program exited")
	app.RunProgram = func(context.Context, tea.Model, io.Reader, io.Writer) error { return errRun }

	_, err := executeCmd(t, app)
	assert.ErrorIs(t, err, errRun)
}
