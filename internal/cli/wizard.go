package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/timesheet/internal/cli/formatter"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// timesheetHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func timesheetHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// requiredFieldValidator rejects blank input for a required form field.
func requiredFieldValidator(key domain.FieldKey) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s: This field is required", key.Label())
		}
		return nil
	}
}

// wizardEmployee creates a huh form asking for the three required fields.
// Values already present are shown as the starting input.
func wizardEmployee(name, week, costCenter *string) *huh.Form {
	input := func(key domain.FieldKey, placeholder string, value *string) *huh.Input {
		return huh.NewInput().
			Title(key.Label()).
			Placeholder(placeholder).
			Value(value).
			Validate(requiredFieldValidator(key))
	}

	return huh.NewForm(
		huh.NewGroup(
			input(domain.FieldEmployeeName, "Jane Doe", name),
			input(domain.FieldCalendarWeek, "KW 42", week),
			input(domain.FieldCostCenter, "4711", costCenter),
		),
	).WithTheme(timesheetHuhTheme()).WithShowHelp(false)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(timesheetHuhTheme()).WithShowHelp(false)
}
