package cli

import (
	"strings"

	"github.com/alexanderramin/timesheet/internal/cli/formatter"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/validate"
	"github.com/charmbracelet/lipgloss"
)

var (
	labelColumn = lipgloss.NewStyle().Width(16)
	dayColumn   = lipgloss.NewStyle().Width(11)
	timeColumn  = lipgloss.NewStyle().Width(8)
	breakColumn = lipgloss.NewStyle().Width(6)
	hoursColumn = lipgloss.NewStyle().Width(7).Align(lipgloss.Right)
)

func (m *formModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Timesheet"))
	b.WriteString("\n\n")

	var check domain.ValidationResult
	if m.showValidation {
		check = m.session.Validate()
	}

	for i, f := range m.fields {
		if f.isDay() {
			break
		}
		b.WriteString(m.fieldLabel(i, f.key.Label()))
		b.WriteString(f.input.View())
		if msg := check.FieldMessage(f.key); msg != "" {
			b.WriteString("  " + formatter.StyleRed.Render(msg))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.viewDays())
	if hasFailure(check, domain.FailureNoWorkingHoursEntered) {
		b.WriteString(formatter.StyleRed.Render(validate.NoWorkingHoursMessage))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(formatter.FormatTotals(m.session.Summary()))
	b.WriteString("\n\n")

	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(m.viewHelp())

	return b.String()
}

func hasFailure(check domain.ValidationResult, kind domain.FailureKind) bool {
	for _, f := range check.Failures {
		if f.Kind == kind {
			return true
		}
	}
	return false
}

func (m *formModel) fieldLabel(idx int, label string) string {
	if idx == m.focus {
		return labelColumn.Render(formatter.StyleHeader.Render("› " + label))
	}
	return labelColumn.Render("  " + formatter.Dim(label))
}

func (m *formModel) viewDays() string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(dayColumn.Render(formatter.Dim("Day")))
	b.WriteString(timeColumn.Render(formatter.Dim("Start")))
	b.WriteString(timeColumn.Render(formatter.Dim("End")))
	b.WriteString(breakColumn.Render(formatter.Dim("Break")))
	b.WriteString(hoursColumn.Render(formatter.Dim("Hours")))
	b.WriteString("\n")

	first := len(domain.RequiredFieldKeys)
	for d := domain.Monday; d <= domain.Friday; d++ {
		entry := m.session.Day(d)
		idx := first + int(d)*3

		marker := "  "
		if m.focus >= idx && m.focus < idx+3 {
			marker = formatter.StyleHeader.Render("› ")
		}
		b.WriteString(marker)
		b.WriteString(dayColumn.Render(formatter.EntryStyle(entry.Error).Render(entry.Label())))
		b.WriteString(timeColumn.Render(m.fields[idx].input.View()))
		b.WriteString(timeColumn.Render(m.fields[idx+1].input.View()))
		b.WriteString(breakColumn.Render(m.fields[idx+2].input.View()))
		b.WriteString(hoursColumn.Render(formatter.Hours(entry.DailyMinutes)))
		b.WriteString("  ")
		b.WriteString(formatter.EntryIndicator(entry))
		if entry.Error != domain.EntryOK {
			b.WriteString(" " + formatter.StyleRed.Render(entry.Error.Message()))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *formModel) viewStatus() string {
	switch {
	case m.confirmingReset:
		return formatter.StyleYellow.Render("Clear all times and fields? (y/n)")
	case m.banner.text != "":
		style := formatter.StyleBlue
		switch m.banner.kind {
		case bannerSuccess:
			style = formatter.StyleGreen
		case bannerError:
			style = formatter.StyleRed
		}
		return style.Render(m.banner.text)
	case m.exporting:
		return formatter.Dim("Generating report...")
	}
	return ""
}

func (m *formModel) viewHelp() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return formatter.Dim(strings.Join(parts, " • "))
}
