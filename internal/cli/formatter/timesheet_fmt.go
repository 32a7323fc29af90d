package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/timesheet/internal/domain"
)

const progressWidth = 24

// FormatWeek renders the day table, weekly totals and any per-day errors.
func FormatWeek(form domain.Form, summary domain.WeekSummary) string {
	var b strings.Builder

	b.WriteString(Header("Timesheet"))
	b.WriteString("\n")
	b.WriteString(FormatEmployee(form))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(form.Days))
	var dayErrors []string
	for _, d := range form.Days {
		style := EntryStyle(d.Error)
		rows = append(rows, []string{
			EntryIndicator(d),
			style.Render(d.Label()),
			OrPlaceholder(d.Start),
			OrPlaceholder(d.End),
			fmt.Sprintf("%d min", d.BreakMinutes),
			style.Render(Hours(d.DailyMinutes)),
		})
		if d.Error != domain.EntryOK {
			dayErrors = append(dayErrors, fmt.Sprintf("%s: %s", d.Label(), d.Error.Message()))
		}
	}

	table := Table{
		Headers:    []string{"", "Day", "Start", "End", "Break", "Hours"},
		Rows:       rows,
		Footer:     []string{"", Bold("Total"), "", "", "", Bold(Hours(&summary.TotalMinutes))},
		RightAlign: []bool{false, false, true, true, true, true},
	}
	b.WriteString(table.Render())
	b.WriteString("\n")
	b.WriteString(FormatTotals(summary))

	if len(dayErrors) > 0 {
		b.WriteString("\n\n")
		for _, msg := range dayErrors {
			b.WriteString(StyleRed.Render("  ✖ " + msg))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatEmployee renders the three required fields as aligned lines.
func FormatEmployee(form domain.Form) string {
	width := 0
	for _, key := range domain.RequiredFieldKeys {
		width = max(width, len(key.Label()))
	}
	lines := make([]string, 0, len(domain.RequiredFieldKeys))
	for _, f := range form.RequiredFields() {
		lines = append(lines, KeyValue(f.Label, width, OrPlaceholder(f.Value)))
	}
	return strings.Join(lines, "\n")
}

// FormatTotals renders total, target, overtime and a progress bar toward
// the weekly target.
func FormatTotals(summary domain.WeekSummary) string {
	const width = len("Overtime")
	lines := []string{
		KeyValue("Total", width, Bold(Hours(&summary.TotalMinutes))),
		KeyValue("Target", width, Hours(&summary.ThresholdMinutes)),
		KeyValue("Overtime", width, OvertimeLabel(summary.OvertimeMinutes)),
		KeyValue("", width, RenderProgress(TargetShare(summary.TotalMinutes, summary.ThresholdMinutes), progressWidth)),
	}
	return strings.Join(lines, "\n")
}

// FormatValidation renders a validation outcome as a list of messages.
func FormatValidation(result domain.ValidationResult) string {
	if result.IsValid {
		return StyleGreen.Render("✔ Timesheet is complete and ready for export.")
	}
	var b strings.Builder
	b.WriteString(StyleRed.Render("✖ Timesheet is incomplete:"))
	for _, msg := range result.Messages {
		b.WriteString("\n  • ")
		b.WriteString(msg)
	}
	return b.String()
}

// FormatExported renders the confirmation printed after a report was written.
func FormatExported(path string, bytes int, overtime bool) string {
	line := fmt.Sprintf("%s %s %s", StyleGreen.Render("✔ Report written:"), path, Dim(fmt.Sprintf("(%d bytes)", bytes)))
	if overtime {
		line += "\n" + StyleYellow.Render("  Overtime recorded this week.")
	}
	return line
}
