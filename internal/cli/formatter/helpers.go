package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/timesheet/internal/report"
	"github.com/alexanderramin/timesheet/internal/timecalc"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Hours renders an optional minute count as "H:MM", or the report
// placeholder when unset.
func Hours(minutes *int) string {
	if minutes == nil {
		return report.Placeholder
	}
	return timecalc.FormatMinutes(*minutes)
}

// OrPlaceholder returns s, or the report placeholder when s is empty.
func OrPlaceholder(s string) string {
	if s == "" {
		return report.Placeholder
	}
	return s
}

// OvertimeLabel renders the overtime value, highlighted when positive.
func OvertimeLabel(overtimeMinutes int) string {
	text := timecalc.FormatMinutes(overtimeMinutes)
	if overtimeMinutes > 0 {
		return StyleYellow.Bold(true).Render("+" + text)
	}
	return StyleDim.Render(text)
}

// KeyValue renders an aligned "label  value" line.
func KeyValue(label string, width int, value string) string {
	pad := width - lipgloss.Width(label)
	if pad < 0 {
		pad = 0
	}
	return fmt.Sprintf("%s%s  %s", Dim(label), strings.Repeat(" ", pad), value)
}
