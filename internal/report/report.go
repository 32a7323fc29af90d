// Package report turns a validated timesheet form into a printable document
// and renders it as PDF or CSV.
package report

import (
	"fmt"
	"regexp"
	"time"

	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/timecalc"
)

// Placeholder fills cells whose value is absent.
const Placeholder = "-"

// Row is one weekday line of the report table.
type Row struct {
	Day   string
	Start string
	End   string
	Break string
	Hours string
}

// Document carries everything a renderer needs; renderers never compute.
type Document struct {
	ID           string
	EmployeeName string
	CalendarWeek string
	CostCenter   string
	GeneratedAt  time.Time

	Rows []Row

	TotalHours     string
	ThresholdHours string
	OvertimeHours  string
	HasOvertime    bool
}

// Build assembles the document for form using the precomputed summary.
func Build(form domain.Form, summary domain.WeekSummary, now time.Time, id string) Document {
	rows := make([]Row, 0, len(form.Days))
	for _, d := range form.Days {
		hours := Placeholder
		if d.DailyMinutes != nil {
			hours = timecalc.FormatMinutes(*d.DailyMinutes)
		}
		rows = append(rows, Row{
			Day:   d.Label(),
			Start: orPlaceholder(d.Start),
			End:   orPlaceholder(d.End),
			Break: fmt.Sprintf("%d min", d.BreakMinutes),
			Hours: hours,
		})
	}

	return Document{
		ID:             id,
		EmployeeName:   form.EmployeeName,
		CalendarWeek:   form.CalendarWeek,
		CostCenter:     form.CostCenter,
		GeneratedAt:    now,
		Rows:           rows,
		TotalHours:     timecalc.FormatMinutes(summary.TotalMinutes),
		ThresholdHours: timecalc.FormatMinutes(summary.ThresholdMinutes),
		OvertimeHours:  timecalc.FormatMinutes(summary.OvertimeMinutes),
		HasOvertime:    summary.HasOvertime(),
	}
}

var separatorRun = regexp.MustCompile(`[\s/\\]+`)

// Filename returns "Timesheet_<name>_<week>.<ext>" with whitespace and path
// separator runs replaced by underscores.
func Filename(doc Document, ext string) string {
	name := separatorRun.ReplaceAllString(doc.EmployeeName, "_")
	week := separatorRun.ReplaceAllString(doc.CalendarWeek, "_")
	return fmt.Sprintf("Timesheet_%s_%s.%s", name, week, ext)
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
