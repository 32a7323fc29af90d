package weekfile

import (
	"strings"

	"github.com/alexanderramin/timesheet/internal/domain"
)

// ToForm converts a validated week file into raw form values. Days missing
// from the file stay empty, and a missing break takes defaultBreak.
// Derived values are left for the form session to compute.
func ToForm(wf *WeekFile, defaultBreak int) domain.Form {
	f := domain.NewForm(defaultBreak)
	f.EmployeeName = wf.Employee.Name
	f.CalendarWeek = wf.Employee.CalendarWeek
	f.CostCenter = wf.Employee.CostCenter

	for _, d := range wf.Days {
		day, ok := domain.ParseWeekday(d.Day)
		if !ok {
			continue
		}
		f.Days[day].Start = strings.TrimSpace(d.Start)
		f.Days[day].End = strings.TrimSpace(d.End)
		f.Days[day].BreakMinutes = domain.IntFromPtrWithDefault(defaultBreak, d.Break)
	}
	return f
}

// FromForm converts form values back into a week file listing all five days.
func FromForm(f domain.Form) *WeekFile {
	wf := &WeekFile{
		Employee: EmployeeFile{
			Name:         f.EmployeeName,
			CalendarWeek: f.CalendarWeek,
			CostCenter:   f.CostCenter,
		},
		Days: make([]DayFile, 0, len(f.Days)),
	}
	for _, d := range f.Days {
		wf.Days = append(wf.Days, DayFile{
			Day:   strings.ToLower(d.Label()),
			Start: d.Start,
			End:   d.End,
			Break: domain.IntPtr(d.BreakMinutes),
		})
	}
	return wf
}
