package testutil

import (
	"time"

	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/timecalc"
)

// FixedTime is the reference instant used by fixture clocks.
var FixedTime = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

// Form options
type FormOption func(*domain.Form)

func WithEmployee(name, week, costCenter string) FormOption {
	return func(f *domain.Form) {
		f.EmployeeName = name
		f.CalendarWeek = week
		f.CostCenter = costCenter
	}
}

func WithDay(day domain.Weekday, start, end string, breakMinutes int) FormOption {
	return func(f *domain.Form) {
		f.Days[day].Start = start
		f.Days[day].End = end
		f.Days[day].BreakMinutes = breakMinutes
	}
}

// WithRegularWeek fills every day with 09:00-17:00 and a 30-minute break,
// 37:30 in total.
func WithRegularWeek() FormOption {
	return func(f *domain.Form) {
		for i := range f.Days {
			WithDay(domain.Weekday(i), "09:00", "17:00", 30)(f)
		}
	}
}

// NewTestForm builds a form with derived daily values already computed.
// Without options the required fields are filled and no day has times.
func NewTestForm(opts ...FormOption) domain.Form {
	f := domain.NewForm(domain.DefaultBreakMinutes)
	WithEmployee("Jane Doe", "KW 42", "4711")(&f)
	for _, opt := range opts {
		opt(&f)
	}
	for i := range f.Days {
		d := &f.Days[i]
		d.DailyMinutes, d.Error = timecalc.ComputeDailyMinutes(d.Start, d.End, d.BreakMinutes)
	}
	return f
}
