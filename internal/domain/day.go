package domain

import "strings"

// Weekday indexes the five working days of a form, Monday first.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// DaysPerWeek is the fixed number of day entries on a form.
const DaysPerWeek = 5

var weekdayLabels = [DaysPerWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Label returns the weekday name, or "" when out of range.
func (d Weekday) Label() string {
	if !d.Valid() {
		return ""
	}
	return weekdayLabels[d]
}

// Valid reports whether d indexes one of the five form days.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Friday
}

// ParseWeekday accepts full names and three-letter abbreviations, case-insensitive.
func ParseWeekday(s string) (Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return 0, false
	}
	for i, label := range weekdayLabels {
		l := strings.ToLower(label)
		if s == l || s == l[:3] {
			return Weekday(i), true
		}
	}
	return 0, false
}

// DayEntry holds the raw and derived time values of one weekday.
//
// Start and End are free-form clock-time text; empty means absent.
// DailyMinutes is nil while either time is absent, which is distinct from a
// zero-minute day.
type DayEntry struct {
	Day          Weekday
	Start        string
	End          string
	BreakMinutes int

	DailyMinutes *int
	Error        EntryError
}

// Label returns the weekday name of the entry.
func (e DayEntry) Label() string {
	return e.Day.Label()
}

// HasTimes reports whether both start and end time are present.
func (e DayEntry) HasTimes() bool {
	return e.Start != "" && e.End != ""
}

// HasWorkingTime reports whether the entry carries a set, non-zero duration.
func (e DayEntry) HasWorkingTime() bool {
	return e.DailyMinutes != nil && *e.DailyMinutes != 0
}
