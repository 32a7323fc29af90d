package timecalc

import "github.com/alexanderramin/timesheet/internal/domain"

// ComputeDailyMinutes derives the worked minutes of one day.
//
// The result is nil while either time is absent. An end at or before the
// start, or a break longer than the span, yields 0 together with the
// matching error kind. A break exactly equal to the span yields 0 without
// an error.
func ComputeDailyMinutes(start, end string, breakMinutes int) (*int, domain.EntryError) {
	if start == "" || end == "" {
		return nil, domain.EntryOK
	}

	s := ParseClockTime(start)
	e := ParseClockTime(end)
	if e <= s {
		return domain.IntPtr(0), domain.EntryEndNotAfterStart
	}

	span := e - s
	if breakMinutes > span {
		return domain.IntPtr(0), domain.EntryBreakExceedsSpan
	}
	return domain.IntPtr(span - breakMinutes), domain.EntryOK
}

// CheckOrder reports EntryEndNotAfterStart when both times are present and
// the end is not after the start. Break duration is not considered.
func CheckOrder(start, end string) domain.EntryError {
	if start == "" || end == "" {
		return domain.EntryOK
	}
	if ParseClockTime(end) <= ParseClockTime(start) {
		return domain.EntryEndNotAfterStart
	}
	return domain.EntryOK
}
