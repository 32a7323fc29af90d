package service

import (
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/timecalc"
	"github.com/alexanderramin/timesheet/internal/validate"
)

// FormSession owns one in-memory timesheet form. Every mutation recomputes
// the affected day and the week summary before returning.
//
// A session is not safe for concurrent use; it belongs to the goroutine
// driving the form.
type FormSession struct {
	rules   domain.WeekRules
	form    domain.Form
	summary domain.WeekSummary
}

func NewFormSession(rules domain.WeekRules) *FormSession {
	s := &FormSession{rules: rules, form: domain.NewForm(rules.DefaultBreakMinutes)}
	s.recomputeSummary()
	return s
}

// Rules returns the week rules the session was created with.
func (s *FormSession) Rules() domain.WeekRules {
	return s.rules
}

// Form returns a copy of the current form state.
func (s *FormSession) Form() domain.Form {
	return s.form.Clone()
}

// Day returns a copy of one day entry.
func (s *FormSession) Day(day domain.Weekday) domain.DayEntry {
	if !day.Valid() {
		return domain.DayEntry{Day: day}
	}
	return s.form.Clone().Days[day]
}

// Summary returns the current weekly totals.
func (s *FormSession) Summary() domain.WeekSummary {
	return s.summary
}

// Load replaces the form with f and recomputes all derived values.
func (s *FormSession) Load(f domain.Form) {
	s.form = f.Clone()
	for i := range s.form.Days {
		s.form.Days[i].Day = domain.Weekday(i)
		s.form.Days[i].BreakMinutes = max(0, s.form.Days[i].BreakMinutes)
		s.recomputeDay(domain.Weekday(i))
	}
	s.recomputeSummary()
}

// SetField assigns a required top-level field.
func (s *FormSession) SetField(key domain.FieldKey, value string) {
	s.form.SetField(key, value)
}

// SetStart updates a day's start time and returns the resulting entry error.
func (s *FormSession) SetStart(day domain.Weekday, text string) domain.EntryError {
	return s.mutate(day, func(e *domain.DayEntry) { e.Start = text })
}

// SetEnd updates a day's end time and returns the resulting entry error.
func (s *FormSession) SetEnd(day domain.Weekday, text string) domain.EntryError {
	return s.mutate(day, func(e *domain.DayEntry) { e.End = text })
}

// SetBreak updates a day's break; negative values are stored as 0.
func (s *FormSession) SetBreak(day domain.Weekday, minutes int) domain.EntryError {
	return s.mutate(day, func(e *domain.DayEntry) { e.BreakMinutes = max(0, minutes) })
}

// SetBreakText parses break field text; text without digits counts as 0.
func (s *FormSession) SetBreakText(day domain.Weekday, text string) domain.EntryError {
	return s.SetBreak(day, timecalc.ParseMinutes(text))
}

// BlurDay runs the lightweight ordering check used when a day's field
// loses focus. It does not change the derived values.
func (s *FormSession) BlurDay(day domain.Weekday) domain.EntryError {
	if !day.Valid() {
		return domain.EntryOK
	}
	return validate.ValidateDayEntry(s.form.Days[day])
}

// Validate checks the whole form for export.
func (s *FormSession) Validate() domain.ValidationResult {
	return validate.ValidateForm(s.form.RequiredFields(), s.form.Days[:])
}

// Reset clears the form when confirm approves. Times and required fields
// are emptied, breaks go back to the default and derived hours and
// errors are cleared. A nil confirm counts as declined.
func (s *FormSession) Reset(confirm Confirmer) bool {
	if confirm == nil || !confirm() {
		return false
	}
	s.form = domain.NewForm(s.rules.DefaultBreakMinutes)
	s.recomputeSummary()
	return true
}

func (s *FormSession) mutate(day domain.Weekday, apply func(*domain.DayEntry)) domain.EntryError {
	if !day.Valid() {
		return domain.EntryOK
	}
	apply(&s.form.Days[day])
	kind := s.recomputeDay(day)
	s.recomputeSummary()
	return kind
}

func (s *FormSession) recomputeDay(day domain.Weekday) domain.EntryError {
	e := &s.form.Days[day]
	e.DailyMinutes, e.Error = timecalc.ComputeDailyMinutes(e.Start, e.End, e.BreakMinutes)
	return e.Error
}

func (s *FormSession) recomputeSummary() {
	s.summary = timecalc.ComputeWeekSummary(s.form.DailyMinutes(), s.rules.ThresholdMinutes)
}
