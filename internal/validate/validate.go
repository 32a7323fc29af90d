// Package validate checks timesheet entries before they are accepted for
// export. Checks are read-only and can be repeated freely.
package validate

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/timecalc"
)

// NoWorkingHoursMessage is the aggregate failure shown when no day has time.
const NoWorkingHoursMessage = "Please enter working hours for at least one day."

// ValidateDayEntry reruns the time-ordering check of a single day for
// immediate feedback. A break longer than the span is not reported here.
func ValidateDayEntry(entry domain.DayEntry) domain.EntryError {
	return timecalc.CheckOrder(entry.Start, entry.End)
}

// DayMessage formats a per-day problem for the banner, e.g.
// "Monday: End time must be after the start time".
func DayMessage(entry domain.DayEntry, kind domain.EntryError) string {
	if kind == domain.EntryOK {
		return ""
	}
	return fmt.Sprintf("%s: %s", entry.Label(), kind.Message())
}

// ValidateForm checks required fields and that at least one day carries
// working time. Required-field failures come first, in field order,
// followed by the aggregate hours failure.
func ValidateForm(fields []domain.RequiredField, days []domain.DayEntry) domain.ValidationResult {
	var failures []domain.Failure

	failures = append(failures, validateRequired(fields)...)
	if f, ok := validateWorkingHours(days); !ok {
		failures = append(failures, f)
	}

	messages := make([]string, 0, len(failures))
	for _, f := range failures {
		messages = append(messages, f.Message)
	}

	return domain.ValidationResult{
		IsValid:  len(failures) == 0,
		Messages: messages,
		Failures: failures,
	}
}

func validateRequired(fields []domain.RequiredField) []domain.Failure {
	var failures []domain.Failure
	for _, f := range fields {
		if strings.TrimSpace(f.Value) != "" {
			continue
		}
		label := f.Label
		if label == "" {
			label = f.Key.Label()
		}
		failures = append(failures, domain.Failure{
			Kind:    domain.FailureRequiredFieldMissing,
			Field:   f.Key,
			Message: fmt.Sprintf("%s: This field is required", label),
		})
	}
	return failures
}

func validateWorkingHours(days []domain.DayEntry) (domain.Failure, bool) {
	for _, d := range days {
		if d.HasWorkingTime() {
			return domain.Failure{}, true
		}
	}
	return domain.Failure{
		Kind:    domain.FailureNoWorkingHoursEntered,
		Message: NoWorkingHoursMessage,
	}, false
}
