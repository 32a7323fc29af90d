package domain

import "errors"

var (
	// ErrEndNotAfterStart indicates a day whose end time is not after its start time.
	ErrEndNotAfterStart = errors.New("end time must be after start time")

	// ErrBreakExceedsSpan indicates a break longer than the start-to-end span.
	ErrBreakExceedsSpan = errors.New("break exceeds working span")

	// ErrRequiredFieldMissing indicates a blank required top-level field.
	ErrRequiredFieldMissing = errors.New("required field missing")

	// ErrNoWorkingHoursEntered indicates that no day carries working time.
	ErrNoWorkingHoursEntered = errors.New("no working hours entered")

	// ErrReportGenerationFailed wraps any failure while rendering or writing a report.
	ErrReportGenerationFailed = errors.New("report generation failed")

	// ErrExportInProgress is returned when an export is requested while another is running.
	ErrExportInProgress = errors.New("export already in progress")
)
