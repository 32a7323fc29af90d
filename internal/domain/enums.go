package domain

// EntryError classifies a per-day time entry problem. The zero value means
// the entry is fine.
type EntryError string

const (
	EntryOK               EntryError = ""
	EntryEndNotAfterStart EntryError = "END_NOT_AFTER_START"
	EntryBreakExceedsSpan EntryError = "BREAK_EXCEEDS_SPAN"
)

// Message returns the user-facing description of the entry problem.
func (e EntryError) Message() string {
	switch e {
	case EntryEndNotAfterStart:
		return "End time must be after the start time"
	case EntryBreakExceedsSpan:
		return "Break is longer than the working time"
	default:
		return ""
	}
}

// Err maps the kind to its sentinel error, or nil for EntryOK.
func (e EntryError) Err() error {
	switch e {
	case EntryEndNotAfterStart:
		return ErrEndNotAfterStart
	case EntryBreakExceedsSpan:
		return ErrBreakExceedsSpan
	default:
		return nil
	}
}

// FailureKind classifies a form-level validation failure.
type FailureKind string

const (
	FailureRequiredFieldMissing  FailureKind = "REQUIRED_FIELD_MISSING"
	FailureNoWorkingHoursEntered FailureKind = "NO_WORKING_HOURS_ENTERED"
)

// FieldKey identifies one of the required top-level form fields.
type FieldKey string

const (
	FieldEmployeeName FieldKey = "employee_name"
	FieldCalendarWeek FieldKey = "calendar_week"
	FieldCostCenter   FieldKey = "cost_center"
)

// Label returns the display name of the field.
func (k FieldKey) Label() string {
	switch k {
	case FieldEmployeeName:
		return "Employee name"
	case FieldCalendarWeek:
		return "Calendar week"
	case FieldCostCenter:
		return "Cost center"
	default:
		return string(k)
	}
}

// RequiredFieldKeys is the declaration order of the required fields.
var RequiredFieldKeys = []FieldKey{FieldEmployeeName, FieldCalendarWeek, FieldCostCenter}
