package domain

// WeekRules holds the tunable constants of a timesheet week.
type WeekRules struct {
	ThresholdMinutes    int
	DefaultBreakMinutes int
}

const (
	// DefaultThresholdMinutes is the weekly target of 40 hours.
	DefaultThresholdMinutes = 2400
	// DefaultBreakMinutes is the break each day starts with and is reset to.
	DefaultBreakMinutes = 30
)

// DefaultWeekRules returns the 40-hour week with 30-minute breaks.
func DefaultWeekRules() WeekRules {
	return WeekRules{
		ThresholdMinutes:    DefaultThresholdMinutes,
		DefaultBreakMinutes: DefaultBreakMinutes,
	}
}

// RequiredField is a named top-level form value that must not be blank.
type RequiredField struct {
	Key   FieldKey
	Label string
	Value string
}

// Form is the complete state of one weekly timesheet.
type Form struct {
	EmployeeName string
	CalendarWeek string
	CostCenter   string
	Days         [DaysPerWeek]DayEntry
}

// NewForm returns an empty form whose days carry the given default break.
func NewForm(defaultBreak int) Form {
	var f Form
	for i := range f.Days {
		f.Days[i] = DayEntry{Day: Weekday(i), BreakMinutes: defaultBreak}
	}
	return f
}

// Field returns the value of a required field.
func (f *Form) Field(key FieldKey) string {
	switch key {
	case FieldEmployeeName:
		return f.EmployeeName
	case FieldCalendarWeek:
		return f.CalendarWeek
	case FieldCostCenter:
		return f.CostCenter
	default:
		return ""
	}
}

// SetField assigns a required field; unknown keys are ignored.
func (f *Form) SetField(key FieldKey, value string) {
	switch key {
	case FieldEmployeeName:
		f.EmployeeName = value
	case FieldCalendarWeek:
		f.CalendarWeek = value
	case FieldCostCenter:
		f.CostCenter = value
	}
}

// RequiredFields lists the required fields in declaration order.
func (f *Form) RequiredFields() []RequiredField {
	fields := make([]RequiredField, 0, len(RequiredFieldKeys))
	for _, k := range RequiredFieldKeys {
		fields = append(fields, RequiredField{Key: k, Label: k.Label(), Value: f.Field(k)})
	}
	return fields
}

// DailyMinutes returns the derived minutes of each day, nil for unset days.
func (f *Form) DailyMinutes() []*int {
	out := make([]*int, len(f.Days))
	for i := range f.Days {
		out[i] = f.Days[i].DailyMinutes
	}
	return out
}

// Clone returns a deep copy that shares no pointers with f.
func (f Form) Clone() Form {
	c := f
	for i := range c.Days {
		if c.Days[i].DailyMinutes != nil {
			c.Days[i].DailyMinutes = IntPtr(*c.Days[i].DailyMinutes)
		}
	}
	return c
}

// WeekSummary aggregates the daily minutes of a form.
type WeekSummary struct {
	TotalMinutes     int
	OvertimeMinutes  int
	ThresholdMinutes int
}

// HasOvertime reports whether the total exceeds the threshold.
func (s WeekSummary) HasOvertime() bool {
	return s.OvertimeMinutes > 0
}
