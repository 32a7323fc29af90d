package weekfile

import (
	"fmt"
	"regexp"

	"github.com/alexanderramin/timesheet/internal/domain"
)

var clockTimePattern = regexp.MustCompile(`^\d{1,3}(:\d{0,2})?$`)

// Validate checks wf for errors before conversion and returns all of them.
// Required employee fields are not checked here; that is the form
// validator's job so that incomplete files can still be summarized.
func Validate(wf *WeekFile) []error {
	var errs []error
	seen := make(map[domain.Weekday]bool)

	for i, d := range wf.Days {
		prefix := fmt.Sprintf("days[%d]", i)

		if d.Day == "" {
			errs = append(errs, fmt.Errorf("%s.day is required", prefix))
		} else if day, ok := domain.ParseWeekday(d.Day); !ok {
			errs = append(errs, fmt.Errorf("%s.day: invalid value %q (expected monday..friday)", prefix, d.Day))
		} else if seen[day] {
			errs = append(errs, fmt.Errorf("%s.day: duplicate day %q", prefix, d.Day))
		} else {
			seen[day] = true
		}

		errs = append(errs, validateClockTime(prefix+".start", d.Start)...)
		errs = append(errs, validateClockTime(prefix+".end", d.End)...)

		if d.Break != nil && *d.Break < 0 {
			errs = append(errs, fmt.Errorf("%s.break must not be negative", prefix))
		}
	}

	return errs
}

func validateClockTime(field, value string) []error {
	if value == "" || clockTimePattern.MatchString(value) {
		return nil
	}
	return []error{fmt.Errorf("%s: invalid clock time %q (expected H:MM)", field, value)}
}
