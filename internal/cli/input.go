package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/weekfile"
	"github.com/spf13/pflag"
)

// formFlags are the flags shared by every command that reads a week.
type formFlags struct {
	name       string
	week       string
	costCenter string
	days       []string
}

func addFormFlags(fs *pflag.FlagSet, f *formFlags) {
	fs.StringVar(&f.name, "name", "", "Employee name (overrides the week file)")
	fs.StringVar(&f.week, "week", "", "Calendar week (overrides the week file)")
	fs.StringVar(&f.costCenter, "cost-center", "", "Cost center (overrides the week file)")
	fs.StringArrayVar(&f.days, "day", nil, "Day entry as DAY=START-END[/BREAK], e.g. mon=09:00-17:00/30 (repeatable)")
}

// dayFlag is one parsed --day value.
type dayFlag struct {
	day          domain.Weekday
	start        string
	end          string
	breakMinutes *int
}

// parseDayFlag parses "mon=09:00-17:00/30". The break part is optional.
func parseDayFlag(value string) (dayFlag, error) {
	dayPart, span, ok := strings.Cut(value, "=")
	if !ok {
		return dayFlag{}, fmt.Errorf("--day %q: expected DAY=START-END[/BREAK]", value)
	}
	day, ok := domain.ParseWeekday(dayPart)
	if !ok {
		return dayFlag{}, fmt.Errorf("--day %q: unknown weekday %q", value, dayPart)
	}

	span, breakPart, hasBreak := strings.Cut(span, "/")
	start, end, ok := strings.Cut(span, "-")
	if !ok {
		return dayFlag{}, fmt.Errorf("--day %q: expected START-END", value)
	}

	d := dayFlag{day: day, start: strings.TrimSpace(start), end: strings.TrimSpace(end)}
	if hasBreak {
		minutes, err := strconv.Atoi(strings.TrimSpace(breakPart))
		if err != nil || minutes < 0 {
			return dayFlag{}, fmt.Errorf("--day %q: break must be a non-negative number of minutes", value)
		}
		d.breakMinutes = &minutes
	}
	return d, nil
}

// resolveForm builds the raw form for a command: the week file at path
// (optional) first, then flag overrides.
func resolveForm(path string, flags formFlags, defaultBreak int) (domain.Form, error) {
	form := domain.NewForm(defaultBreak)

	if path != "" {
		wf, err := weekfile.Load(path)
		if err != nil {
			return domain.Form{}, fmt.Errorf("reading week file: %w", err)
		}
		if errs := weekfile.Validate(wf); len(errs) > 0 {
			return domain.Form{}, fmt.Errorf("invalid week file %s: %w", path, errors.Join(errs...))
		}
		form = weekfile.ToForm(wf, defaultBreak)
	}

	if flags.name != "" {
		form.SetField(domain.FieldEmployeeName, flags.name)
	}
	if flags.week != "" {
		form.SetField(domain.FieldCalendarWeek, flags.week)
	}
	if flags.costCenter != "" {
		form.SetField(domain.FieldCostCenter, flags.costCenter)
	}

	var errs []error
	for _, raw := range flags.days {
		d, err := parseDayFlag(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		entry := &form.Days[d.day]
		entry.Start = d.start
		entry.End = d.end
		entry.BreakMinutes = domain.IntFromPtrWithDefault(entry.BreakMinutes, d.breakMinutes)
	}
	if len(errs) > 0 {
		return domain.Form{}, errors.Join(errs...)
	}
	return form, nil
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
