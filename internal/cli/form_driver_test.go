package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/service"
	"github.com/alexanderramin/timesheet/internal/teatest"
)

// formDriver wraps teatest.Driver with access to formModel internals.
type formDriver struct {
	*teatest.Driver
}

func newFormDriver(t *testing.T, exporter service.Exporter, opts ...teatest.Option) *formDriver {
	t.Helper()
	m := newFormModel(context.Background(), domain.DefaultWeekRules(), exporter, 5*time.Second)
	d := teatest.New(t, m, append([]teatest.Option{teatest.WithSize(100, 40)}, opts...)...)
	d.DrainInit()
	return &formDriver{Driver: d}
}

func (d *formDriver) model() *formModel {
	return d.Model.(*formModel)
}

// focusOn tabs forward until the field at idx has focus.
func (d *formDriver) focusOn(idx int) {
	d.T.Helper()
	for i := 0; i < len(d.model().fields) && d.model().focus != idx; i++ {
		d.PressTab()
	}
	if d.model().focus != idx {
		d.T.Fatalf("could not focus field %d", idx)
	}
}

func dayFieldIndex(day domain.Weekday, kind fieldKind) int {
	return len(domain.RequiredFieldKeys) + int(day)*3 + int(kind-fieldStart)
}

// fillRequired types the three required fields.
func (d *formDriver) fillRequired(name, week, costCenter string) {
	d.T.Helper()
	for i, v := range []string{name, week, costCenter} {
		d.focusOn(i)
		d.Type(v)
	}
}

// fillDay types start and end for day, keeping the current break.
func (d *formDriver) fillDay(day domain.Weekday, start, end string) {
	d.T.Helper()
	d.focusOn(dayFieldIndex(day, fieldStart))
	d.Type(start)
	d.PressTab()
	d.Type(end)
}

func (d *formDriver) bannerText() string {
	return d.model().banner.text
}
