package service

import (
	"testing"

	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRegularWeek(s *FormSession) {
	for d := domain.Monday; d <= domain.Friday; d++ {
		s.SetStart(d, "09:00")
		s.SetEnd(d, "17:00")
	}
}

func TestFormSession_StartsEmptyWithDefaultBreak(t *testing.T) {
	s := NewFormSession(domain.DefaultWeekRules())

	for _, d := range s.Form().Days {
		assert.Equal(t, 30, d.BreakMinutes)
		assert.Nil(t, d.DailyMinutes)
	}
	assert.Equal(t, 0, s.Summary().TotalMinutes)
	assert.Equal(t, 2400, s.Summary().ThresholdMinutes)
}

func TestFormSession_RecomputesOnEveryMutation(t *testing.T) {
	s := NewFormSession(domain.DefaultWeekRules())

	s.SetStart(domain.Monday, "09:00")
	assert.Nil(t, s.Day(domain.Monday).DailyMinutes, "end still missing")
	assert.Equal(t, 0, s.Summary().TotalMinutes)

	s.SetEnd(domain.Monday, "17:00")
	require.NotNil(t, s.Day(domain.Monday).DailyMinutes)
	assert.Equal(t, 450, *s.Day(domain.Monday).DailyMinutes)
	assert.Equal(t, 450, s.Summary().TotalMinutes)

	s.SetBreak(domain.Monday, 60)
	assert.Equal(t, 420, s.Summary().TotalMinutes)
}

func TestFormSession_InvalidDayContributesZero(t *testing.T) {
	s := NewFormSession(domain.DefaultWeekRules())
	s.SetStart(domain.Monday, "09:00")
	s.SetEnd(domain.Monday, "17:00")

	s.SetStart(domain.Tuesday, "10:00")
	kind := s.SetEnd(domain.Tuesday, "09:00")

	assert.Equal(t, domain.EntryEndNotAfterStart, kind)
	assert.Equal(t, domain.EntryEndNotAfterStart, s.Day(domain.Tuesday).Error)
	assert.Equal(t, 0, *s.Day(domain.Tuesday).DailyMinutes)
	assert.Equal(t, 450, s.Summary().TotalMinutes)

	kind = s.SetEnd(domain.Tuesday, "10:10")
	assert.Equal(t, domain.EntryBreakExceedsSpan, kind)

	kind = s.SetBreakText(domain.Tuesday, "5")
	assert.Equal(t, domain.EntryOK, kind)
	assert.Equal(t, 455, s.Summary().TotalMinutes)
}

func TestFormSession_OvertimeAcrossWeek(t *testing.T) {
	s := NewFormSession(domain.DefaultWeekRules())
	for d := domain.Monday; d <= domain.Friday; d++ {
		s.SetStart(d, "08:00")
		s.SetEnd(d, "16:50")
	}

	assert.Equal(t, 2500, s.Summary().TotalMinutes)
	assert.Equal(t, 100, s.Summary().OvertimeMinutes)
}

func TestFormSession_NegativeAndNonNumericBreaks(t *testing.T) {
	s := NewFormSession(domain.DefaultWeekRules())
	s.SetBreak(domain.Monday, -20)
	assert.Equal(t, 0, s.Day(domain.Monday).BreakMinutes)

	s.SetBreakText(domain.Monday, "abc")
	assert.Equal(t, 0, s.Day(domain.Monday).BreakMinutes)
}

func TestFormSession_OutOfRangeDayIsIgnored(t *testing.T) {
	s := NewFormSession(domain.DefaultWeekRules())
	assert.Equal(t, domain.EntryOK, s.SetStart(domain.Weekday(9), "09:00"))
	assert.Equal(t, domain.EntryOK, s.BlurDay(domain.Weekday(-1)))
}

func TestFormSession_BlurDayChecksOrderingOnly(t *testing.T) {
	s := NewFormSession(domain.DefaultWeekRules())
	s.SetStart(domain.Monday, "09:00")
	s.SetEnd(domain.Monday, "09:20")

	assert.Equal(t, domain.EntryBreakExceedsSpan, s.Day(domain.Monday).Error)
	assert.Equal(t, domain.EntryOK, s.BlurDay(domain.Monday))

	s.SetEnd(domain.Monday, "08:00")
	assert.Equal(t, domain.EntryEndNotAfterStart, s.BlurDay(domain.Monday))
}

func TestFormSession_ValidateRequiresFieldsAndHours(t *testing.T) {
	s := NewFormSession(domain.DefaultWeekRules())

	result := s.Validate()
	assert.False(t, result.IsValid)
	assert.Len(t, result.Failures, 4)

	s.SetField(domain.FieldEmployeeName, "Jane Doe")
	s.SetField(domain.FieldCalendarWeek, "KW 42")
	s.SetField(domain.FieldCostCenter, "4711")
	s.SetStart(domain.Friday, "09:00")
	s.SetEnd(domain.Friday, "12:00")

	assert.True(t, s.Validate().IsValid)
}

func TestFormSession_ResetRestoresDefaults(t *testing.T) {
	s := NewFormSession(domain.DefaultWeekRules())
	s.SetField(domain.FieldEmployeeName, "Jane Doe")
	fillRegularWeek(s)
	s.SetBreak(domain.Wednesday, 90)
	s.SetEnd(domain.Thursday, "08:00")

	ok := s.Reset(Confirmed)
	require.True(t, ok)

	f := s.Form()
	assert.Equal(t, "", f.EmployeeName)
	for _, d := range f.Days {
		assert.Equal(t, "", d.Start)
		assert.Equal(t, "", d.End)
		assert.Equal(t, 30, d.BreakMinutes)
		assert.Nil(t, d.DailyMinutes)
		assert.Equal(t, domain.EntryOK, d.Error)
	}
	assert.Equal(t, 0, s.Summary().TotalMinutes)
	assert.Equal(t, 0, s.Summary().OvertimeMinutes)
}

func TestFormSession_ResetRequiresConfirmation(t *testing.T) {
	s := NewFormSession(domain.DefaultWeekRules())
	fillRegularWeek(s)

	assert.False(t, s.Reset(nil))
	assert.False(t, s.Reset(func() bool { return false }))
	assert.Equal(t, 2250, s.Summary().TotalMinutes)
}

func TestFormSession_ResetUsesConfiguredDefaultBreak(t *testing.T) {
	s := NewFormSession(domain.WeekRules{ThresholdMinutes: 2400, DefaultBreakMinutes: 45})
	s.SetBreak(domain.Monday, 0)

	s.Reset(Confirmed)
	assert.Equal(t, 45, s.Day(domain.Monday).BreakMinutes)
}

func TestFormSession_LoadRecomputesDerivedValues(t *testing.T) {
	f := testutil.NewTestForm(testutil.WithRegularWeek())
	f.Days[0].DailyMinutes = domain.IntPtr(9999)

	s := NewFormSession(domain.DefaultWeekRules())
	s.Load(f)

	assert.Equal(t, 450, *s.Day(domain.Monday).DailyMinutes)
	assert.Equal(t, 2250, s.Summary().TotalMinutes)
	assert.Equal(t, "Jane Doe", s.Form().EmployeeName)
}

func TestFormSession_FormReturnsCopy(t *testing.T) {
	s := NewFormSession(domain.DefaultWeekRules())
	fillRegularWeek(s)

	f := s.Form()
	*f.Days[0].DailyMinutes = 1
	f.EmployeeName = "changed"

	assert.Equal(t, 450, *s.Day(domain.Monday).DailyMinutes)
	assert.Equal(t, "", s.Form().EmployeeName)
}
