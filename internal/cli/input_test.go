package cli

import (
	"testing"

	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayFlag(t *testing.T) {
	tests := []struct {
		input     string
		wantDay   domain.Weekday
		wantStart string
		wantEnd   string
		wantBreak *int
		wantErr   bool
	}{
		{input: "mon=09:00-17:00/30", wantDay: domain.Monday, wantStart: "09:00", wantEnd: "17:00", wantBreak: domain.IntPtr(30)},
		{input: "Friday=8:00-12:30", wantDay: domain.Friday, wantStart: "8:00", wantEnd: "12:30"},
		{input: "wed= 09:00 - 10:00 /0", wantDay: domain.Wednesday, wantStart: "09:00", wantEnd: "10:00", wantBreak: domain.IntPtr(0)},
		{input: "tue=-17:00", wantDay: domain.Tuesday, wantEnd: "17:00"},
		{input: "mon", wantErr: true},
		{input: "sun=09:00-17:00", wantErr: true},
		{input: "mon=09:00", wantErr: true},
		{input: "mon=09:00-17:00/abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDayFlag(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDay, got.day)
			assert.Equal(t, tt.wantStart, got.start)
			assert.Equal(t, tt.wantEnd, got.end)
			assert.Equal(t, tt.wantBreak, got.breakMinutes)
		})
	}
}

func TestResolveForm_FlagsOverrideDefaults(t *testing.T) {
	form, err := resolveForm("", formFlags{
		name: "Jane Doe",
		days: []string{"mon=09:00-17:00", "mon=10:00-18:00/15", "thu=07:00-15:00/0"},
	}, 30)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", form.EmployeeName)
	assert.Empty(t, form.CalendarWeek)
	assert.Equal(t, "10:00", form.Days[domain.Monday].Start)
	assert.Equal(t, 15, form.Days[domain.Monday].BreakMinutes)
	assert.Equal(t, 0, form.Days[domain.Thursday].BreakMinutes)
	assert.Equal(t, 30, form.Days[domain.Friday].BreakMinutes)
}

func TestResolveForm_CollectsAllDayErrors(t *testing.T) {
	_, err := resolveForm("", formFlags{days: []string{"sat=1-2", "mon"}}, 30)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sat=1-2")
	assert.Contains(t, err.Error(), `"mon"`)
}
