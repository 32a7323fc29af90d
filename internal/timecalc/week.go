package timecalc

import "github.com/alexanderramin/timesheet/internal/domain"

// ComputeWeekSummary sums the set daily minutes and derives overtime
// against threshold. Unset days contribute nothing.
func ComputeWeekSummary(daily []*int, threshold int) domain.WeekSummary {
	total := 0
	for _, m := range daily {
		if m != nil {
			total += *m
		}
	}
	return domain.WeekSummary{
		TotalMinutes:     total,
		OvertimeMinutes:  max(0, total-threshold),
		ThresholdMinutes: threshold,
	}
}
