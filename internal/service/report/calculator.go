package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/chronotec/timeclock-backend-go/internal/domain/report"
	"github.com/chronotec/timeclock-backend-go/internal/domain/schedule"
)

// timeToMinutes parses a HH:MM or HH:MM:SS local time-of-day string into
// minutes since midnight. Seconds are ignored. Returns nil for missing or
// malformed values; callers treat that as "no data".
func timeToMinutes(t *string) *int {
	if t == nil || *t == "" {
		return nil
	}
	parts := strings.Split(*t, ":")
	if len(parts) < 2 {
		return nil
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return nil
	}
	v := h*60 + m
	return &v
}

// theoreticalHours computes the expected hours of a schedule entry. A shift
// whose end precedes its start wraps past midnight, and so does the break.
// Malformed data that still ends up negative yields zero hours, a documented
// leniency rather than an error.
func theoreticalHours(e *schedule.Entry) float64 {
	if e == nil {
		return 0
	}
	start := timeToMinutes(e.StartTime)
	end := timeToMinutes(e.EndTime)
	if start == nil || end == nil {
		return 0
	}

	mins := *end - *start
	if mins < 0 {
		mins += 24 * 60
	}

	bs := timeToMinutes(e.BreakStart)
	be := timeToMinutes(e.BreakEnd)
	if bs != nil && be != nil {
		rest := *be - *bs
		if rest < 0 {
			rest += 24 * 60
		}
		mins -= rest
	}

	if mins < 0 {
		mins = 0
	}
	return float64(mins) / 60
}

// workedHours computes the observed hours of a row from its effective
// instants. The primary span counts only when end_day is after start_day,
// and the break is subtracted only when it is itself ordered; anything else
// contributes zero, never a negative duration.
func workedHours(row *report.AttendanceRow) float64 {
	var total time.Duration
	if row.StartDay != nil && row.EndDay != nil && row.EndDay.After(*row.StartDay) {
		total = row.EndDay.Sub(*row.StartDay)
		if row.StartBreak != nil && row.EndBreak != nil && row.EndBreak.After(*row.StartBreak) {
			total -= row.EndBreak.Sub(*row.StartBreak)
		}
	}
	return total.Seconds() / 3600
}
