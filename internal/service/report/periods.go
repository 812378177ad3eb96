package report

import (
	"fmt"
	"time"

	"github.com/chronotec/timeclock-backend-go/internal/domain/report"
)

// periodKey buckets a YYYY-MM-DD day under the requested granularity:
//
//	month     -> YYYY-MM
//	fortnight -> YYYY-MM-Q1 (days 1-15) or YYYY-MM-Q2 (day 16 onward)
//	week      -> YYYY-Www, Monday-start weeks counted from the week
//	             containing January 1st of the day's own year
//
// The week key is an approximation good enough for payroll grouping; it is
// NOT ISO-8601 week numbering and must not be exchanged with systems that
// expect it.
func periodKey(day, granularity string) string {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		return day
	}

	switch granularity {
	case report.GranularityMonth:
		return d.Format("2006-01")
	case report.GranularityFortnight:
		if d.Day() <= 15 {
			return d.Format("2006-01") + "-Q1"
		}
		return d.Format("2006-01") + "-Q2"
	case report.GranularityWeek:
		jan1 := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		anchor := startOfWeekMonday(jan1)
		week := int(d.Sub(anchor).Hours()/24)/7 + 1
		return fmt.Sprintf("%04d-W%02d", d.Year(), week)
	default:
		return day
	}
}

// startOfWeekMonday returns the Monday on or before d.
func startOfWeekMonday(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// CurrentWeekRange returns the Monday-to-Sunday range containing now,
// formatted as YYYY-MM-DD. It backs the report's default period.
func CurrentWeekRange(now time.Time) (string, string) {
	monday := startOfWeekMonday(now)
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format("2006-01-02"), sunday.Format("2006-01-02")
}
