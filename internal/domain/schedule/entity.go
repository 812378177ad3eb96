package schedule

import "time"

// DefaultTimezone is the business zone recorded when an imported row carries
// no timezone of its own.
const DefaultTimezone = "America/Mexico_City"

// Entry is the theoretical work window for one employee on one weekday
// (0=Sunday .. 6=Saturday). Time fields are local time-of-day strings in
// HH:MM or HH:MM:SS form; nil means the bound is not configured. At most one
// entry exists per (employee, weekday).
type Entry struct {
	EmployeeID string
	Weekday    int
	StartTime  *string
	BreakStart *string
	BreakEnd   *string
	EndTime    *string
	Timezone   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
