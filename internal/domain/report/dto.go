package report

import (
	"time"

	"github.com/chronotec/timeclock-backend-go/internal/pkg/validator"
)

// Roll-up granularities for the per-period totals.
const (
	GranularityWeek      = "week"
	GranularityMonth     = "month"
	GranularityFortnight = "fortnight"
)

var Granularities = []string{GranularityWeek, GranularityMonth, GranularityFortnight}

// ========================================
// ATTENDANCE REPORT DTOs
// ========================================

type AttendanceReportRequest struct {
	From        string // YYYY-MM-DD, inclusive
	To          string // YYYY-MM-DD, inclusive
	Granularity string
	EmailFilter string // optional case-insensitive substring on the display email
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	from, okFrom := validator.IsValidDate(r.From)
	if !okFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be a YYYY-MM-DD date",
		})
	}

	to, okTo := validator.IsValidDate(r.To)
	if !okTo {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be a YYYY-MM-DD date",
		})
	}

	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	if !validator.IsInSlice(r.Granularity, Granularities) {
		errs = append(errs, validator.ValidationError{
			Field:   "granularity",
			Message: "granularity must be week, month or fortnight",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Window is the resolved theoretical schedule attached to a row, echoed so
// the rendered range and the computed theoretical hours always agree.
type Window struct {
	StartTime  *string `json:"start_time"`
	BreakStart *string `json:"break_start"`
	BreakEnd   *string `json:"break_end"`
	EndTime    *string `json:"end_time"`
	Timezone   string  `json:"timezone"`
}

// AttendanceRow is one (employee, day) line of the report. The four instant
// fields already reflect approved justification overrides. Rows are derived
// per request and never persisted.
type AttendanceRow struct {
	EmployeeID string `json:"employee_id"`
	Email      string `json:"email"`
	Day        string `json:"day"`

	StartDay   *time.Time `json:"start_day,omitempty"`
	StartBreak *time.Time `json:"start_break,omitempty"`
	EndBreak   *time.Time `json:"end_break,omitempty"`
	EndDay     *time.Time `json:"end_day,omitempty"`

	Schedule *Window `json:"schedule,omitempty"`

	HoursWorked float64 `json:"hours_worked"`
	TheoHours   float64 `json:"theo_hours"`
	DiffHours   float64 `json:"diff_hours"`
}

// EmployeeSummary totals the three metrics across the filtered rows of one
// employee for the whole period.
type EmployeeSummary struct {
	EmployeeID  string  `json:"employee_id"`
	Email       string  `json:"email"`
	HoursWorked float64 `json:"hours_worked"`
	TheoHours   float64 `json:"theo_hours"`
	DiffHours   float64 `json:"diff_hours"`
}

// PeriodTotal is one (employee, period-key) bucket of the roll-up.
type PeriodTotal struct {
	EmployeeID  string  `json:"employee_id"`
	Email       string  `json:"email"`
	Period      string  `json:"period"`
	HoursWorked float64 `json:"hours_worked"`
	TheoHours   float64 `json:"theo_hours"`
	DiffHours   float64 `json:"diff_hours"`
}

type AttendanceReport struct {
	From        string            `json:"from"`
	To          string            `json:"to"`
	Granularity string            `json:"granularity"`
	GeneratedAt string            `json:"generated_at"`
	Rows        []AttendanceRow   `json:"rows"`
	Summary     []EmployeeSummary `json:"summary"`
	Periods     []PeriodTotal     `json:"periods"`
}
