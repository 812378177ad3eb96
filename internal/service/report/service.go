package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/chronotec/timeclock-backend-go/internal/domain/employee"
	"github.com/chronotec/timeclock-backend-go/internal/domain/justification"
	"github.com/chronotec/timeclock-backend-go/internal/domain/punch"
	"github.com/chronotec/timeclock-backend-go/internal/domain/report"
	"github.com/chronotec/timeclock-backend-go/internal/domain/schedule"
)

type ReportServiceImpl struct {
	punchRepo         punch.PunchRepository
	scheduleRepo      schedule.ScheduleRepository
	justificationRepo justification.JustificationRepository
	employeeRepo      employee.EmployeeRepository
	loc               *time.Location
}

func NewReportService(
	punchRepo punch.PunchRepository,
	scheduleRepo schedule.ScheduleRepository,
	justificationRepo justification.JustificationRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) report.ReportService {
	return &ReportServiceImpl{
		punchRepo:         punchRepo,
		scheduleRepo:      scheduleRepo,
		justificationRepo: justificationRepo,
		employeeRepo:      employeeRepo,
		loc:               loc,
	}
}

// snapshot holds the four immutable inputs of one aggregation pass. All I/O
// happens before computation starts; the pass itself never blocks.
type snapshot struct {
	punches        []punch.Punch
	schedules      []schedule.Entry
	justifications []justification.Justification
	employees      []employee.Employee
}

// GenerateAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateAttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (report.AttendanceReport, error) {
	if req.From == "" && req.To == "" {
		req.From, req.To = CurrentWeekRange(time.Now().In(s.loc))
	}
	if req.Granularity == "" {
		req.Granularity = report.GranularityWeek
	}
	if err := req.Validate(); err != nil {
		return report.AttendanceReport{}, err
	}

	snap, err := s.fetchSnapshot(ctx, req.From, req.To)
	if err != nil {
		return report.AttendanceReport{}, err
	}

	result := buildAttendanceReport(snap, req, s.loc)
	result.GeneratedAt = time.Now().Format(time.RFC3339)
	return result, nil
}

// fetchSnapshot issues the four independent reads concurrently. They are
// mutually read-only, so read skew between them is accepted; any single
// failure aborts the whole report.
func (s *ReportServiceImpl) fetchSnapshot(ctx context.Context, from, to string) (snapshot, error) {
	var snap snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		punches, err := s.punchRepo.ListByWorkdayRange(gctx, from, to)
		if err != nil {
			return fmt.Errorf("failed to fetch punches: %w", err)
		}
		snap.punches = punches
		return nil
	})
	g.Go(func() error {
		schedules, err := s.scheduleRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch schedules: %w", err)
		}
		snap.schedules = schedules
		return nil
	})
	g.Go(func() error {
		justifications, err := s.justificationRepo.ListApproved(gctx, from, to, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch justifications: %w", err)
		}
		snap.justifications = justifications
		return nil
	})
	g.Go(func() error {
		employees, err := s.employeeRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch employee directory: %w", err)
		}
		snap.employees = employees
		return nil
	})

	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

// buildAttendanceReport is the single-pass aggregation over an immutable
// snapshot. It is a pure function of its inputs.
func buildAttendanceReport(snap snapshot, req report.AttendanceReportRequest, loc *time.Location) report.AttendanceReport {
	directory := make(map[string]string, len(snap.employees))
	for _, e := range snap.employees {
		directory[e.ID] = e.Label()
	}
	label := func(employeeID string) string {
		if l, ok := directory[employeeID]; ok {
			return l
		}
		// Unknown directory entries never fail the report
		return employeeID
	}

	idx := newScheduleIndex(snap.schedules)

	// 1. Group raw punches by (employee, workday)
	rows := make(map[string]*report.AttendanceRow)
	newRow := func(employeeID, day string) *report.AttendanceRow {
		entry := idx.resolve(employeeID, day)
		row := &report.AttendanceRow{
			EmployeeID: employeeID,
			Email:      label(employeeID),
			Day:        day,
			TheoHours:  theoreticalHours(entry),
		}
		if entry != nil {
			tz := entry.Timezone
			if tz == "" {
				tz = schedule.DefaultTimezone
			}
			row.Schedule = &report.Window{
				StartTime:  entry.StartTime,
				BreakStart: entry.BreakStart,
				BreakEnd:   entry.BreakEnd,
				EndTime:    entry.EndTime,
				Timezone:   tz,
			}
		}
		return row
	}

	for _, p := range snap.punches {
		key := rowKey(p.EmployeeID, p.Workday)
		row, ok := rows[key]
		if !ok {
			row = newRow(p.EmployeeID, p.Workday)
			rows[key] = row
		}
		ts := p.Timestamp
		switch p.Kind {
		case punch.KindStartDay:
			row.StartDay = &ts
		case punch.KindStartBreak:
			row.StartBreak = &ts
		case punch.KindEndBreak:
			row.EndBreak = &ts
		case punch.KindEndDay:
			row.EndDay = &ts
		}
	}

	// 2. Synthesize absence rows: scheduled employees with theoretical hours
	// and no punches on a day become visible with a full negative diff
	// instead of silently disappearing
	fromDate, errFrom := time.Parse("2006-01-02", req.From)
	toDate, errTo := time.Parse("2006-01-02", req.To)
	if errFrom == nil && errTo == nil {
		for d := fromDate; !d.After(toDate); d = d.AddDate(0, 0, 1) {
			day := d.Format("2006-01-02")
			for _, employeeID := range idx.scheduledEmployees() {
				key := rowKey(employeeID, day)
				if _, ok := rows[key]; ok {
					continue
				}
				row := newRow(employeeID, day)
				if row.TheoHours <= 0 {
					continue
				}
				rows[key] = row
			}
		}
	}

	// 3. Apply approved justification overrides. The list is ordered by
	// created_at ascending, so the most recently created duplicate wins.
	overrides := make(map[string]justification.Justification)
	for _, j := range snap.justifications {
		overrides[overrideKey(j.EmployeeID, j.Day, j.Field)] = j
	}
	for _, row := range rows {
		applyOverrides(row, overrides, loc)
		row.HoursWorked = workedHours(row)
		row.DiffHours = row.HoursWorked - row.TheoHours
	}

	// 4. Order and filter
	list := make([]report.AttendanceRow, 0, len(rows))
	for _, row := range rows {
		list = append(list, *row)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Day != list[j].Day {
			return list[i].Day < list[j].Day
		}
		return strings.ToLower(list[i].Email) < strings.ToLower(list[j].Email)
	})

	if f := strings.TrimSpace(req.EmailFilter); f != "" {
		needle := strings.ToLower(f)
		filtered := list[:0]
		for _, row := range list {
			if strings.Contains(strings.ToLower(row.Email), needle) {
				filtered = append(filtered, row)
			}
		}
		list = filtered
	}

	// 5. Per-employee summary
	summaryByID := make(map[string]*report.EmployeeSummary)
	for _, row := range list {
		sum, ok := summaryByID[row.EmployeeID]
		if !ok {
			sum = &report.EmployeeSummary{EmployeeID: row.EmployeeID, Email: row.Email}
			summaryByID[row.EmployeeID] = sum
		}
		sum.HoursWorked += row.HoursWorked
		sum.TheoHours += row.TheoHours
		sum.DiffHours += row.DiffHours
	}
	summary := make([]report.EmployeeSummary, 0, len(summaryByID))
	for _, sum := range summaryByID {
		summary = append(summary, *sum)
	}
	sort.Slice(summary, func(i, j int) bool {
		return strings.ToLower(summary[i].Email) < strings.ToLower(summary[j].Email)
	})

	// 6. Per-period roll-up
	totalsByKey := make(map[string]*report.PeriodTotal)
	for _, row := range list {
		period := periodKey(row.Day, req.Granularity)
		key := row.EmployeeID + "|" + period
		total, ok := totalsByKey[key]
		if !ok {
			total = &report.PeriodTotal{EmployeeID: row.EmployeeID, Email: row.Email, Period: period}
			totalsByKey[key] = total
		}
		total.HoursWorked += row.HoursWorked
		total.TheoHours += row.TheoHours
		total.DiffHours += row.DiffHours
	}
	periods := make([]report.PeriodTotal, 0, len(totalsByKey))
	for _, total := range totalsByKey {
		periods = append(periods, *total)
	}
	sort.Slice(periods, func(i, j int) bool {
		ei, ej := strings.ToLower(periods[i].Email), strings.ToLower(periods[j].Email)
		if ei != ej {
			return ei < ej
		}
		return periods[i].Period < periods[j].Period
	})

	return report.AttendanceReport{
		From:        req.From,
		To:          req.To,
		Granularity: req.Granularity,
		Rows:        list,
		Summary:     summary,
		Periods:     periods,
	}
}

// applyOverrides replaces the row's displayed instants with approved
// corrections so the rendered times and the computed hours stay consistent.
// A malformed override time leaves the raw punch value in place.
func applyOverrides(row *report.AttendanceRow, overrides map[string]justification.Justification, loc *time.Location) {
	for _, kind := range punch.Kinds {
		j, ok := overrides[overrideKey(row.EmployeeID, row.Day, kind)]
		if !ok {
			continue
		}
		ts := overrideInstant(row.Day, j.NewTime, loc)
		if ts == nil {
			continue
		}
		switch kind {
		case punch.KindStartDay:
			row.StartDay = ts
		case punch.KindStartBreak:
			row.StartBreak = ts
		case punch.KindEndBreak:
			row.EndBreak = ts
		case punch.KindEndDay:
			row.EndDay = ts
		}
	}
}

// overrideInstant combines a day and a local time-of-day with the fixed
// business offset into an instant. Nil means the time was malformed.
func overrideInstant(day, timeOfDay string, loc *time.Location) *time.Time {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		return nil
	}
	mins := timeToMinutes(&timeOfDay)
	if mins == nil {
		return nil
	}
	ts := time.Date(d.Year(), d.Month(), d.Day(), *mins/60, *mins%60, 0, 0, loc)
	return &ts
}

func rowKey(employeeID, day string) string {
	return employeeID + "|" + day
}

func overrideKey(employeeID, day, field string) string {
	return employeeID + "|" + day + "|" + field
}
