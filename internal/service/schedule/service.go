package schedule

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/chronotec/timeclock-backend-go/internal/domain/employee"
	"github.com/chronotec/timeclock-backend-go/internal/domain/schedule"
)

type ScheduleServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
	employeeRepo employee.EmployeeRepository
}

func NewScheduleService(scheduleRepo schedule.ScheduleRepository, employeeRepo employee.EmployeeRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
	}
}

// Import implements schedule.ScheduleService. Rows referencing unknown
// emails are counted as skipped, not fatal; a file with zero usable rows is
// rejected outright.
func (s *ScheduleServiceImpl) Import(ctx context.Context, filename string, file io.Reader) (schedule.ImportResult, error) {
	rows, err := parseImportFile(filename, file)
	if err != nil {
		return schedule.ImportResult{}, err
	}

	var result schedule.ImportResult
	for _, row := range rows {
		emp, err := s.employeeRepo.GetByEmail(ctx, row.Email)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				result.Skipped++
				continue
			}
			return schedule.ImportResult{}, fmt.Errorf("failed to look up employee %s: %w", row.Email, err)
		}

		entry := schedule.Entry{
			EmployeeID: emp.ID,
			Weekday:    row.Weekday,
			StartTime:  row.StartTime,
			BreakStart: row.BreakStart,
			BreakEnd:   row.BreakEnd,
			EndTime:    row.EndTime,
			Timezone:   row.Timezone,
		}
		if err := s.scheduleRepo.Upsert(ctx, entry); err != nil {
			return schedule.ImportResult{}, fmt.Errorf("failed to upsert schedule for %s: %w", row.Email, err)
		}
		result.Imported++
	}

	if result.Imported == 0 {
		return schedule.ImportResult{}, schedule.ErrNoValidRows
	}
	return result, nil
}

// List implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) List(ctx context.Context) (schedule.ListEntriesResponse, error) {
	entries, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return schedule.ListEntriesResponse{}, fmt.Errorf("failed to list schedules: %w", err)
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return schedule.ListEntriesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	emailByID := make(map[string]string, len(employees))
	for _, e := range employees {
		emailByID[e.ID] = e.Email
	}

	resp := schedule.ListEntriesResponse{Entries: make([]schedule.EntryResponse, 0, len(entries))}
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, schedule.EntryResponse{
			EmployeeID: entry.EmployeeID,
			Email:      emailByID[entry.EmployeeID],
			Weekday:    entry.Weekday,
			StartTime:  entry.StartTime,
			BreakStart: entry.BreakStart,
			BreakEnd:   entry.BreakEnd,
			EndTime:    entry.EndTime,
			Timezone:   entry.Timezone,
		})
	}
	return resp, nil
}
