package postgresql

import (
	"context"
	"fmt"

	"github.com/chronotec/timeclock-backend-go/internal/domain/schedule"
	"github.com/chronotec/timeclock-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

// Upsert implements schedule.ScheduleRepository.
func (r *scheduleRepository) Upsert(ctx context.Context, entry schedule.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedules (
			employee_id, weekday, start_time, break_start, break_end, end_time, timezone
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (employee_id, weekday) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			break_start = EXCLUDED.break_start,
			break_end = EXCLUDED.break_end,
			end_time = EXCLUDED.end_time,
			timezone = EXCLUDED.timezone,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		entry.EmployeeID,
		entry.Weekday,
		entry.StartTime,
		entry.BreakStart,
		entry.BreakEnd,
		entry.EndTime,
		entry.Timezone,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert schedule entry: %w", err)
	}

	return nil
}

// List implements schedule.ScheduleRepository.
func (r *scheduleRepository) List(ctx context.Context) ([]schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, weekday, start_time, break_start, break_end, end_time, timezone,
			   created_at, updated_at
		FROM schedules
		ORDER BY employee_id ASC, weekday ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	var entries []schedule.Entry
	for rows.Next() {
		var e schedule.Entry
		err := rows.Scan(
			&e.EmployeeID, &e.Weekday, &e.StartTime, &e.BreakStart, &e.BreakEnd, &e.EndTime, &e.Timezone,
			&e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}
