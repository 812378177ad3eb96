package schedule

import "context"

// ScheduleRepository defines data access for weekly schedule entries.
type ScheduleRepository interface {
	// Upsert creates or replaces the entry for (employee, weekday)
	Upsert(ctx context.Context, entry Entry) error

	// List retrieves every schedule entry
	List(ctx context.Context) ([]Entry, error)
}
