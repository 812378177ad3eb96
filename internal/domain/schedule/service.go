package schedule

import (
	"context"
	"io"
)

// ScheduleService defines business logic for schedule management.
type ScheduleService interface {
	// Import parses a CSV or XLSX file and upserts the contained entries.
	// Rows that cannot be mapped to an employee or carry an invalid weekday
	// are skipped, not fatal.
	Import(ctx context.Context, filename string, file io.Reader) (ImportResult, error)

	// List returns all schedule entries with employee emails attached
	List(ctx context.Context) (ListEntriesResponse, error)
}
