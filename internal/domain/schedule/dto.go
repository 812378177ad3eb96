package schedule

// ========================================
// SCHEDULE DTOs
// ========================================

// ImportRow is one parsed row of a schedule import file. Employees are
// addressed by email; the service maps them to ids via the directory.
type ImportRow struct {
	Email      string
	Weekday    int
	StartTime  *string
	BreakStart *string
	BreakEnd   *string
	EndTime    *string
	Timezone   string
}

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type EntryResponse struct {
	EmployeeID string  `json:"employee_id"`
	Email      string  `json:"email"`
	Weekday    int     `json:"weekday"`
	StartTime  *string `json:"start_time"`
	BreakStart *string `json:"break_start"`
	BreakEnd   *string `json:"break_end"`
	EndTime    *string `json:"end_time"`
	Timezone   string  `json:"timezone"`
}

type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}
