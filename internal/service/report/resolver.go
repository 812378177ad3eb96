package report

import (
	"fmt"
	"time"

	"github.com/chronotec/timeclock-backend-go/internal/domain/schedule"
)

// scheduleIndex gives O(1) lookup of the theoretical window for an
// (employee, weekday) pair. It is built once per report request, never
// shared across requests.
type scheduleIndex struct {
	byKey     map[string]schedule.Entry
	employees map[string]struct{}
}

func newScheduleIndex(entries []schedule.Entry) *scheduleIndex {
	idx := &scheduleIndex{
		byKey:     make(map[string]schedule.Entry, len(entries)),
		employees: make(map[string]struct{}),
	}
	for _, e := range entries {
		if e.Weekday < 0 || e.Weekday > 6 {
			continue
		}
		idx.byKey[scheduleKey(e.EmployeeID, e.Weekday)] = e
		idx.employees[e.EmployeeID] = struct{}{}
	}
	return idx
}

// resolve returns the entry for the employee on the weekday of the given
// civil date, or nil when the employee has no obligation that day. The
// weekday (0=Sunday) comes straight from the calendar date; no timezone
// conversion applies here.
func (idx *scheduleIndex) resolve(employeeID, day string) *schedule.Entry {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		return nil
	}
	e, ok := idx.byKey[scheduleKey(employeeID, int(d.Weekday()))]
	if !ok {
		return nil
	}
	return &e
}

// scheduledEmployees returns the ids of every employee with an entry. Only
// these employees participate in absence synthesis.
func (idx *scheduleIndex) scheduledEmployees() []string {
	ids := make([]string, 0, len(idx.employees))
	for id := range idx.employees {
		ids = append(ids, id)
	}
	return ids
}

func scheduleKey(employeeID string, weekday int) string {
	return fmt.Sprintf("%s-%d", employeeID, weekday)
}
