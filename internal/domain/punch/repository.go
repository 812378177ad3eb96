package punch

import (
	"context"
	"time"
)

// PunchRepository defines data access for raw punch events. Punches are
// immutable once created, with one exception: the timestamp of a
// justification-sourced punch may be replaced when the correction is revised.
type PunchRepository interface {
	// Create stores a new punch event
	Create(ctx context.Context, p Punch) (Punch, error)

	// ListByWorkdayRange retrieves punches whose workday falls in the
	// inclusive [from, to] range, ordered by workday then timestamp ascending
	ListByWorkdayRange(ctx context.Context, from, to string) ([]Punch, error)

	// GetJustificationPunch finds the justification-sourced punch for
	// (employee, workday, kind), if any
	GetJustificationPunch(ctx context.Context, employeeID, workday, kind string) (*Punch, error)

	// UpdateTimestamp replaces the timestamp of an existing punch
	UpdateTimestamp(ctx context.Context, id string, ts time.Time) error

	// HasDevicePunch reports whether a device punch of the given kind
	// already exists for (employee, workday)
	HasDevicePunch(ctx context.Context, employeeID, workday, kind string) (bool, error)
}
