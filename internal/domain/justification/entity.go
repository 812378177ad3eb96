package justification

import "time"

// Justification statuses. Only approved records affect computed hours.
const (
	StatusApproved = "approved"
	StatusPending  = "pending"
	StatusRejected = "rejected"
)

var Statuses = []string{StatusApproved, StatusPending, StatusRejected}

// Justification is an admin-recorded correction to one punch kind on one
// day, optionally backed by an evidence file.
type Justification struct {
	ID           string
	EmployeeID   string
	Day          string // YYYY-MM-DD
	Field        string // punch kind being corrected
	NewTime      string // HH:MM local time-of-day
	Reason       *string
	EvidencePath *string
	Status       string
	CreatedBy    string
	CreatedAt    time.Time
}
