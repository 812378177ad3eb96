package employee

import "time"

// Roles and statuses for directory entries. Accounts themselves are created
// by the external identity platform; this directory only mirrors what the
// time-clock needs.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"

	StatusActive   = "active"
	StatusDisabled = "disabled"
)

var (
	Roles    = []string{RoleAdmin, RoleEmployee}
	Statuses = []string{StatusActive, StatusDisabled}
)

type Employee struct {
	ID          string
	Email       string
	DisplayName *string
	Role        string
	Status      string
	NIPHash     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Label returns the display identifier used for sorting and rendering:
// the email, or the raw id when the email is missing.
func (e Employee) Label() string {
	if e.Email != "" {
		return e.Email
	}
	return e.ID
}
