package justification

import "context"

// JustificationRepository defines data access for correction records.
type JustificationRepository interface {
	// Create stores a new justification
	Create(ctx context.Context, j Justification) (Justification, error)

	// ListApproved retrieves approved justifications whose day falls in the
	// inclusive [from, to] range, ordered by created_at ascending so that a
	// later record for the same (employee, day, field) wins when callers
	// fold the list into an override map
	ListApproved(ctx context.Context, from, to string, employeeIDs []string) ([]Justification, error)

	// List retrieves justifications of any status in the range
	List(ctx context.Context, filter ListFilter) ([]Justification, error)
}
