package employee

import "context"

// EmployeeRepository defines data access for the employee directory.
type EmployeeRepository interface {
	// List retrieves every directory entry ordered by email
	List(ctx context.Context) ([]Employee, error)

	// ListActive retrieves entries with status=active
	ListActive(ctx context.Context) ([]Employee, error)

	// GetByID retrieves one entry
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves one entry by email
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// UpdateRole sets the role of an entry
	UpdateRole(ctx context.Context, id, role string) error

	// UpdateStatus sets the status of an entry
	UpdateStatus(ctx context.Context, id, status string) error

	// UpdateNIPHash replaces the stored NIP hash
	UpdateNIPHash(ctx context.Context, id, nipHash string) error
}
