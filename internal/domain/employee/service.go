package employee

import "context"

// EmployeeService defines business logic for directory administration.
type EmployeeService interface {
	// List retrieves the directory
	List(ctx context.Context) (ListResponse, error)

	// SetRole changes an employee's role
	SetRole(ctx context.Context, req SetRoleRequest) (EmployeeResponse, error)

	// SetStatus enables or disables an employee
	SetStatus(ctx context.Context, req SetStatusRequest) (EmployeeResponse, error)

	// ResetNIP generates a fresh 4 digit NIP, stores its hash and returns
	// the plaintext once
	ResetNIP(ctx context.Context, employeeID string) (ResetNIPResponse, error)
}
