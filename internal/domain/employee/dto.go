package employee

import (
	"github.com/chronotec/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type SetRoleRequest struct {
	EmployeeID string `json:"-"`
	Role       string `json:"role"`
}

func (r *SetRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(r.Role, Roles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin or employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetStatusRequest struct {
	EmployeeID string `json:"-"`
	Status     string `json:"status"`
}

func (r *SetStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or disabled",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	DisplayName *string `json:"display_name,omitempty"`
	Role        string  `json:"role"`
	Status      string  `json:"status"`
	HasNIP      bool    `json:"has_nip"`
}

type ListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ResetNIPResponse carries the freshly generated NIP. It is shown once and
// only the bcrypt hash is stored.
type ResetNIPResponse struct {
	EmployeeID string `json:"employee_id"`
	NIP        string `json:"nip"`
}
