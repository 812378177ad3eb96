package justification

import (
	"github.com/chronotec/timeclock-backend-go/internal/domain/punch"
	"github.com/chronotec/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// JUSTIFICATION DTOs
// ========================================

type CreateRequest struct {
	EmployeeID   string  `json:"employee_id"`
	Day          string  `json:"day"`
	Field        string  `json:"field"`
	NewTime      string  `json:"new_time"`
	Reason       *string `json:"reason,omitempty"`
	EvidencePath *string `json:"evidence_path,omitempty"`
	Status       string  `json:"status,omitempty"`

	// Filled by the handler from the verified token.
	CreatedBy string `json:"-"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Day); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be a YYYY-MM-DD date",
		})
	}

	if !punch.IsValidKind(r.Field) {
		errs = append(errs, validator.ValidationError{
			Field:   "field",
			Message: "field must be one of start_day, start_break, end_break, end_day",
		})
	}

	if !validator.IsValidTimeOfDay(r.NewTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "new_time",
			Message: "new_time must be a HH:MM time",
		})
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be approved, pending or rejected",
		})
	}

	if validator.IsEmpty(r.CreatedBy) {
		errs = append(errs, validator.ValidationError{
			Field:   "created_by",
			Message: "creator identity is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	From        string
	To          string
	EmployeeIDs []string
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(f.From); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be a YYYY-MM-DD date",
		})
	}

	if _, ok := validator.IsValidDate(f.To); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be a YYYY-MM-DD date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JustificationResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	Day          string  `json:"day"`
	Field        string  `json:"field"`
	NewTime      string  `json:"new_time"`
	Reason       *string `json:"reason,omitempty"`
	EvidencePath *string `json:"evidence_path,omitempty"`
	Status       string  `json:"status"`
	CreatedBy    string  `json:"created_by"`
	CreatedAt    string  `json:"created_at"`
}

type CreateResponse struct {
	Justification JustificationResponse `json:"justification"`
	PunchID       string                `json:"punch_id"`
	PunchMode     string                `json:"punch_mode"` // "inserted" or "updated"
}

type ListResponse struct {
	Items []JustificationResponse `json:"items"`
}

type UploadEvidenceResponse struct {
	Path string `json:"path"`
}
