package punch

import (
	"github.com/chronotec/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// PUNCH DTOs
// ========================================

type SubmitRequest struct {
	Kind      string   `json:"kind"`
	NIP       string   `json:"nip"`
	Latitude  *float64 `json:"lat,omitempty"`
	Longitude *float64 `json:"lng,omitempty"`
	AccuracyM *float64 `json:"accuracy_m,omitempty"`
	DeviceID  *string  `json:"device_id,omitempty"`
	UserAgent *string  `json:"ua,omitempty"`

	// Filled by the handler, not the client.
	IP string `json:"-"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidKind(r.Kind) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of start_day, start_break, end_break, end_day",
		})
	}

	if !validator.IsValidNIP(r.NIP) {
		errs = append(errs, validator.ValidationError{
			Field:   "nip",
			Message: "nip must be a 4 digit number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Kind       string `json:"kind"`
	Timestamp  string `json:"ts"`
	Workday    string `json:"workday"`
	Source     string `json:"source"`
}
