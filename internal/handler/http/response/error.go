package response

import (
	"errors"
	"net/http"

	"github.com/chronotec/timeclock-backend-go/internal/domain/employee"
	"github.com/chronotec/timeclock-backend-go/internal/domain/justification"
	"github.com/chronotec/timeclock-backend-go/internal/domain/punch"
	"github.com/chronotec/timeclock-backend-go/internal/domain/schedule"
	"github.com/chronotec/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Punch domain errors
	case errors.Is(err, punch.ErrInvalidNIP):
		Unauthorized(w, "No active employee matches the given NIP")
	case errors.Is(err, punch.ErrDuplicatePunch):
		Conflict(w, "A punch of this kind already exists for today")
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch not found")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrNoValidRows):
		BadRequest(w, "No valid rows in the import file", nil)
	case errors.Is(err, schedule.ErrUnsupportedFileType):
		BadRequest(w, "Only csv and xlsx files are accepted", nil)

	// Justification domain errors
	case errors.Is(err, justification.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, justification.ErrEvidenceTooLarge):
		BadRequest(w, "Evidence file exceeds the size limit", nil)
	case errors.Is(err, justification.ErrEvidenceBadType):
		BadRequest(w, "Evidence file type not allowed", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
