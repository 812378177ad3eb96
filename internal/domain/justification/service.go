package justification

import (
	"context"
	"io"
)

// JustificationService defines business logic for corrections.
type JustificationService interface {
	// Create stores the justification and, in the same transaction,
	// idempotently creates-or-updates the justification-sourced punch for
	// (employee, day, field) so downstream punch consumers see the
	// corrected time
	Create(ctx context.Context, req CreateRequest) (CreateResponse, error)

	// List retrieves justifications in a day range
	List(ctx context.Context, filter ListFilter) (ListResponse, error)

	// UploadEvidence stores an evidence file and returns its path
	UploadEvidence(ctx context.Context, employeeID, day, filename string, size int64, file io.Reader) (UploadEvidenceResponse, error)
}
