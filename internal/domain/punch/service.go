package punch

import "context"

// PunchService defines business logic for punch capture.
type PunchService interface {
	// Submit records a clock action for the employee identified by NIP
	Submit(ctx context.Context, req SubmitRequest) (PunchResponse, error)
}
