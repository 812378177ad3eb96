package punch

import "errors"

// Punch domain errors
var (
	ErrInvalidNIP     = errors.New("no active employee matches the given NIP")
	ErrDuplicatePunch = errors.New("a punch of this kind already exists for today")
	ErrPunchNotFound  = errors.New("punch not found")
)
