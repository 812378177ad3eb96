package justification

import "errors"

// Justification domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found for justification")
	ErrEvidenceTooLarge = errors.New("evidence file exceeds the size limit")
	ErrEvidenceBadType  = errors.New("evidence file type not allowed")
)
