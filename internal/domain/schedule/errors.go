package schedule

import "errors"

// Schedule domain errors
var (
	ErrNoValidRows         = errors.New("no valid rows in the import file")
	ErrUnsupportedFileType = errors.New("unsupported file type: only csv and xlsx are accepted")
)
