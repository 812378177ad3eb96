package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where justification evidence ends up. The only
// implementation today is local disk; the interface keeps the services
// ignorant of that.
type FileStorage interface {
	// Upload stores a file and returns its path/key
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Download retrieves a file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists
	Exists(ctx context.Context, path string) (bool, error)
}
