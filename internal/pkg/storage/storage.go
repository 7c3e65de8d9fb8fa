package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where screenshot media lands. The API only ever
// stores and reads back by path; serving the bytes is left to whatever
// fronts the storage.
type FileStorage interface {
	// Upload stores a file and returns the stored path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a stored file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a stored file
	Delete(ctx context.Context, path string) error

	// Exists checks if a file is stored at path
	Exists(ctx context.Context, path string) (bool, error)
}
