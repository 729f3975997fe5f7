package storage

import (
	"context"
	"io"
)

// Saver persists file bytes and returns the stored path.
type Saver interface {
	Save(ctx context.Context, name string, r io.Reader) (storedPath string, err error)
	// Remove deletes a previously stored file. Missing files are not an error.
	Remove(ctx context.Context, storedPath string) error
	Exists(storedPath string) bool
}
