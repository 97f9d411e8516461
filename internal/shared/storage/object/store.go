package object

import (
	"context"
	"io"
)

// ObjectStore abstracts where uploaded company profiles are kept.
type ObjectStore interface {
	// Save persists the reader and returns the storage key, size and sniffed mime type.
	Save(ctx context.Context, fileName string, r io.Reader) (string, int64, string, error)
	// Open opens a stored object for reading.
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
