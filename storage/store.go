package storage

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrBadObjectURL means a public URL could not be mapped back to an
	// object path. Deletes abort on it without touching the record.
	ErrBadObjectURL = errors.New("storage: url does not address a stored object")

	ErrObjectNotFound = errors.New("storage: object not found")
)

// ObjectStore is the boundary to the file backend. Upload returns the public
// URL the record keeps; Delete takes the object path parsed back out of that
// URL.
type ObjectStore interface {
	Upload(ctx context.Context, objectPath string, r io.Reader) (string, error)
	Delete(ctx context.Context, objectPath string) error
	Exists(ctx context.Context, objectPath string) (bool, error)
}
