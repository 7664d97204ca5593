package services

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/nanho-work/theUBoo/storage"
)

// FileUpload is a pending image handed from a controller to the gateway.
// Nothing has been uploaded yet when a service receives one.
type FileUpload struct {
	Filename string
	Reader   io.Reader
}

var (
	ErrNotFound        = errors.New("record not found")
	ErrSlotOccupied    = errors.New("slot already holds an image")
	ErrSlotOutOfRange  = errors.New("slot outside 0-9")
	ErrInvalidCategory = errors.New("unknown menu category")
	ErrTooManyImages   = errors.New("too many images attached")
	ErrWrongPassword   = errors.New("password does not match")
)

// discard removes an object left behind by a failed record write. Every
// create/update that uploads goes through this on failure; cleanup itself is
// best-effort.
func discard(ctx context.Context, store storage.ObjectStore, objectPath string) {
	if err := store.Delete(ctx, objectPath); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
		log.Println("orphan cleanup failed:", objectPath, err)
	}
}
