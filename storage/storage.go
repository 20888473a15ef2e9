package storage

import (
	"context"
	"io"
)

// Storage is the object-storage boundary used by product and category image
// management. Upload returns a publicly reachable URL for the stored object.
type Storage interface {
	Upload(ctx context.Context, file io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}
