package ports

import (
	"context"
	"io"
)

// MediaStore defines the contract for persisting uploaded parcel images.
type MediaStore interface {
	// Store writes the image content under a name derived from fileName and
	// returns the URL the stored image is reachable at.
	Store(ctx context.Context, fileName string, content io.Reader) (string, error)
}
