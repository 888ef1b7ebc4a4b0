package media

import (
	"context"
	"io"
)

// PlaceholderURL is returned by the demo-mode storage without any I/O.
const PlaceholderURL = "https://via.placeholder.com/400"

// Storage stores uploaded image blobs and resolves public URLs for them.
type Storage interface {
	// Upload stores the blob under a name derived from a timestamp plus the
	// original filename and returns its publicly reachable URL.
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}
