package blob

import "context"

// Store is the abstract blob store behind attachment uploads. The task
// engine never touches blobs itself; it only carries the URL returned
// by URLFor as an opaque string.
type Store interface {
	// Upload writes the bytes under the given path and returns a ref.
	Upload(ctx context.Context, path string, data []byte) (string, error)
	// URLFor resolves a ref to a download URL.
	URLFor(ref string) string
}
