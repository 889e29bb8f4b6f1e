// Package contentstore wraps the external object-storage service that
// holds applicant documents and rendered ID cards.
package contentstore

import (
	"context"
	"io"
)

// ContentStore defines the interface for uploading artifacts to the
// external content store. Both methods return the public URL of the
// stored object.
type ContentStore interface {
	// Upload stores the contents of r under the given folder namespace.
	Upload(ctx context.Context, r io.Reader, folder string) (string, error)

	// UploadFile stores a local file under the given folder namespace.
	UploadFile(ctx context.Context, path string, folder string) (string, error)
}
