package ports

import (
	"context"
	"io"
)

// FileStore persists uploaded file bytes under a server-chosen name and
// returns nothing but an error; URL construction is the service's concern.
type FileStore interface {
	Save(ctx context.Context, name string, r io.Reader) error
}

// UploadService stores a single uploaded file and returns the public path
// it will be served from.
type UploadService interface {
	Store(ctx context.Context, originalName string, r io.Reader) (string, error)
}
