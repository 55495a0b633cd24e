// Package storage provides the local-disk file store backing the upload
// endpoint. Files are written under a single flat directory and served
// statically by the HTTP layer.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskStore writes uploaded files into a fixed directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed and returns a store
// rooted there.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the directory files are stored in.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Save streams r into a new file with the given name. The name is assumed
// to be server-generated; no path traversal can occur because only the base
// name is used. Partial writes are not cleaned up.
func (s *DiskStore) Save(ctx context.Context, name string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dst, err := os.Create(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
