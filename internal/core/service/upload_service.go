package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell/blog-api/internal/api/metrics"
	"github.com/inkwell/blog-api/internal/core/ports"
)

// publicMount is the URL prefix uploaded files are served from.
const publicMount = "/uploads"

// UploadService stores uploaded files under collision-resistant names and
// returns their public path. No content-type or size validation is applied.
type UploadService struct {
	store ports.FileStore
	log   zerolog.Logger
}

func NewUploadService(store ports.FileStore, log zerolog.Logger) *UploadService {
	return &UploadService{store: store, log: log}
}

// Store writes the file and returns its path under the public mount. The
// generated name is the current timestamp plus a random integer, keeping
// the original extension.
func (s *UploadService) Store(ctx context.Context, originalName string, r io.Reader) (string, error) {
	name := generateFileName(originalName)
	if err := s.store.Save(ctx, name, r); err != nil {
		return "", err
	}

	metrics.UploadsTotal.Inc()
	s.log.Info().Str("file", name).Msg("file stored")
	return path.Join(publicMount, name), nil
}

// generateFileName builds "<unix-millis>-<random int><ext>".
func generateFileName(originalName string) string {
	var b [8]byte
	var n uint64
	if _, err := rand.Read(b[:]); err == nil {
		n = binary.BigEndian.Uint64(b[:]) % 1_000_000_000
	} else {
		n = uint64(time.Now().UnixNano()) % 1_000_000_000
	}
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), n, ext)
}
