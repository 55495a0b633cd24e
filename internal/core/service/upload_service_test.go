package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type stubFileStore struct {
	names []string
	data  map[string][]byte
	err   error
}

func newStubFileStore() *stubFileStore {
	return &stubFileStore{data: make(map[string][]byte)}
}

func (s *stubFileStore) Save(_ context.Context, name string, r io.Reader) error {
	if s.err != nil {
		return s.err
	}
	b, _ := io.ReadAll(r)
	s.names = append(s.names, name)
	s.data[name] = b
	return nil
}

func TestUploadService_Store(t *testing.T) {
	store := newStubFileStore()
	svc := NewUploadService(store, zerolog.Nop())

	url, err := svc.Store(context.Background(), "cover.jpg", bytes.NewReader([]byte("image-bytes")))
	if err != nil {
		t.Fatalf("Store returned error: %v", err)
	}

	if !strings.HasPrefix(url, "/uploads/") {
		t.Fatalf("expected public mount prefix, got %q", url)
	}
	if !strings.HasSuffix(url, ".jpg") {
		t.Fatalf("expected original extension preserved, got %q", url)
	}
	if len(store.names) != 1 {
		t.Fatalf("expected one save, got %d", len(store.names))
	}
	if string(store.data[store.names[0]]) != "image-bytes" {
		t.Fatalf("stored bytes differ")
	}
}

func TestUploadService_NamesDoNotCollide(t *testing.T) {
	store := newStubFileStore()
	svc := NewUploadService(store, zerolog.Nop())

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		url, err := svc.Store(context.Background(), "a.png", strings.NewReader("x"))
		if err != nil {
			t.Fatalf("Store returned error: %v", err)
		}
		if seen[url] {
			t.Fatalf("duplicate generated name: %q", url)
		}
		seen[url] = true
	}
}

func TestUploadService_NoExtension(t *testing.T) {
	store := newStubFileStore()
	svc := NewUploadService(store, zerolog.Nop())

	url, err := svc.Store(context.Background(), "README", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Store returned error: %v", err)
	}
	if strings.Contains(url[len("/uploads/"):], ".") {
		t.Fatalf("expected no extension, got %q", url)
	}
}
