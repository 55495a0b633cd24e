package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStore_SaveAndReadBack(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	if err := store.Save(context.Background(), "123-456.jpg", strings.NewReader("image-bytes")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "123-456.jpg"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "image-bytes" {
		t.Fatalf("content mismatch: %q", b)
	}
}

func TestDiskStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	if _, err := NewDiskStore(dir); err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("directory not created: %v", err)
	}
}

func TestDiskStore_StripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	if err := store.Save(context.Background(), "../escape.txt", strings.NewReader("x")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "escape.txt")); err != nil {
		t.Fatalf("expected file inside the store dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), "escape.txt")); err == nil {
		t.Fatalf("file escaped the store directory")
	}
}
