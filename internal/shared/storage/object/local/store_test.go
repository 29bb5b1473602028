package local

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveOpenDelete(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	ctx := context.Background()

	saved, err := store.Save(ctx, "req-1", "my cv.pdf", strings.NewReader("%PDF-1.4\nbody"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.SizeBytes != int64(len("%PDF-1.4\nbody")) {
		t.Fatalf("unexpected size %d", saved.SizeBytes)
	}
	if saved.MimeType != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", saved.MimeType)
	}
	if !strings.HasSuffix(saved.Key, "_my cv.pdf") {
		t.Fatalf("unexpected key %q", saved.Key)
	}

	rc, err := store.Open(ctx, saved.Key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	data, _ := io.ReadAll(rc)
	rc.Close()
	if string(data) != "%PDF-1.4\nbody" {
		t.Fatalf("unexpected contents %q", data)
	}

	if err := store.Delete(ctx, saved.Key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, saved.Key)); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err=%v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, filepath.Dir(saved.Key))); !os.IsNotExist(err) {
		t.Fatalf("expected namespace dir removed, stat err=%v", err)
	}
	if err := store.Delete(ctx, saved.Key); err != nil {
		t.Fatalf("second Delete should be a no-op: %v", err)
	}
}

func TestTraversalStaysInsideBaseDir(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	saved, err := store.Save(ctx, "req", "../x.pdf", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if strings.Contains(saved.Key, "..") || !strings.HasSuffix(saved.Key, "_x.pdf") {
		t.Fatalf("unexpected key %q", saved.Key)
	}
	if _, err := store.Open(ctx, "../outside"); err == nil {
		t.Fatalf("expected invalid key error")
	}
	if err := store.Delete(ctx, "/abs/path"); err == nil {
		t.Fatalf("expected invalid key error")
	}
}

func TestSaveHonorsCanceledContext(t *testing.T) {
	store := New(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Save(ctx, "req", "cv.pdf", strings.NewReader("x")); err == nil {
		t.Fatalf("expected context error")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestSaveFailureLeavesNoDirectory(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	if _, err := store.Save(context.Background(), "req", "cv.pdf", failingReader{}); err == nil {
		t.Fatalf("expected read error")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty scratch dir, found %d entries", len(entries))
	}
}
