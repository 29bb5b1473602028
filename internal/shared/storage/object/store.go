package object

import (
	"context"
	"io"
)

// Saved describes an object written to a ScratchStore.
type Saved struct {
	Key       string
	SizeBytes int64
	MimeType  string
}

// ScratchStore holds request-scoped uploads for the lifetime of one analysis.
type ScratchStore interface {
	Save(ctx context.Context, namespace string, fileName string, r io.Reader) (Saved, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
