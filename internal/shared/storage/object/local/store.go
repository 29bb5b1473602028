package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"resume-ats/internal/shared/storage/object"
	"resume-ats/internal/shared/util"
)

// Store implements ScratchStore using the local filesystem.
type Store struct {
	baseDir string
}

// New creates a new local scratch store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Save writes the reader to disk under the namespace with a random prefix.
func (s *Store) Save(ctx context.Context, namespace string, fileName string, r io.Reader) (object.Saved, error) {
	sanitizedName := util.SanitizeFileName(fileName)

	if err := ctx.Err(); err != nil {
		return object.Saved{}, err
	}

	nsKey := util.HashKey(namespace)
	finalName := fmt.Sprintf("%s_%s", uuid.NewString(), sanitizedName)

	mimeType, body, err := object.Sniff(r)
	if err != nil {
		return object.Saved{}, err
	}

	dirPath := filepath.Join(s.baseDir, nsKey)
	if err := os.MkdirAll(dirPath, 0o700); err != nil {
		return object.Saved{}, fmt.Errorf("mkdir: %w", err)
	}

	fullPath := filepath.Join(dirPath, finalName)
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		// Only removes the directory when nothing else lives in it.
		_ = os.Remove(dirPath)
		return object.Saved{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, body)
	if err != nil {
		_ = os.Remove(fullPath)
		_ = os.Remove(dirPath)
		return object.Saved{}, fmt.Errorf("write body: %w", err)
	}

	return object.Saved{
		Key:       filepath.Join(nsKey, finalName),
		SizeBytes: written,
		MimeType:  mimeType,
	}, nil
}

// Open opens a stored object for reading.
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fullPath, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	return os.Open(fullPath)
}

// Delete removes the object and its namespace directory once empty. Missing
// objects are not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	fullPath, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove: %w", err)
	}
	// Fails harmlessly when other objects share the namespace.
	_ = os.Remove(filepath.Dir(fullPath))
	return nil
}

func (s *Store) resolve(key string) (string, error) {
	clean := filepath.Clean(key)
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.baseDir, clean), nil
}

var _ object.ScratchStore = (*Store)(nil)
