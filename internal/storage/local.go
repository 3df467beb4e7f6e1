package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// publicPrefix is the path segment under which stored files are served back,
// regardless of where the upload directory actually lives on disk.
const publicPrefix = "uploads"

// localStorage writes uploaded files to a directory on disk.
type localStorage struct {
	dir string
}

// NewLocal creates a disk-backed Storage rooted at dir, creating the
// directory if it does not exist yet.
func NewLocal(dir string) (Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &localStorage{dir: dir}, nil
}

func (l *localStorage) Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (string, error) {
	// Keys are generated, never user input, but keep them to a single path
	// segment anyway.
	if key == "" || key != filepath.Base(key) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}

	f, err := os.Create(filepath.Join(l.dir, key))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write file: %w", err)
	}
	return path.Join(publicPrefix, key), nil
}

func (l *localStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(l.dir, filepath.Base(key)))
}

func (l *localStorage) Delete(ctx context.Context, key string) error {
	return os.Remove(filepath.Join(l.dir, filepath.Base(key)))
}
