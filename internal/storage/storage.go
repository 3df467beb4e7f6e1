package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Package storage abstracts where uploaded CV files live. The default backend
// is local disk; an S3-compatible backend can be selected by configuration
// without touching handler or service logic.

// PutOptions define optional parameters for storing an object.
type PutOptions struct {
	Size        int64
	ContentType string
}

// Storage stores uploaded files under caller-provided keys. Put returns the
// relative path persisted into the application row, which also serves as the
// public download path.
type Storage interface {
	// Put writes the content under the given key and returns the stored
	// relative path (e.g. "uploads/cv-....pdf").
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (string, error)
	// Open returns the content stored under a key.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the object stored under a key.
	Delete(ctx context.Context, key string) error
}

// KeyFunc generates a collision-resistant object key from an original
// filename. It is injected into services so the naming scheme stays
// independent of the storage backend.
type KeyFunc func(originalFilename string) string

// CVKey builds keys of the form cv-<unix-ms>-<random><ext>. The timestamp
// keeps keys roughly sortable; the uuid fragment makes collisions within the
// same millisecond irrelevant.
func CVKey(originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("cv-%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}
