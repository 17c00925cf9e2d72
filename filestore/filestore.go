// Package filestore provides an abstraction for blob storage operations.
//
// A FileStore is bound to one bucket; WithBucket returns a view of another bucket
// sharing the same connection. Implementations must be safe for concurrent use.
package filestore

import (
	"context"
	"io"
	"time"
)

const (
	// CodeObjectNotFound is returned when no object exists at the requested path.
	CodeObjectNotFound = "OBJECT_NOT_FOUND"

	// CodeObjectTooLarge is returned by ReadAll when the object exceeds the size limit.
	CodeObjectTooLarge = "OBJECT_TOO_LARGE"
)

// FileStore defines blob storage operations.
type FileStore interface {
	// Bucket returns the bucket this store reads from and writes to.
	Bucket() string

	// WithBucket returns a store bound to bucket.
	WithBucket(bucket string) FileStore

	// Get retrieves an object and its metadata.
	// The caller is responsible for closing File.Content.
	Get(ctx context.Context, path string) (*File, error)

	// Delete removes the object at path. Deleting a missing object is not an error.
	Delete(ctx context.Context, path string) error

	// PresignedGetURL returns a time limited download URL for path.
	PresignedGetURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

// File represents a stored object with its content and metadata.
type File struct {
	Content io.ReadCloser
	Info    FileInfo
}

// FileInfo contains metadata about a stored object.
type FileInfo struct {
	Path         string
	Size         int64
	ContentType  string
	ETag         string
	LastModified time.Time
}
