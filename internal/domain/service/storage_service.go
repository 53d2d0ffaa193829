package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrBlobNotFound is returned when the requested blob does not exist.
var ErrBlobNotFound = errors.New("blob not found")

// StorageService stores photo blobs.
type StorageService interface {
	// Store writes the stream under folder and returns the path of the new blob.
	Store(ctx context.Context, content io.Reader, folder, contentType string) (string, error)

	// Delete removes the blob at path. Missing blobs return ErrBlobNotFound.
	Delete(ctx context.Context, path string) error

	// Exists reports whether a blob exists at path.
	Exists(ctx context.Context, path string) (bool, error)

	// Read opens the blob at path. The caller closes the reader.
	Read(ctx context.Context, path string) (io.ReadCloser, error)
}
