package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"
)

var (
	ErrObjectExists   = errors.New("object already exists at path")
	ErrObjectNotFound = errors.New("object not found")
	ErrInvalidPath    = errors.New("invalid object path")
)

// Store is the object store consumed by the upload and file gateways.
// Paths are forward-slash relative keys; the first segment is by convention
// the owning organization's ID.
type Store interface {
	// Upload writes the object at path. With upsert=false an existing
	// object makes the write fail with ErrObjectExists instead of being
	// overwritten.
	Upload(ctx context.Context, objPath string, r io.Reader, contentType string, upsert bool) error

	// SignedURL mints a time-limited URL granting direct read access to
	// one object. Every call mints a fresh URL; nothing is cached.
	SignedURL(objPath string, ttl time.Duration) (string, error)

	// Remove deletes the object at path.
	Remove(ctx context.Context, objPath string) error
}

// cleanPath normalizes an object key and rejects anything that could
// escape the store root.
func cleanPath(objPath string) (string, error) {
	if objPath == "" || strings.HasPrefix(objPath, "/") || strings.Contains(objPath, "\\") {
		return "", ErrInvalidPath
	}
	clean := path.Clean(objPath)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", ErrInvalidPath
	}
	return clean, nil
}
