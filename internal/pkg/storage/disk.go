package storage

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DiskStore keeps objects on the local filesystem and issues HMAC-signed,
// expiring URLs served back through its own HTTP route. Content type is not
// persisted; serving relies on the object's file extension.
type DiskStore struct {
	baseDir string
	baseURL string // public base URL of this service, no trailing slash
	secret  []byte
}

func NewDiskStore(baseDir, baseURL, secret string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &DiskStore{
		baseDir: baseDir,
		baseURL: baseURL,
		secret:  []byte(secret),
	}, nil
}

func (s *DiskStore) Upload(ctx context.Context, objPath string, r io.Reader, contentType string, upsert bool) error {
	rel, err := cleanPath(objPath)
	if err != nil {
		return err
	}

	abs := filepath.Join(s.baseDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !upsert {
		// a collision must fail, not silently overwrite
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	dst, err := os.OpenFile(abs, flags, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrObjectExists
		}
		return fmt.Errorf("failed to create object: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		_ = os.Remove(abs) // drop the partial write
		return fmt.Errorf("failed to write object: %w", err)
	}

	return nil
}

func (s *DiskStore) SignedURL(objPath string, ttl time.Duration) (string, error) {
	rel, err := cleanPath(objPath)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(filepath.Join(s.baseDir, filepath.FromSlash(rel))); err != nil {
		return "", ErrObjectNotFound
	}

	exp := time.Now().Add(ttl).Unix()
	return fmt.Sprintf("%s/storage/signed/%s?exp=%d&sig=%s", s.baseURL, rel, exp, s.sign(rel, exp)), nil
}

func (s *DiskStore) Remove(ctx context.Context, objPath string) error {
	rel, err := cleanPath(objPath)
	if err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(rel))); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrObjectNotFound
		}
		return fmt.Errorf("failed to remove object: %w", err)
	}
	return nil
}

func (s *DiskStore) sign(rel string, exp int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s\n%d", rel, exp)
	return hex.EncodeToString(mac.Sum(nil))
}
