// Package media provides the local-disk implementation of the media store.
// Stored images are served back under a public URL prefix by the HTTP layer.
package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"parcelmarket/internal/pkg/errs"

	"github.com/google/uuid"
)

// DiskStore implements the media store port on the local filesystem. File names
// are never trusted: the stored name is a fresh UUID carrying only the original
// extension, so uploads cannot collide or escape the base directory.
type DiskStore struct {
	baseDir   string
	urlPrefix string
}

// NewDiskStore creates a disk store rooted at baseDir. Stored files are
// reachable under urlPrefix, e.g. "/media".
func NewDiskStore(baseDir, urlPrefix string) (*DiskStore, error) {
	if baseDir == "" {
		return nil, errs.NewValueIsRequiredError("baseDir")
	}
	if urlPrefix == "" {
		return nil, errs.NewValueIsRequiredError("urlPrefix")
	}

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}

	return &DiskStore{
		baseDir:   baseDir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}, nil
}

// BaseDir returns the directory the store writes into. Used by the HTTP layer
// to mount the static file route.
func (s *DiskStore) BaseDir() string {
	return s.baseDir
}

// Store writes the image content to disk and returns the URL it is reachable at.
func (s *DiskStore) Store(ctx context.Context, fileName string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if fileName == "" {
		return "", errs.NewValueIsRequiredError("fileName")
	}

	storedName := uuid.NewString() + sanitizeExtension(fileName)
	path := filepath.Join(s.baseDir, storedName)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}

	if _, err = io.Copy(f, content); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	if err = f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to close media file: %w", err)
	}

	return s.urlPrefix + "/" + storedName, nil
}

// sanitizeExtension keeps the original extension when it looks like one and
// drops anything suspicious.
func sanitizeExtension(fileName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(fileName)))
	if ext == "" || len(ext) > 8 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
