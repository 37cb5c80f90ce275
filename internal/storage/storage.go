package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Upload is a typed descriptor for a parsed multipart file, produced by the
// handler's parse stage and consumed by a Storage backend's persist stage.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Storage persists an uploaded payload and returns a stable reference path.
type Storage interface {
	Save(ctx context.Context, upload *Upload) (string, error)
}

// DiskStorage writes uploads to a local directory, naming files by upload
// timestamp plus the original extension.
type DiskStorage struct {
	dir string
}

// NewDiskStorage creates a disk-backed storage rooted at dir.
func NewDiskStorage(dir string) *DiskStorage {
	return &DiskStorage{dir: dir}
}

// Save writes the payload and returns its path relative to the working
// directory.
func (s *DiskStorage) Save(_ context.Context, upload *Upload) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(upload.Filename))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, upload.Content); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return path, nil
}
