package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiskStorage_Save(t *testing.T) {
	dir := t.TempDir()
	s := NewDiskStorage(dir)

	path, err := s.Save(context.Background(), &Upload{
		Filename:    "avatar.png",
		ContentType: "image/png",
		Content:     strings.NewReader("png-bytes"),
	})

	assert.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(path))
	assert.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestDiskStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s := NewDiskStorage(dir)

	path, err := s.Save(context.Background(), &Upload{
		Filename: "noext",
		Content:  strings.NewReader("x"),
	})

	assert.NoError(t, err)
	assert.FileExists(t, path)
}
