package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mymirro/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalUpload(t *testing.T) {
	dir := t.TempDir()
	local := storage.NewLocal(dir, "/uploads")

	url, err := local.Upload(context.Background(), "photo.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, "-photo.jpg"))

	content, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))
}

func TestLocalUpload_StripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	local := storage.NewLocal(dir, "/uploads")

	// A filename with directory components must not escape the upload dir.
	url, err := local.Upload(context.Background(), "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, "-passwd"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLocalUpload_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	local := storage.NewLocal(dir, "/uploads")

	_, err := local.Upload(context.Background(), "a.txt", strings.NewReader("x"))
	assert.NoError(t, err)
}
