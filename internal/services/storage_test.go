package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalFileStore(dir)
	require.NoError(t, err)

	key, err := store.Save(context.Background(), "resume.pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".pdf"))

	path, cleanup, err := store.Fetch(context.Background(), key)
	require.NoError(t, err)
	defer cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))
}

func TestLocalFileStoreDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalFileStore(dir)
	require.NoError(t, err)

	key, err := store.Save(context.Background(), "resume.pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), key))

	_, err = os.Stat(filepath.Join(dir, key))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalFileStoreFetchMissingKey(t *testing.T) {
	store, err := NewLocalFileStore(t.TempDir())
	require.NoError(t, err)

	_, _, err = store.Fetch(context.Background(), "does-not-exist.pdf")
	assert.Error(t, err)
}

func TestLocalFileStoreCreatesUploadDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewLocalFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestUniqueFilenameKeepsExtension(t *testing.T) {
	a := uniqueFilename("resume.pdf")
	b := uniqueFilename("resume.pdf")

	assert.True(t, strings.HasSuffix(a, ".pdf"))
	assert.NotEqual(t, a, b)
}
