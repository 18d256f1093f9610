package storage_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	storage "artisthub/internal/storage/filestorage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileStorage(t *testing.T) *storage.LocalFileStorage {
	t.Helper()

	fs, err := storage.NewLocalFileStorage(t.TempDir(), "/media")
	require.NoError(t, err)

	return fs
}

func createTestUpload(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)

	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile("file")
	require.NoError(t, err)
	file.Close()

	return header
}

func TestLocalFileStorage_Save(t *testing.T) {
	fs := setupFileStorage(t)
	ctx := context.Background()

	header := createTestUpload(t, "sunset.jpg", "fake image bytes")

	relPath, size, err := fs.Save(ctx, header, "artworks")
	require.NoError(t, err)

	assert.Equal(t, int64(len("fake image bytes")), size)
	assert.Equal(t, "artworks", filepath.Dir(relPath))
	assert.True(t, strings.HasSuffix(relPath, "_sunset.jpg"))

	data, err := os.ReadFile(fs.GetFullPath(relPath))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestLocalFileStorage_Save_UniqueNames(t *testing.T) {
	fs := setupFileStorage(t)
	ctx := context.Background()

	first, _, err := fs.Save(ctx, createTestUpload(t, "cat.jpg", "one"), "artworks")
	require.NoError(t, err)

	second, _, err := fs.Save(ctx, createTestUpload(t, "cat.jpg", "two"), "artworks")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalFileStorage_Save_CancelledContext(t *testing.T) {
	fs := setupFileStorage(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := fs.Save(ctx, createTestUpload(t, "cat.jpg", "x"), "artworks")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalFileStorage_Delete(t *testing.T) {
	fs := setupFileStorage(t)
	ctx := context.Background()

	relPath, _, err := fs.Save(ctx, createTestUpload(t, "gone.jpg", "x"), "events")
	require.NoError(t, err)

	require.NoError(t, fs.Delete(ctx, relPath))

	_, err = os.Stat(fs.GetFullPath(relPath))
	assert.True(t, os.IsNotExist(err))
}
