package filestorages

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStorage_EmptyRoot(t *testing.T) {
	t.Parallel()

	storage, err := NewFileStorage("")
	assert.Nil(t, storage)
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

func TestPut_ValidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	validKeys := []string{
		"report.json",
		"ingest-runs/01ARZ3NDEKTSV4RRFFQ69G5FAV.json",
		"nested/deep/path/file.txt",
		"file-with-dashes.txt",
		"file_with_underscores.txt",
	}

	for _, key := range validKeys {
		t.Run(key, func(t *testing.T) {
			result, err := storage.Put(ctx, key, strings.NewReader("test data"), PutOptions{})
			require.NoError(t, err, "key %q should be valid", key)
			assert.Equal(t, key, result.FileKey)

			content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, key))
			require.NoError(t, err)
			assert.Equal(t, "test data", string(content))
		})
	}
}

func TestPut_AllowOverwriteFalse_FileExists(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.Put(ctx, "run.json", strings.NewReader("first"), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	_, err = storage.Put(ctx, "run.json", strings.NewReader("second"), PutOptions{AllowOverwrite: false})
	assert.ErrorIs(t, err, ErrFileAlreadyExists)

	content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, "run.json"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(content))
}

func TestPut_AllowOverwriteTrue_FileExists(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.Put(ctx, "run.json", strings.NewReader("first"), PutOptions{})
	require.NoError(t, err)

	result, err := storage.Put(ctx, "run.json", strings.NewReader("second"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)
	assert.Equal(t, "run.json", result.FileKey)

	content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, "run.json"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestPut_LeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.Put(ctx, "runs/a.json", strings.NewReader("a"), PutOptions{})
	require.NoError(t, err)
	_, err = storage.Put(ctx, "runs/a.json", strings.NewReader("b"), PutOptions{})
	require.ErrorIs(t, err, ErrFileAlreadyExists)

	entries, err := os.ReadDir(filepath.Join(storage.(*fileStorage).dir, "runs"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.json", entries[0].Name())
}

func TestPut_InvalidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	invalidKeys := []string{
		"",
		"/absolute/path",
		"..",
		"../file.txt",
		"../../etc/passwd",
		"ingest-runs/../../etc/passwd",
		"../",
		"a/../..",
		".",
	}

	for _, key := range invalidKeys {
		t.Run(key, func(t *testing.T) {
			_, err := storage.Put(ctx, key, strings.NewReader("data"), PutOptions{})
			assert.ErrorIs(t, err, ErrInvalidKey, "key %q should be invalid", key)

			_, err = storage.Get(ctx, key)
			assert.ErrorIs(t, err, ErrInvalidKey, "key %q should be invalid", key)
		})
	}
}

func TestGet_FileNotFound(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	_, err := storage.Get(context.Background(), "nonexistent.json")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestPutGet_RoundTrip(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	key := "ingest-runs/01ARZ3NDEKTSV4RRFFQ69G5FAV.json"
	data := `{"runId":"01ARZ3NDEKTSV4RRFFQ69G5FAV","storedCount":2}`

	_, err := storage.Put(ctx, key, strings.NewReader(data), PutOptions{})
	require.NoError(t, err)

	readCloser, err := storage.Get(ctx, key)
	require.NoError(t, err)
	defer readCloser.Close()

	content, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	assert.Equal(t, data, string(content))
}

func newTestStorage(t *testing.T) FileStorage {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return storage
}
