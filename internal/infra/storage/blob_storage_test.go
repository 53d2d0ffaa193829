package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"patrol/config"
	"patrol/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) service.StorageService {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBucketStorage(bucket, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection dropped")
}

func TestBlobStorage_StoreReadDelete(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	path, err := store.Store(ctx, bytes.NewReader([]byte("jpeg-bytes")), "photos", "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "photos/"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	exists, err := store.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)

	r, err := store.Read(ctx, path)
	require.NoError(t, err)
	content, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "jpeg-bytes", string(content))

	require.NoError(t, store.Delete(ctx, path))

	exists, err = store.Exists(ctx, path)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_UniquePaths(t *testing.T) {
	store := newTestStorage(t)

	first, err := store.Store(context.Background(), strings.NewReader("a"), "photos", "image/png")
	require.NoError(t, err)
	second, err := store.Store(context.Background(), strings.NewReader("a"), "photos", "image/png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBlobStorage_MissingBlob(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	assert.ErrorIs(t, store.Delete(ctx, "photos/missing.jpg"), service.ErrBlobNotFound)

	_, err := store.Read(ctx, "photos/missing.jpg")
	assert.ErrorIs(t, err, service.ErrBlobNotFound)
}

func TestBlobStorage_FailedCopyLeavesNoBlob(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	store := NewBucketStorage(bucket, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := store.Store(context.Background(), failingReader{}, "photos", "image/jpeg")
	require.Error(t, err)

	iter := bucket.List(nil)
	_, err = iter.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestNewBlobKey(t *testing.T) {
	assert.True(t, strings.HasPrefix(newBlobKey("/photos/", "image/jpeg"), "photos/"))
	assert.False(t, strings.Contains(newBlobKey("photos", "application/octet-stream"), "."))
}

func TestNewBlobStorage(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewBlobStorage(StorageParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: logger,
	})
	assert.Error(t, err)

	store, err := NewBlobStorage(StorageParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{Storage: &config.StorageConfig{BucketURL: "mem://"}},
		Logger: logger,
	})
	require.NoError(t, err)
	assert.NotNil(t, store)
}
