// Package storage stores photo blobs in any bucket gocloud.dev/blob can open.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"patrol/config"
	"patrol/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	// Bucket drivers selected by the scheme of storage.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

var extensionsByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/heic": ".heic",
}

type blobStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// StorageParams holds dependencies for the blob storage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the configured bucket and closes it on shutdown.
func NewBlobStorage(params StorageParams) (service.StorageService, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket url is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", params.Config.Storage.BucketURL)
	}

	params.Logger.Info("Photo bucket opened", slog.String("bucket", params.Config.Storage.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBucketStorage(bucket, params.Logger), nil
}

// NewBucketStorage wraps an already opened bucket.
func NewBucketStorage(bucket *blob.Bucket, logger *slog.Logger) service.StorageService {
	return &blobStorage{
		bucket: bucket,
		logger: logger,
	}
}

// Store streams content into a new uniquely named blob under folder.
func (s *blobStorage) Store(ctx context.Context, content io.Reader, folder, contentType string) (string, error) {
	key := newBlobKey(folder, contentType)

	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(w, content); err != nil {
		// Cancelling before Close aborts the write so no partial blob is left behind.
		cancel()
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write blob")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit blob")
	}

	s.logger.DebugContext(ctx, "Blob stored", slog.String("path", key))

	return key, nil
}

func (s *blobStorage) Delete(ctx context.Context, path string) error {
	if err := s.bucket.Delete(ctx, path); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return service.ErrBlobNotFound
		}

		return errors.Wrapf(err, "failed to delete blob %s", path)
	}

	return nil
}

func (s *blobStorage) Exists(ctx context.Context, path string) (bool, error) {
	exists, err := s.bucket.Exists(ctx, path)
	if err != nil {
		return false, errors.Wrapf(err, "failed to stat blob %s", path)
	}

	return exists, nil
}

func (s *blobStorage) Read(ctx context.Context, path string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(ctx, path, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrBlobNotFound
		}

		return nil, errors.Wrapf(err, "failed to open blob %s", path)
	}

	return r, nil
}

func newBlobKey(folder, contentType string) string {
	ext := extensionsByContentType[strings.ToLower(contentType)]

	return path.Join(strings.Trim(folder, "/"), uuid.NewString()+ext)
}
