package impl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"patrol/config"
	deliverycontext "patrol/internal/delivery/context"
	"patrol/internal/domain/entity"
	domainerrors "patrol/internal/domain/errors"
	"patrol/internal/domain/geo"
	"patrol/internal/domain/repository"
	"patrol/internal/domain/service"
	"patrol/internal/usecase"
	"patrol/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var errPhotoTooLarge = errors.New("photo exceeds size limit")

// photoService implements the PhotoUsecase interface.
type photoService struct {
	photoRepo repository.PhotoRepository
	storage   service.StorageService
	inspector service.PhotoInspector
	clock     service.Clock
	folder    string
	maxBytes  int64
	logger    *slog.Logger
}

// PhotoServiceParams holds dependencies for PhotoService, injected by Fx.
type PhotoServiceParams struct {
	fx.In

	Config    *config.Config
	PhotoRepo repository.PhotoRepository
	Storage   service.StorageService
	Inspector service.PhotoInspector
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewPhotoService is the constructor for photoService.
func NewPhotoService(params PhotoServiceParams) usecase.PhotoUsecase {
	return &photoService{
		photoRepo: params.PhotoRepo,
		storage:   params.Storage,
		inspector: params.Inspector,
		clock:     params.Clock,
		folder:    params.Config.Storage.PhotoFolder,
		maxBytes:  params.Config.Storage.MaxPhotoBytes,
		logger:    params.Logger,
	}
}

func (srv *photoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores the blob first and the metadata second. When the metadata write fails the
// blob is deleted again so that no orphan stays behind.
func (srv *photoService) Upload(ctx context.Context, userID uuid.UUID, input *usecase.UploadPhotoInput) (*entity.Photo, error) {
	if input == nil || input.Content == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("photo content is required")
	}
	if !geo.IsValidCoordinate(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid coordinates")
	}

	content := bufio.NewReaderSize(input.Content, service.PhotoHeadSize)
	head, err := content.Peek(service.PhotoHeadSize)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("failed to read photo: " + err.Error())
	}
	if len(head) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("photo is empty")
	}

	meta := srv.inspector.Inspect(head)
	if !strings.HasPrefix(meta.ContentType, "image/") {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unsupported content type %q", meta.ContentType))
	}

	counter := &countingReader{r: content, limit: srv.maxBytes}

	path, err := srv.storage.Store(ctx, counter, srv.folder, meta.ContentType)
	if err != nil {
		if errors.Is(err, errPhotoTooLarge) {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("photo exceeds %s", util.FormatBytes(srv.maxBytes)))
		}

		srv.log(ctx).Error("Failed to store photo blob",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPhotoStoreFailed.WithDetails(err.Error())
	}

	photo := &entity.Photo{
		UserID:      userID,
		Timestamp:   srv.photoTimestamp(input, meta).UTC(),
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		FilePath:    path,
		ContentType: meta.ContentType,
		SizeBytes:   counter.n,
		CapturedAt:  meta.CapturedAt,
	}

	if err := srv.photoRepo.Create(ctx, photo); err != nil {
		srv.log(ctx).Error("Failed to save photo metadata, removing blob",
			slog.String("path", path),
			slog.Any("error", err),
		)

		// The request context may already be cancelled; the blob must still go.
		if delErr := srv.storage.Delete(context.WithoutCancel(ctx), path); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned photo blob",
				slog.String("path", path),
				slog.Any("error", delErr),
			)
		}

		return nil, domainerrors.ErrPhotoMetadataFailed.WithDetails(err.Error())
	}

	srv.log(ctx).Info("Photo uploaded",
		slog.String("photo_id", photo.ID.String()),
		slog.String("path", path),
		slog.Int64("size_bytes", photo.SizeBytes),
	)

	return photo, nil
}

// photoTimestamp prefers the client's timestamp, then the EXIF capture time, then the server clock.
func (srv *photoService) photoTimestamp(input *usecase.UploadPhotoInput, meta service.PhotoMetadata) time.Time {
	switch {
	case input.Timestamp != nil && !input.Timestamp.IsZero():
		return *input.Timestamp
	case meta.CapturedAt != nil:
		return *meta.CapturedAt
	default:
		return srv.clock.Now()
	}
}

// DeletePhoto removes the blob, then the metadata. A blob that cannot be removed is only
// logged; a metadata failure is returned.
func (srv *photoService) DeletePhoto(ctx context.Context, photoID uuid.UUID) error {
	photo, err := srv.findPhoto(ctx, photoID)
	if err != nil {
		return err
	}

	if err := srv.storage.Delete(ctx, photo.FilePath); err != nil {
		if errors.Is(err, service.ErrBlobNotFound) {
			srv.log(ctx).Debug("Photo blob already gone", slog.String("path", photo.FilePath))
		} else {
			srv.log(ctx).Warn("Failed to delete photo blob",
				slog.String("photo_id", photoID.String()),
				slog.String("path", photo.FilePath),
				slog.Any("error", err),
			)
		}
	}

	if err := srv.photoRepo.Delete(ctx, photoID); err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return domainerrors.ErrPhotoNotFound
		}

		srv.log(ctx).Error("Failed to delete photo metadata",
			slog.String("photo_id", photoID.String()),
			slog.Any("error", err),
		)

		return domainerrors.ErrPhotoDeleteFailed.WithDetails(err.Error())
	}

	srv.log(ctx).Info("Photo deleted", slog.String("photo_id", photoID.String()))

	return nil
}

// GetPhoto returns the metadata of a photo.
func (srv *photoService) GetPhoto(ctx context.Context, photoID uuid.UUID) (*entity.Photo, error) {
	return srv.findPhoto(ctx, photoID)
}

// OpenPhoto returns the metadata together with a reader over the stored blob.
// The caller closes the reader.
func (srv *photoService) OpenPhoto(ctx context.Context, photoID uuid.UUID) (*entity.Photo, io.ReadCloser, error) {
	photo, err := srv.findPhoto(ctx, photoID)
	if err != nil {
		return nil, nil, err
	}

	exists, err := srv.storage.Exists(ctx, photo.FilePath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to check photo blob")
	}
	if !exists {
		return nil, nil, domainerrors.ErrPhotoNotFound.WithDetails("photo content is missing")
	}

	content, err := srv.storage.Read(ctx, photo.FilePath)
	if err != nil {
		if errors.Is(err, service.ErrBlobNotFound) {
			return nil, nil, domainerrors.ErrPhotoNotFound.WithDetails("photo content is missing")
		}

		return nil, nil, errors.Wrap(err, "failed to open photo blob")
	}

	return photo, content, nil
}

func (srv *photoService) findPhoto(ctx context.Context, photoID uuid.UUID) (*entity.Photo, error) {
	photo, err := srv.photoRepo.FindPhotoByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return nil, domainerrors.ErrPhotoNotFound
		}

		return nil, errors.Wrap(err, "failed to find photo")
	}

	return photo, nil
}

// countingReader counts the bytes read through it and fails once more than limit bytes
// have passed. A non-positive limit disables the check.
type countingReader struct {
	r     io.Reader
	limit int64
	n     int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	if c.limit > 0 && c.n > c.limit {
		return n, errPhotoTooLarge
	}

	return n, err
}
