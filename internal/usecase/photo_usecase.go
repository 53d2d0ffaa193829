package usecase

import (
	"context"
	"io"
	"time"

	"patrol/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadPhotoInput describes an evidence photo being uploaded.
type UploadPhotoInput struct {
	Content   io.Reader
	Latitude  float64
	Longitude float64
	// Timestamp is the client capture time; nil falls back to EXIF, then the server clock.
	Timestamp *time.Time
}

// PhotoUsecase stores evidence photos and keeps blobs and metadata consistent.
type PhotoUsecase interface {
	Upload(ctx context.Context, userID uuid.UUID, input *UploadPhotoInput) (*entity.Photo, error)
	DeletePhoto(ctx context.Context, photoID uuid.UUID) error
	GetPhoto(ctx context.Context, photoID uuid.UUID) (*entity.Photo, error)
	// OpenPhoto returns the metadata and a stream of the blob; the caller closes the stream.
	OpenPhoto(ctx context.Context, photoID uuid.UUID) (*entity.Photo, io.ReadCloser, error)
}
