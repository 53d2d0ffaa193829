package repository

import (
	"context"

	"patrol/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPhotoNotFound is returned when a photo record is not found.
var ErrPhotoNotFound = errors.New("photo not found")

// PhotoRepository defines the interface for photo metadata persistence.
type PhotoRepository interface {
	// Create persists the photo and assigns its ID.
	Create(ctx context.Context, photo *entity.Photo) error

	// FindPhotoByID retrieves a photo by its unique ID.
	FindPhotoByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error)

	// Delete removes a photo record.
	Delete(ctx context.Context, id uuid.UUID) error
}
