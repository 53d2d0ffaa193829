package postgres

import (
	"context"

	"patrol/internal/domain/entity"
	domainerrors "patrol/internal/domain/errors"
	"patrol/internal/domain/repository"
	"patrol/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// photoRepository implements the repository.PhotoRepository interface.
type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository is the constructor for photoRepository.
func NewPhotoRepository(db *gorm.DB) repository.PhotoRepository {
	return &photoRepository{
		db: db,
	}
}

// Create persists the photo metadata.
func (repo *photoRepository) Create(ctx context.Context, photo *entity.Photo) error {
	photoM := fromPhotoDomain(photo)

	if err := repo.db.WithContext(ctx).Create(photoM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required photo information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create photo")
	}

	// Update the entity with generated values
	photo.ID = photoM.ID
	photo.CreatedAt = photoM.CreatedAt

	return nil
}

// FindPhotoByID retrieves a photo by its unique ID.
func (repo *photoRepository) FindPhotoByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error) {
	var photoM model.PhotoModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&photoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPhotoNotFound
		}

		return nil, errors.Wrap(err, "failed to find photo by ID")
	}

	return toPhotoDomain(&photoM), nil
}

// Delete removes a photo record.
func (repo *photoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PhotoModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete photo")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPhotoNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPhotoDomain converts a GORM PhotoModel to a domain Photo entity.
func toPhotoDomain(data *model.PhotoModel) *entity.Photo {
	if data == nil {
		return nil
	}

	return &entity.Photo{
		ID:          data.ID,
		UserID:      data.UserID,
		Timestamp:   data.Timestamp.UTC(),
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		FilePath:    data.FilePath,
		ContentType: data.ContentType,
		SizeBytes:   data.SizeBytes,
		CapturedAt:  data.CapturedAt,
		CreatedAt:   data.CreatedAt,
	}
}

// fromPhotoDomain converts a domain Photo entity to a GORM PhotoModel.
func fromPhotoDomain(data *entity.Photo) *model.PhotoModel {
	if data == nil {
		return nil
	}

	return &model.PhotoModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Timestamp:   data.Timestamp.UTC(),
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		FilePath:    data.FilePath,
		ContentType: data.ContentType,
		SizeBytes:   data.SizeBytes,
		CapturedAt:  data.CapturedAt,
		CreatedAt:   data.CreatedAt,
	}
}
