package postgres

import (
	"context"

	"patrol/internal/domain/entity"
	domainerrors "patrol/internal/domain/errors"
	"patrol/internal/domain/repository"
	"patrol/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// insertBatchSize caps rows per INSERT statement; postgres allows 65535 bind parameters.
const insertBatchSize = 1000

// ErrSyncStatusRegression is returned when a caller tries to mark samples unsynced.
var ErrSyncStatusRegression = errors.New("sync status can only move from unsynced to synced")

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// AddRange inserts all samples and returns their ids in input order.
func (repo *locationRepository) AddRange(ctx context.Context, samples []*entity.LocationSample) ([]int64, error) {
	if len(samples) == 0 {
		return []int64{}, nil
	}

	sampleModels := make([]*model.LocationSampleModel, 0, len(samples))
	for _, sample := range samples {
		sampleM := fromLocationSampleDomain(sample)
		sampleM.ID = 0
		sampleM.IsSynced = false
		sampleModels = append(sampleModels, sampleM)
	}

	if err := repo.db.WithContext(ctx).
		CreateInBatches(sampleModels, insertBatchSize).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("location sample rejected by database")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to insert location samples")
	}

	ids := make([]int64, len(sampleModels))
	for idx, sampleM := range sampleModels {
		ids[idx] = sampleM.ID
		samples[idx].ID = sampleM.ID
		samples[idx].IsSynced = false
		samples[idx].CreatedAt = sampleM.CreatedAt
	}

	return ids, nil
}

// FindUnsynced returns up to limit unsynced samples, oldest first.
func (repo *locationRepository) FindUnsynced(ctx context.Context, limit int) ([]*entity.LocationSample, error) {
	var sampleModels []*model.LocationSampleModel

	if err := repo.db.WithContext(ctx).
		Where("is_synced = ?", false).
		Order("timestamp ASC, id ASC").
		Limit(limit).
		Find(&sampleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find unsynced location samples")
	}

	samples := make([]*entity.LocationSample, 0, len(sampleModels))
	for _, sampleM := range sampleModels {
		samples = append(samples, toLocationSampleDomain(sampleM))
	}

	return samples, nil
}

// UpdateSyncStatus marks the ids synced and reports whether every id matched a row.
func (repo *locationRepository) UpdateSyncStatus(ctx context.Context, ids []int64, synced bool) (bool, error) {
	if !synced {
		return false, ErrSyncStatusRegression
	}
	if len(ids) == 0 {
		return true, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.LocationSampleModel{}).
		Where("id IN ?", ids).
		Update("is_synced", true)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update location sync status")
	}

	return result.RowsAffected == int64(len(ids)), nil
}

// --- Mapper Functions ---

// toLocationSampleDomain converts a GORM LocationSampleModel to a domain LocationSample entity.
func toLocationSampleDomain(data *model.LocationSampleModel) *entity.LocationSample {
	if data == nil {
		return nil
	}

	return &entity.LocationSample{
		ID:        data.ID,
		UserID:    data.UserID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Accuracy:  data.Accuracy,
		Timestamp: data.Timestamp.UTC(),
		IsSynced:  data.IsSynced,
		CreatedAt: data.CreatedAt,
	}
}

// fromLocationSampleDomain converts a domain LocationSample entity to a GORM LocationSampleModel.
func fromLocationSampleDomain(data *entity.LocationSample) *model.LocationSampleModel {
	if data == nil {
		return nil
	}

	return &model.LocationSampleModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Accuracy:  data.Accuracy,
		Timestamp: data.Timestamp.UTC(),
		IsSynced:  data.IsSynced,
		CreatedAt: data.CreatedAt,
	}
}
