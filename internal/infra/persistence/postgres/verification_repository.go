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
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// verificationRepository implements the repository.CheckpointVerificationRepository interface.
type verificationRepository struct {
	db *gorm.DB
}

// NewCheckpointVerificationRepository is the constructor for verificationRepository.
func NewCheckpointVerificationRepository(db *gorm.DB) repository.CheckpointVerificationRepository {
	return &verificationRepository{
		db: db,
	}
}

// FindByUserAndCheckpoint retrieves the verification of a checkpoint by a user.
func (repo *verificationRepository) FindByUserAndCheckpoint(ctx context.Context, userID, checkpointID uuid.UUID) (*entity.CheckpointVerification, error) {
	var verificationM model.CheckpointVerificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND checkpoint_id = ?", userID, checkpointID).
		First(&verificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification by user and checkpoint")
	}

	return toVerificationDomain(&verificationM), nil
}

// FindByUserAndLocation retrieves all verifications of a user within a patrol location.
func (repo *verificationRepository) FindByUserAndLocation(ctx context.Context, userID, locationID uuid.UUID) ([]*entity.CheckpointVerification, error) {
	var verificationModels []*model.CheckpointVerificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND location_id = ?", userID, locationID).
		Order("timestamp ASC").
		Find(&verificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find verifications by user and location")
	}

	verifications := make([]*entity.CheckpointVerification, 0, len(verificationModels))
	for _, verificationM := range verificationModels {
		verifications = append(verifications, toVerificationDomain(verificationM))
	}

	return verifications, nil
}

// FindVerificationByID reads from the primary so a row written moments ago is visible
// even when replicas lag.
func (repo *verificationRepository) FindVerificationByID(ctx context.Context, id uuid.UUID) (*entity.CheckpointVerification, error) {
	var verificationM model.CheckpointVerificationModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&verificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification by ID")
	}

	return toVerificationDomain(&verificationM), nil
}

// Create inserts the verification unless the (user, checkpoint) pair already has one.
func (repo *verificationRepository) Create(ctx context.Context, verification *entity.CheckpointVerification) error {
	verificationM := fromVerificationDomain(verification)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "checkpoint_id"}},
			DoNothing: true,
		}).
		Create(verificationM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrVerificationExists
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCheckpointNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to create checkpoint verification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVerificationExists
	}

	// Update the entity with generated values
	verification.ID = verificationM.ID

	return nil
}

// --- Mapper Functions ---

// toVerificationDomain converts a GORM CheckpointVerificationModel to a domain CheckpointVerification entity.
func toVerificationDomain(data *model.CheckpointVerificationModel) *entity.CheckpointVerification {
	if data == nil {
		return nil
	}

	return &entity.CheckpointVerification{
		ID:           data.ID,
		UserID:       data.UserID,
		CheckpointID: data.CheckpointID,
		LocationID:   data.LocationID,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Timestamp:    data.Timestamp.UTC(),
	}
}

// fromVerificationDomain converts a domain CheckpointVerification entity to a GORM CheckpointVerificationModel.
func fromVerificationDomain(data *entity.CheckpointVerification) *model.CheckpointVerificationModel {
	if data == nil {
		return nil
	}

	return &model.CheckpointVerificationModel{
		ID:           data.ID,
		UserID:       data.UserID,
		CheckpointID: data.CheckpointID,
		LocationID:   data.LocationID,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Timestamp:    data.Timestamp.UTC(),
	}
}
