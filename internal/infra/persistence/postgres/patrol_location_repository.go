package postgres

import (
	"context"

	"patrol/internal/domain/entity"
	"patrol/internal/domain/repository"
	"patrol/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// patrolLocationRepository implements the repository.PatrolLocationRepository interface.
type patrolLocationRepository struct {
	db *gorm.DB
}

// NewPatrolLocationRepository is the constructor for patrolLocationRepository.
func NewPatrolLocationRepository(db *gorm.DB) repository.PatrolLocationRepository {
	return &patrolLocationRepository{
		db: db,
	}
}

// FindLocationByID retrieves a patrol location by its unique ID.
func (repo *patrolLocationRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.PatrolLocation, error) {
	var locationM model.PatrolLocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPatrolLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find patrol location by ID")
	}

	return toPatrolLocationDomain(&locationM), nil
}

// --- Mapper Functions ---

// toPatrolLocationDomain converts a GORM PatrolLocationModel to a domain PatrolLocation entity.
func toPatrolLocationDomain(data *model.PatrolLocationModel) *entity.PatrolLocation {
	if data == nil {
		return nil
	}

	return &entity.PatrolLocation{
		ID:        data.ID,
		Name:      data.Name,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
