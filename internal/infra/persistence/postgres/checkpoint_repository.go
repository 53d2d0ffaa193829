package postgres

import (
	"bytes"
	"context"
	"slices"

	"patrol/internal/domain/entity"
	"patrol/internal/domain/geo"
	"patrol/internal/domain/repository"
	"patrol/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// checkpointRepository implements the repository.CheckpointRepository interface.
type checkpointRepository struct {
	db *gorm.DB
}

// NewCheckpointRepository is the constructor for checkpointRepository.
func NewCheckpointRepository(db *gorm.DB) repository.CheckpointRepository {
	return &checkpointRepository{
		db: db,
	}
}

// FindCheckpointByID retrieves a checkpoint by its unique ID.
func (repo *checkpointRepository) FindCheckpointByID(ctx context.Context, id uuid.UUID) (*entity.Checkpoint, error) {
	var checkpointM model.CheckpointModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&checkpointM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckpointNotFound
		}

		return nil, errors.Wrap(err, "failed to find checkpoint by ID")
	}

	return toCheckpointDomain(&checkpointM), nil
}

// FindByLocationID retrieves all checkpoints of a patrol location.
func (repo *checkpointRepository) FindByLocationID(ctx context.Context, locationID uuid.UUID) ([]*entity.Checkpoint, error) {
	var checkpointModels []*model.CheckpointModel

	if err := repo.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("name ASC, id ASC").
		Find(&checkpointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find checkpoints by location")
	}

	checkpoints := make([]*entity.Checkpoint, 0, len(checkpointModels))
	for _, checkpointM := range checkpointModels {
		checkpoints = append(checkpoints, toCheckpointDomain(checkpointM))
	}

	return checkpoints, nil
}

// FindNearby narrows candidates with a bounding box in SQL and applies the exact
// great-circle radius in Go.
func (repo *checkpointRepository) FindNearby(ctx context.Context, lat, lon, radiusMeters float64) ([]*entity.NearbyCheckpoint, error) {
	bound := geo.BoundAround(lat, lon, radiusMeters)

	var checkpointModels []*model.CheckpointModel

	if err := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon()).
		Find(&checkpointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find nearby checkpoints")
	}

	candidates := make([]*entity.Checkpoint, 0, len(checkpointModels))
	for _, checkpointM := range checkpointModels {
		candidates = append(candidates, toCheckpointDomain(checkpointM))
	}

	return filterWithinRadius(candidates, lat, lon, radiusMeters), nil
}

// filterWithinRadius keeps candidates within radiusMeters, nearest first; ties break on ID.
func filterWithinRadius(candidates []*entity.Checkpoint, lat, lon, radiusMeters float64) []*entity.NearbyCheckpoint {
	nearby := make([]*entity.NearbyCheckpoint, 0, len(candidates))
	for _, checkpoint := range candidates {
		distance := geo.DistanceMeters(lat, lon, checkpoint.Latitude, checkpoint.Longitude)
		if distance <= radiusMeters {
			nearby = append(nearby, &entity.NearbyCheckpoint{
				Checkpoint:     checkpoint,
				DistanceMeters: distance,
			})
		}
	}

	slices.SortStableFunc(nearby, func(a, b *entity.NearbyCheckpoint) int {
		switch {
		case a.DistanceMeters < b.DistanceMeters:
			return -1
		case a.DistanceMeters > b.DistanceMeters:
			return 1
		default:
			return bytes.Compare(a.Checkpoint.ID[:], b.Checkpoint.ID[:])
		}
	})

	return nearby
}

// --- Mapper Functions ---

// toCheckpointDomain converts a GORM CheckpointModel to a domain Checkpoint entity.
func toCheckpointDomain(data *model.CheckpointModel) *entity.Checkpoint {
	if data == nil {
		return nil
	}

	return &entity.Checkpoint{
		ID:         data.ID,
		LocationID: data.LocationID,
		Name:       data.Name,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
