package repository

import (
	"context"

	"patrol/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for patrol location and checkpoint persistence.
var (
	// ErrPatrolLocationNotFound is returned when a patrol location is not found.
	ErrPatrolLocationNotFound = errors.New("patrol location not found")
	// ErrCheckpointNotFound is returned when a checkpoint is not found.
	ErrCheckpointNotFound = errors.New("checkpoint not found")
)

// PatrolLocationRepository defines the interface for patrol location lookups.
type PatrolLocationRepository interface {
	// FindLocationByID retrieves a patrol location by its unique ID.
	FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.PatrolLocation, error)
}

// CheckpointRepository defines the interface for checkpoint lookups.
type CheckpointRepository interface {
	// FindCheckpointByID retrieves a checkpoint by its unique ID.
	FindCheckpointByID(ctx context.Context, id uuid.UUID) (*entity.Checkpoint, error)

	// FindByLocationID retrieves all checkpoints of a patrol location.
	FindByLocationID(ctx context.Context, locationID uuid.UUID) ([]*entity.Checkpoint, error)

	// FindNearby retrieves checkpoints within radiusMeters of the point,
	// nearest first.
	FindNearby(ctx context.Context, lat, lon, radiusMeters float64) ([]*entity.NearbyCheckpoint, error)
}
