package usecase

import (
	"context"

	"patrol/internal/domain/entity"

	"github.com/google/uuid"
)

// VerifyCheckpointInput carries the checkpoint and the coordinates claimed by the client.
type VerifyCheckpointInput struct {
	CheckpointID uuid.UUID `json:"checkpoint_id" validate:"required"`
	Latitude     float64   `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude    float64   `json:"longitude" validate:"gte=-180,lte=180"`
}

// VerificationResult is the outcome of a verify call.
type VerificationResult struct {
	Verification *entity.CheckpointVerification `json:"verification"`
	Status       entity.VerificationStatus      `json:"status"`
	// DistanceMeters from the claimed point to the checkpoint. Informational only.
	DistanceMeters float64 `json:"distance_meters"`
}

// CheckpointUsecase verifies checkpoints and reports patrol progress.
type CheckpointUsecase interface {
	Verify(ctx context.Context, userID uuid.UUID, input *VerifyCheckpointInput) (*VerificationResult, error)
	VerifyByTag(ctx context.Context, userID uuid.UUID, tagPayload string, lat, lon float64) (*VerificationResult, error)
	GetPatrolStatus(ctx context.Context, userID, locationID uuid.UUID) (*entity.PatrolStatus, error)
	GetNearbyCheckpoints(ctx context.Context, lat, lon, radiusMeters float64) ([]*entity.NearbyCheckpoint, error)
	GenerateCheckpointTag(ctx context.Context, checkpointID uuid.UUID) ([]byte, error)
}
