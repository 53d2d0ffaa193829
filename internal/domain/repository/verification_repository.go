package repository

import (
	"context"

	"patrol/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrVerificationNotFound is returned when a verification is not found.
	ErrVerificationNotFound = errors.New("checkpoint verification not found")
	// ErrVerificationExists is returned by Create when the user already verified the checkpoint.
	ErrVerificationExists = errors.New("checkpoint already verified by user")
)

// CheckpointVerificationRepository defines the interface for verification persistence.
type CheckpointVerificationRepository interface {
	// FindByUserAndCheckpoint returns ErrVerificationNotFound when the pair has no record.
	FindByUserAndCheckpoint(ctx context.Context, userID, checkpointID uuid.UUID) (*entity.CheckpointVerification, error)

	// FindByUserAndLocation retrieves all verifications of a user within a patrol location.
	FindByUserAndLocation(ctx context.Context, userID, locationID uuid.UUID) ([]*entity.CheckpointVerification, error)

	// FindVerificationByID reads a verification from the primary database.
	FindVerificationByID(ctx context.Context, id uuid.UUID) (*entity.CheckpointVerification, error)

	// Create inserts the verification if the (user, checkpoint) pair has none yet.
	// It returns ErrVerificationExists when another record won.
	Create(ctx context.Context, verification *entity.CheckpointVerification) error
}
