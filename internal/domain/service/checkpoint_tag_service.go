package service

import (
	"patrol/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidCheckpointTag is returned when a scanned payload is not a checkpoint tag.
var ErrInvalidCheckpointTag = errors.New("invalid checkpoint tag")

// CheckpointTagService renders and decodes the QR tags mounted at checkpoints.
type CheckpointTagService interface {
	// GenerateCheckpointTag renders a PNG QR code for the checkpoint.
	GenerateCheckpointTag(checkpoint *entity.Checkpoint) ([]byte, error)

	// ParseCheckpointTag decodes a scanned tag payload into the checkpoint ID.
	ParseCheckpointTag(payload string) (uuid.UUID, error)
}
