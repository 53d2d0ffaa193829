package entity

import (
	"time"

	"github.com/google/uuid"
)

// VerificationStatus tells a caller whether a verify call created the record.
type VerificationStatus string

const (
	VerificationStatusVerified        VerificationStatus = "Verified"
	VerificationStatusAlreadyVerified VerificationStatus = "AlreadyVerified"
)

// CheckpointVerification records that a user verified a checkpoint.
// There is at most one per (UserID, CheckpointID); it is never updated.
type CheckpointVerification struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	CheckpointID uuid.UUID `json:"checkpoint_id"`
	LocationID   uuid.UUID `json:"location_id"`
	Latitude     float64   `json:"latitude"`  // Claimed by the client.
	Longitude    float64   `json:"longitude"` // Claimed by the client.
	Timestamp    time.Time `json:"timestamp"` // Server clock at creation.
}
