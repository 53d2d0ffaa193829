package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatrolLocation is a guarded site that owns a set of checkpoints.
type PatrolLocation struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Checkpoint is a fixed point inside a patrol location that guards must visit.
type Checkpoint struct {
	ID         uuid.UUID `json:"id"`
	LocationID uuid.UUID `json:"location_id"`
	Name       string    `json:"name"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NearbyCheckpoint is a checkpoint together with its distance from a query point.
type NearbyCheckpoint struct {
	Checkpoint     *Checkpoint `json:"checkpoint"`
	DistanceMeters float64     `json:"distance_meters"`
}

// PatrolStatus is the per-user completion projection of a patrol location.
// It is derived on demand and never persisted.
type PatrolStatus struct {
	LocationID          uuid.UUID `json:"location_id"`
	LocationName        string    `json:"location_name"`
	TotalCheckpoints    int       `json:"total_checkpoints"`
	VerifiedCheckpoints int       `json:"verified_checkpoints"`
	IsComplete          bool      `json:"is_complete"`
}

// NewPatrolStatus builds a status and derives IsComplete.
func NewPatrolStatus(location *PatrolLocation, total, verified int) *PatrolStatus {
	return &PatrolStatus{
		LocationID:          location.ID,
		LocationName:        location.Name,
		TotalCheckpoints:    total,
		VerifiedCheckpoints: verified,
		IsComplete:          total > 0 && verified == total,
	}
}
