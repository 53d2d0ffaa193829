// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationSample is a single GPS fix reported by a guard's device.
type LocationSample struct {
	ID        int64     `json:"id"`         // Assigned on persist, never changes afterwards.
	UserID    uuid.UUID `json:"user_id"`    // The guard who reported the sample.
	Latitude  float64   `json:"latitude"`   // Degrees, [-90, 90].
	Longitude float64   `json:"longitude"`  // Degrees, [-180, 180].
	Accuracy  float64   `json:"accuracy"`   // Horizontal accuracy in meters.
	Timestamp time.Time `json:"timestamp"`  // Device time of the fix, UTC.
	IsSynced  bool      `json:"is_synced"`  // Only ever moves from false to true.
	CreatedAt time.Time `json:"created_at"` // Server-side insertion time.
}
