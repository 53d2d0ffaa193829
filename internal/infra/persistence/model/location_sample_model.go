package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationSampleModel is the GORM-specific struct for the 'location_samples' table.
// The partial index on unsynced rows keeps the sync worker's scan cheap.
type LocationSampleModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_location_samples_user_time,priority:1"`
	Latitude  float64   `gorm:"type:double precision;not null"`
	Longitude float64   `gorm:"type:double precision;not null"`
	Accuracy  float64   `gorm:"type:double precision;not null;default:0"`
	Timestamp time.Time `gorm:"type:timestamptz;not null;index:idx_location_samples_user_time,priority:2"`
	IsSynced  bool      `gorm:"not null;default:false;index:idx_location_samples_unsynced,where:is_synced = false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationSampleModel) TableName() string {
	return "location_samples"
}
