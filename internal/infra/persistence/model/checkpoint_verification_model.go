package model

import (
	"time"

	"github.com/google/uuid"
)

// CheckpointVerificationModel is the GORM-specific struct for the 'checkpoint_verifications' table.
// The composite unique index is what makes concurrent verify calls race-safe.
type CheckpointVerificationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_checkpoint_verifications_user_checkpoint,priority:1;index:idx_checkpoint_verifications_user_location,priority:1"`
	CheckpointID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_checkpoint_verifications_user_checkpoint,priority:2"`
	LocationID   uuid.UUID `gorm:"type:uuid;not null;index:idx_checkpoint_verifications_user_location,priority:2"`
	Latitude     float64   `gorm:"type:decimal(10,8);not null"`
	Longitude    float64   `gorm:"type:decimal(11,8);not null"`
	Timestamp    time.Time `gorm:"type:timestamptz;not null"`
}

// TableName explicitly sets the table name for GORM.
func (CheckpointVerificationModel) TableName() string {
	return "checkpoint_verifications"
}
