package model

import (
	"time"

	"github.com/google/uuid"
)

// PatrolLocationModel is the GORM-specific struct for the 'patrol_locations' table.
type PatrolLocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null"`
	Longitude float64   `gorm:"type:decimal(11,8);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PatrolLocationModel) TableName() string {
	return "patrol_locations"
}

// CheckpointModel is the GORM-specific struct for the 'checkpoints' table.
type CheckpointModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LocationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(200);not null"`
	Latitude   float64   `gorm:"type:decimal(10,8);not null;index:idx_checkpoints_lat_lng,priority:1"`
	Longitude  float64   `gorm:"type:decimal(11,8);not null;index:idx_checkpoints_lat_lng,priority:2"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Location *PatrolLocationModel `gorm:"foreignKey:LocationID"`
}

// TableName explicitly sets the table name for GORM.
func (CheckpointModel) TableName() string {
	return "checkpoints"
}
