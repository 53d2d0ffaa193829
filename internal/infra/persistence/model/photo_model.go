package model

import (
	"time"

	"github.com/google/uuid"
)

// PhotoModel is the GORM-specific struct for the 'photos' table.
type PhotoModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Timestamp   time.Time  `gorm:"type:timestamptz;not null"`
	Latitude    float64    `gorm:"type:decimal(10,8);not null"`
	Longitude   float64    `gorm:"type:decimal(11,8);not null"`
	FilePath    string     `gorm:"type:varchar(512);not null;uniqueIndex"`
	ContentType string     `gorm:"type:varchar(100);not null"`
	SizeBytes   int64      `gorm:"not null;default:0"`
	CapturedAt  *time.Time `gorm:"type:timestamptz"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PhotoModel) TableName() string {
	return "photos"
}
