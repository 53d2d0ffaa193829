package entity

import (
	"time"

	"github.com/google/uuid"
)

// Photo is the metadata record of a stored evidence photo.
type Photo struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Timestamp   time.Time  `json:"timestamp"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	FilePath    string     `json:"file_path"` // Key of the blob; set only after the blob is stored.
	ContentType string     `json:"content_type"`
	SizeBytes   int64      `json:"size_bytes"`
	CapturedAt  *time.Time `json:"captured_at,omitempty"` // EXIF capture time, when present.
	CreatedAt   time.Time  `json:"created_at"`
}
