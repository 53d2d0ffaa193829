package service

import "time"

// PhotoHeadSize is how many leading bytes Inspect needs to see. EXIF lives in the
// first APP1 segment, which is capped at 64KiB.
const PhotoHeadSize = 64 * 1024

// PhotoMetadata is what can be learned from the first bytes of a photo.
type PhotoMetadata struct {
	ContentType string
	CapturedAt  *time.Time
}

// PhotoInspector sniffs content type and capture time from the head of a photo.
type PhotoInspector interface {
	Inspect(head []byte) PhotoMetadata
}
