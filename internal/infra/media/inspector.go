// Package media inspects uploaded photos.
package media

import (
	"bytes"
	"log/slog"
	"strings"

	"patrol/internal/domain/service"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rwcarlsen/goexif/exif"
)

type photoInspector struct {
	logger *slog.Logger
}

// NewPhotoInspector creates a PhotoInspector backed by mimetype and goexif.
func NewPhotoInspector(logger *slog.Logger) service.PhotoInspector {
	return &photoInspector{logger: logger}
}

// Inspect detects the content type and, when EXIF is present, the capture time.
func (i *photoInspector) Inspect(head []byte) service.PhotoMetadata {
	meta := service.PhotoMetadata{
		ContentType: detectContentType(head),
	}

	if meta.ContentType != "image/jpeg" && meta.ContentType != "image/tiff" {
		return meta
	}

	x, err := exif.Decode(bytes.NewReader(head))
	if err != nil {
		i.logger.Debug("No readable EXIF in photo", slog.Any("error", err))

		return meta
	}

	capturedAt, err := x.DateTime()
	if err != nil || capturedAt.IsZero() {
		return meta
	}

	utc := capturedAt.UTC()
	meta.CapturedAt = &utc

	return meta
}

func detectContentType(head []byte) string {
	mediaType, _, _ := strings.Cut(mimetype.Detect(head).String(), ";")

	return strings.TrimSpace(mediaType)
}
