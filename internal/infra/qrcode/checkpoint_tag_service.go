package qrcode

import (
	"encoding/json"

	"patrol/config"
	"patrol/internal/domain/entity"
	"patrol/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const checkpointTagType = "checkpoint"

type checkpointTagService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// CheckpointTagData is the JSON payload encoded in a checkpoint tag.
type CheckpointTagData struct {
	CheckpointID string `json:"checkpoint_id"`
	LocationID   string `json:"location_id"`
	Type         string `json:"type"`
}

// NewCheckpointTagService creates a QR code backed tag service from config.
func NewCheckpointTagService(cfg *config.Config) service.CheckpointTagService {
	size, level := 0, ""
	if cfg.QRCode != nil {
		size, level = cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel
	}

	return newCheckpointTagService(size, level)
}

func newCheckpointTagService(size int, errorCorrectionLevel string) *checkpointTagService {
	return &checkpointTagService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

func recoveryLevel(errorCorrectionLevel string) qrcode.RecoveryLevel {
	switch errorCorrectionLevel {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateCheckpointTag renders the checkpoint's tag as a PNG.
func (s *checkpointTagService) GenerateCheckpointTag(checkpoint *entity.Checkpoint) ([]byte, error) {
	if checkpoint == nil || checkpoint.ID == uuid.Nil {
		return nil, errors.New("checkpoint is required")
	}

	jsonData, err := json.Marshal(CheckpointTagData{
		CheckpointID: checkpoint.ID.String(),
		LocationID:   checkpoint.LocationID.String(),
		Type:         checkpointTagType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal checkpoint tag")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseCheckpointTag decodes a scanned payload. Every malformed payload yields
// service.ErrInvalidCheckpointTag.
func (s *checkpointTagService) ParseCheckpointTag(payload string) (uuid.UUID, error) {
	var data CheckpointTagData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return uuid.Nil, errors.Wrap(service.ErrInvalidCheckpointTag, err.Error())
	}

	if data.Type != checkpointTagType {
		return uuid.Nil, errors.Wrapf(service.ErrInvalidCheckpointTag, "unexpected tag type %q", data.Type)
	}

	checkpointID, err := uuid.Parse(data.CheckpointID)
	if err != nil || checkpointID == uuid.Nil {
		return uuid.Nil, errors.Wrapf(service.ErrInvalidCheckpointTag, "bad checkpoint id %q", data.CheckpointID)
	}

	return checkpointID, nil
}
