// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"patrol/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationSampleInput is a single GPS fix as uploaded by a device.
type LocationSampleInput struct {
	Latitude  float64   `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64   `json:"longitude" validate:"gte=-180,lte=180"`
	Accuracy  float64   `json:"accuracy" validate:"gte=0"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
}

// LocationBatchUsecase ingests batches of location samples uploaded by guards.
type LocationBatchUsecase interface {
	// ProcessBatch persists every sample in one bulk write and reports the assigned ids
	// in input order. A nil batch is rejected before anything is written.
	ProcessBatch(ctx context.Context, userID uuid.UUID, samples []*LocationSampleInput) (*entity.SyncOutcome, error)
}

// LocationSyncUsecase reconciles location samples that are not yet marked synced.
type LocationSyncUsecase interface {
	// SyncUnsynced marks up to batchSize unsynced samples as synced, oldest first.
	// Every fetched id ends up in exactly one list of the outcome.
	SyncUnsynced(ctx context.Context, batchSize int) (*entity.SyncOutcome, error)
}
