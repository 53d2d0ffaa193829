// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"patrol/internal/domain/entity"
)

// LocationRepository defines the interface for location sample persistence.
type LocationRepository interface {
	// AddRange inserts all samples in one bulk operation and returns the
	// assigned ids in input order.
	AddRange(ctx context.Context, samples []*entity.LocationSample) ([]int64, error)

	// FindUnsynced returns up to limit samples with is_synced = false, oldest first.
	FindUnsynced(ctx context.Context, limit int) ([]*entity.LocationSample, error)

	// UpdateSyncStatus sets is_synced on the given ids. It reports true only when
	// every id was updated.
	UpdateSyncStatus(ctx context.Context, ids []int64, synced bool) (bool, error)
}
