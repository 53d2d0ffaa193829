package impl

import (
	"context"
	"log/slog"

	deliverycontext "patrol/internal/delivery/context"
	"patrol/internal/domain/entity"
	domainerrors "patrol/internal/domain/errors"
	"patrol/internal/domain/repository"
	"patrol/internal/usecase"

	"go.uber.org/fx"
)

// locationSyncService implements the LocationSyncUsecase interface.
type locationSyncService struct {
	locationRepo repository.LocationRepository
	logger       *slog.Logger
}

// LocationSyncServiceParams holds dependencies for LocationSyncService, injected by Fx.
type LocationSyncServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	Logger       *slog.Logger
}

// NewLocationSyncService is the constructor for locationSyncService.
func NewLocationSyncService(params LocationSyncServiceParams) usecase.LocationSyncUsecase {
	return &locationSyncService{
		locationRepo: params.LocationRepo,
		logger:       params.Logger,
	}
}

func (srv *locationSyncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SyncUnsynced tries one bulk update first and falls back to per-sample updates,
// so one bad row never blocks the rest. Only a bad batch size is returned as an error.
func (srv *locationSyncService) SyncUnsynced(ctx context.Context, batchSize int) (*entity.SyncOutcome, error) {
	if batchSize <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("batch size must be positive")
	}

	outcome := entity.NewSyncOutcome()

	samples, err := srv.locationRepo.FindUnsynced(ctx, batchSize)
	if err != nil {
		srv.log(ctx).Warn("Failed to fetch unsynced location samples", slog.Any("error", err))

		return outcome, nil
	}
	if len(samples) == 0 {
		return outcome, nil
	}

	ids := make([]int64, 0, len(samples))
	for _, sample := range samples {
		ids = append(ids, sample.ID)
	}

	allUpdated, err := srv.locationRepo.UpdateSyncStatus(ctx, ids, true)
	if err == nil && allUpdated {
		for _, id := range ids {
			outcome.MarkSynced(id)
		}
		srv.log(ctx).Info("Location samples synced", slog.Int("synced", outcome.SuccessCount()))

		return outcome, nil
	}

	srv.log(ctx).Warn("Bulk sync update incomplete, retrying per sample",
		slog.Int("sample_count", len(ids)),
		slog.Any("error", err),
	)

	for _, id := range ids {
		updated, err := srv.locationRepo.UpdateSyncStatus(ctx, []int64{id}, true)
		if err != nil || !updated {
			srv.log(ctx).Warn("Failed to mark location sample synced",
				slog.Int64("sample_id", id),
				slog.Any("error", err),
			)
			outcome.MarkFailed(id)

			continue
		}
		outcome.MarkSynced(id)
	}

	srv.log(ctx).Info("Location samples synced with fallback",
		slog.Int("synced", outcome.SuccessCount()),
		slog.Int("failed", outcome.FailureCount()),
	)

	return outcome, nil
}
