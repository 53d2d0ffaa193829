package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	deliverycontext "patrol/internal/delivery/context"
	"patrol/internal/domain/entity"
	domainerrors "patrol/internal/domain/errors"
	"patrol/internal/domain/geo"
	"patrol/internal/domain/repository"
	"patrol/internal/domain/service"
	"patrol/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// locationBatchService implements the LocationBatchUsecase interface.
type locationBatchService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// LocationBatchServiceParams holds dependencies for LocationBatchService, injected by Fx.
type LocationBatchServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewLocationBatchService is the constructor for locationBatchService.
func NewLocationBatchService(params LocationBatchServiceParams) usecase.LocationBatchUsecase {
	return &locationBatchService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *locationBatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProcessBatch validates the whole batch up front, then writes it in a single transaction.
func (srv *locationBatchService) ProcessBatch(ctx context.Context, userID uuid.UUID, samples []*usecase.LocationSampleInput) (*entity.SyncOutcome, error) {
	if samples == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("samples are required")
	}
	if len(samples) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("batch is empty")
	}

	locationSamples := make([]*entity.LocationSample, 0, len(samples))
	for idx, input := range samples {
		if err := validateSample(idx, input); err != nil {
			return nil, err
		}

		locationSamples = append(locationSamples, &entity.LocationSample{
			UserID:    userID,
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
			Accuracy:  input.Accuracy,
			Timestamp: input.Timestamp.UTC(),
			IsSynced:  false,
		})
	}

	var ids []int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		ids, err = repoFactory.NewLocationRepository().AddRange(ctx, locationSamples)

		return err
	})
	if err != nil {
		if domainerrors.IsAppError(err, domainerrors.ErrValidationFailed) {
			return nil, err
		}

		srv.log(ctx).Error("Failed to persist location batch",
			slog.String("user_id", userID.String()),
			slog.Int("sample_count", len(samples)),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrLocationBatchFailed.WithDetails(err.Error())
	}

	if len(ids) != len(locationSamples) {
		return nil, domainerrors.ErrLocationBatchFailed.WithDetails(
			fmt.Sprintf("expected %d ids, got %d", len(locationSamples), len(ids)))
	}

	outcome := entity.NewSyncOutcome()
	for _, id := range ids {
		outcome.MarkSynced(id)
	}

	srv.log(ctx).Info("Location batch stored",
		slog.String("user_id", userID.String()),
		slog.Int("sample_count", outcome.SuccessCount()),
	)

	srv.publishSyncEvent(ctx, userID, outcome.SuccessCount())

	return outcome, nil
}

func (srv *locationBatchService) publishSyncEvent(ctx context.Context, userID uuid.UUID, sampleCount int) {
	event := &service.LocationSyncEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     uuid.NewString(),
		UserID:      userID.String(),
		SampleCount: sampleCount,
	}

	if err := srv.publisher.PublishLocationSyncEvent(ctx, event); err != nil {
		// The samples are stored; the periodic sync picks them up regardless.
		srv.log(ctx).Warn("Failed to publish location sync event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}

func validateSample(idx int, input *usecase.LocationSampleInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("sample %d is missing", idx))
	case !geo.IsValidCoordinate(input.Latitude, input.Longitude):
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("sample %d has invalid coordinates", idx))
	case math.IsNaN(input.Accuracy) || input.Accuracy < 0:
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("sample %d has negative accuracy", idx))
	case input.Timestamp.IsZero():
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("sample %d has no timestamp", idx))
	}

	return nil
}
