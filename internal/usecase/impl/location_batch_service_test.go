package impl

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"patrol/internal/domain/entity"
	domainerrors "patrol/internal/domain/errors"
	"patrol/internal/domain/repository"
	"patrol/internal/domain/service"
	mockRepo "patrol/internal/mocks/repository"
	mockSvc "patrol/internal/mocks/service"
	"patrol/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type locationBatchServiceFixtures struct {
	service      usecase.LocationBatchUsecase
	txManager    *mockRepo.MockTransactionManager
	locationRepo *mockRepo.MockLocationRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestLocationBatchService(t *testing.T) locationBatchServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	srv := NewLocationBatchService(LocationBatchServiceParams{
		TxManager: txManager,
		Publisher: publisher,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return locationBatchServiceFixtures{
		service:      srv,
		txManager:    txManager,
		locationRepo: locationRepo,
		publisher:    publisher,
	}
}

// expectTransaction runs the transactional callback against a factory that hands out the
// fixture's location repository.
func (fx locationBatchServiceFixtures) expectTransaction(t *testing.T) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewLocationRepository().Return(fx.locationRepo)

			return fn(factory)
		})
}

func sampleInputs(n int) []*usecase.LocationSampleInput {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))
	inputs := make([]*usecase.LocationSampleInput, 0, n)
	for i := 0; i < n; i++ {
		inputs = append(inputs, &usecase.LocationSampleInput{
			Latitude:  25.0330 + float64(i)*0.0001,
			Longitude: 121.5654,
			Accuracy:  5,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
	}

	return inputs
}

func TestLocationBatchService_ProcessBatch_Success(t *testing.T) {
	fx := createTestLocationBatchService(t)
	ctx := t.Context()
	userID := uuid.New()
	inputs := sampleInputs(3)

	fx.expectTransaction(t)
	fx.locationRepo.EXPECT().
		AddRange(mock.Anything, mock.AnythingOfType("[]*entity.LocationSample")).
		RunAndReturn(func(_ context.Context, samples []*entity.LocationSample) ([]int64, error) {
			require.Len(t, samples, 3)
			for i, sample := range samples {
				assert.Equal(t, userID, sample.UserID)
				assert.False(t, sample.IsSynced)
				assert.Equal(t, time.UTC, sample.Timestamp.Location())
				assert.True(t, sample.Timestamp.Equal(inputs[i].Timestamp))
			}

			return []int64{11, 12, 13}, nil
		})
	fx.publisher.EXPECT().
		PublishLocationSyncEvent(mock.Anything, mock.AnythingOfType("*service.LocationSyncEvent")).
		Run(func(_ context.Context, event *service.LocationSyncEvent) {
			assert.Equal(t, userID.String(), event.UserID)
			assert.Equal(t, 3, event.SampleCount)
			assert.NotEmpty(t, event.EventID)
		}).
		Return(nil)

	outcome, err := fx.service.ProcessBatch(ctx, userID, inputs)

	require.NoError(t, err)
	assert.Equal(t, []int64{11, 12, 13}, outcome.SyncedIDs)
	assert.Empty(t, outcome.FailedIDs)
}

func TestLocationBatchService_ProcessBatch_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestLocationBatchService(t)
	ctx := t.Context()

	fx.expectTransaction(t)
	fx.locationRepo.EXPECT().AddRange(mock.Anything, mock.Anything).Return([]int64{7}, nil)
	fx.publisher.EXPECT().PublishLocationSyncEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	outcome, err := fx.service.ProcessBatch(ctx, uuid.New(), sampleInputs(1))

	require.NoError(t, err)
	assert.Equal(t, []int64{7}, outcome.SyncedIDs)
}

func TestLocationBatchService_ProcessBatch_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		inputs func() []*usecase.LocationSampleInput
	}{
		{
			name:   "nil batch",
			inputs: func() []*usecase.LocationSampleInput { return nil },
		},
		{
			name:   "empty batch",
			inputs: func() []*usecase.LocationSampleInput { return []*usecase.LocationSampleInput{} },
		},
		{
			name: "nil sample",
			inputs: func() []*usecase.LocationSampleInput {
				inputs := sampleInputs(2)
				inputs[1] = nil

				return inputs
			},
		},
		{
			name: "latitude out of range",
			inputs: func() []*usecase.LocationSampleInput {
				inputs := sampleInputs(2)
				inputs[1].Latitude = 91

				return inputs
			},
		},
		{
			name: "longitude out of range",
			inputs: func() []*usecase.LocationSampleInput {
				inputs := sampleInputs(1)
				inputs[0].Longitude = -180.5

				return inputs
			},
		},
		{
			name: "negative accuracy",
			inputs: func() []*usecase.LocationSampleInput {
				inputs := sampleInputs(1)
				inputs[0].Accuracy = -1

				return inputs
			},
		},
		{
			name: "NaN accuracy",
			inputs: func() []*usecase.LocationSampleInput {
				inputs := sampleInputs(1)
				inputs[0].Accuracy = math.NaN()

				return inputs
			},
		},
		{
			name: "zero timestamp",
			inputs: func() []*usecase.LocationSampleInput {
				inputs := sampleInputs(1)
				inputs[0].Timestamp = time.Time{}

				return inputs
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLocationBatchService(t)

			outcome, err := fx.service.ProcessBatch(t.Context(), uuid.New(), tt.inputs())

			require.Error(t, err)
			assert.Nil(t, outcome)
			assert.True(t, domainerrors.IsAppError(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestLocationBatchService_ProcessBatch_StoreFailure(t *testing.T) {
	fx := createTestLocationBatchService(t)

	fx.expectTransaction(t)
	fx.locationRepo.EXPECT().AddRange(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	outcome, err := fx.service.ProcessBatch(t.Context(), uuid.New(), sampleInputs(2))

	require.Error(t, err)
	assert.Nil(t, outcome)
	assert.True(t, domainerrors.IsAppError(err, domainerrors.ErrLocationBatchFailed))
	assert.Contains(t, err.Error(), "connection reset")
}

func TestLocationBatchService_ProcessBatch_RepositoryValidationPassesThrough(t *testing.T) {
	fx := createTestLocationBatchService(t)

	fx.expectTransaction(t)
	fx.locationRepo.EXPECT().AddRange(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("accuracy violates check"))

	_, err := fx.service.ProcessBatch(t.Context(), uuid.New(), sampleInputs(1))

	require.Error(t, err)
	assert.True(t, domainerrors.IsAppError(err, domainerrors.ErrValidationFailed))
}

func TestLocationBatchService_ProcessBatch_IDCountMismatch(t *testing.T) {
	fx := createTestLocationBatchService(t)

	fx.expectTransaction(t)
	fx.locationRepo.EXPECT().AddRange(mock.Anything, mock.Anything).Return([]int64{1}, nil)

	_, err := fx.service.ProcessBatch(t.Context(), uuid.New(), sampleInputs(2))

	require.Error(t, err)
	assert.True(t, domainerrors.IsAppError(err, domainerrors.ErrLocationBatchFailed))
}
