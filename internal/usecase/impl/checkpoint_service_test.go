package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"patrol/config"
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

type checkpointServiceFixtures struct {
	service          usecase.CheckpointUsecase
	checkpointRepo   *mockRepo.MockCheckpointRepository
	locationRepo     *mockRepo.MockPatrolLocationRepository
	verificationRepo *mockRepo.MockCheckpointVerificationRepository
	tagService       *mockSvc.MockCheckpointTagService
	clock            *mockSvc.MockClock
}

func createTestCheckpointService(t *testing.T) checkpointServiceFixtures {
	checkpointRepo := mockRepo.NewMockCheckpointRepository(t)
	locationRepo := mockRepo.NewMockPatrolLocationRepository(t)
	verificationRepo := mockRepo.NewMockCheckpointVerificationRepository(t)
	tagService := mockSvc.NewMockCheckpointTagService(t)
	clock := mockSvc.NewMockClock(t)

	srv := NewCheckpointService(CheckpointServiceParams{
		Config: &config.Config{
			Checkpoint: &config.CheckpointConfig{DefaultRadius: 200, MaxRadius: 5000},
		},
		CheckpointRepo:   checkpointRepo,
		LocationRepo:     locationRepo,
		VerificationRepo: verificationRepo,
		TagService:       tagService,
		Clock:            clock,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return checkpointServiceFixtures{
		service:          srv,
		checkpointRepo:   checkpointRepo,
		locationRepo:     locationRepo,
		verificationRepo: verificationRepo,
		tagService:       tagService,
		clock:            clock,
	}
}

func testCheckpoint() *entity.Checkpoint {
	return &entity.Checkpoint{
		ID:         uuid.New(),
		LocationID: uuid.New(),
		Name:       "North gate",
		Latitude:   25.0330,
		Longitude:  121.5654,
	}
}

func TestCheckpointService_Verify_CreatesVerification(t *testing.T) {
	fx := createTestCheckpointService(t)
	ctx := t.Context()
	userID := uuid.New()
	checkpoint := testCheckpoint()
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	verificationID := uuid.New()
	input := &usecase.VerifyCheckpointInput{
		CheckpointID: checkpoint.ID,
		Latitude:     25.0331,
		Longitude:    121.5655,
	}

	fx.checkpointRepo.EXPECT().FindCheckpointByID(ctx, checkpoint.ID).Return(checkpoint, nil)
	fx.verificationRepo.EXPECT().
		FindByUserAndCheckpoint(ctx, userID, checkpoint.ID).
		Return(nil, repository.ErrVerificationNotFound)
	fx.clock.EXPECT().Now().Return(now)
	fx.verificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CheckpointVerification")).
		Run(func(_ context.Context, verification *entity.CheckpointVerification) {
			assert.Equal(t, userID, verification.UserID)
			assert.Equal(t, checkpoint.LocationID, verification.LocationID)
			assert.Equal(t, now, verification.Timestamp)
			assert.InDelta(t, 25.0331, verification.Latitude, 1e-9)
			verification.ID = verificationID
		}).
		Return(nil)
	stored := &entity.CheckpointVerification{
		ID:           verificationID,
		UserID:       userID,
		CheckpointID: checkpoint.ID,
		LocationID:   checkpoint.LocationID,
		Timestamp:    now,
	}
	fx.verificationRepo.EXPECT().FindVerificationByID(ctx, verificationID).Return(stored, nil)

	result, err := fx.service.Verify(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.VerificationStatusVerified, result.Status)
	assert.Same(t, stored, result.Verification)
	assert.Greater(t, result.DistanceMeters, 0.0)
	assert.Less(t, result.DistanceMeters, 20.0)
}

func TestCheckpointService_Verify_ExistingVerificationIsReturnedUnchanged(t *testing.T) {
	fx := createTestCheckpointService(t)
	ctx := t.Context()
	userID := uuid.New()
	checkpoint := testCheckpoint()
	first := &entity.CheckpointVerification{
		ID:           uuid.New(),
		UserID:       userID,
		CheckpointID: checkpoint.ID,
		Timestamp:    time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}

	fx.checkpointRepo.EXPECT().FindCheckpointByID(ctx, checkpoint.ID).Return(checkpoint, nil)
	fx.verificationRepo.EXPECT().FindByUserAndCheckpoint(ctx, userID, checkpoint.ID).Return(first, nil)

	// Far away from the checkpoint on purpose: proximity is never enforced.
	result, err := fx.service.Verify(ctx, userID, &usecase.VerifyCheckpointInput{
		CheckpointID: checkpoint.ID,
		Latitude:     40.7128,
		Longitude:    -74.0060,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.VerificationStatusAlreadyVerified, result.Status)
	assert.Equal(t, first.Timestamp, result.Verification.Timestamp)
	assert.Equal(t, first.ID, result.Verification.ID)
	fx.clock.AssertNotCalled(t, "Now")
	fx.verificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckpointService_Verify_CheckpointNotFoundComesFirst(t *testing.T) {
	fx := createTestCheckpointService(t)
	ctx := t.Context()
	checkpointID := uuid.New()

	fx.checkpointRepo.EXPECT().FindCheckpointByID(ctx, checkpointID).Return(nil, repository.ErrCheckpointNotFound)

	result, err := fx.service.Verify(ctx, uuid.New(), &usecase.VerifyCheckpointInput{CheckpointID: checkpointID})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, domainerrors.IsAppError(err, domainerrors.ErrCheckpointNotFound))
	fx.verificationRepo.AssertNotCalled(t, "FindByUserAndCheckpoint", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckpointService_Verify_ConcurrentInsertReturnsWinner(t *testing.T) {
	fx := createTestCheckpointService(t)
	ctx := t.Context()
	userID := uuid.New()
	checkpoint := testCheckpoint()
	winner := &entity.CheckpointVerification{ID: uuid.New(), UserID: userID, CheckpointID: checkpoint.ID}

	fx.checkpointRepo.EXPECT().FindCheckpointByID(ctx, checkpoint.ID).Return(checkpoint, nil)
	fx.verificationRepo.EXPECT().
		FindByUserAndCheckpoint(ctx, userID, checkpoint.ID).
		Return(nil, repository.ErrVerificationNotFound).Once()
	fx.clock.EXPECT().Now().Return(time.Now().UTC())
	fx.verificationRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrVerificationExists)
	fx.verificationRepo.EXPECT().FindByUserAndCheckpoint(ctx, userID, checkpoint.ID).Return(winner, nil).Once()

	result, err := fx.service.Verify(ctx, userID, &usecase.VerifyCheckpointInput{
		CheckpointID: checkpoint.ID,
		Latitude:     checkpoint.Latitude,
		Longitude:    checkpoint.Longitude,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.VerificationStatusAlreadyVerified, result.Status)
	assert.Same(t, winner, result.Verification)
	assert.InDelta(t, 0, result.DistanceMeters, 1e-9)
}

func TestCheckpointService_Verify_DependencyFailures(t *testing.T) {
	dbErr := errors.New("db unavailable")

	tests := []struct {
		name  string
		setup func(fx checkpointServiceFixtures, ctx context.Context, userID uuid.UUID, checkpoint *entity.Checkpoint)
	}{
		{
			name: "checkpoint lookup fails",
			setup: func(fx checkpointServiceFixtures, ctx context.Context, _ uuid.UUID, checkpoint *entity.Checkpoint) {
				fx.checkpointRepo.EXPECT().FindCheckpointByID(ctx, checkpoint.ID).Return(nil, dbErr)
			},
		},
		{
			name: "verification lookup fails",
			setup: func(fx checkpointServiceFixtures, ctx context.Context, userID uuid.UUID, checkpoint *entity.Checkpoint) {
				fx.checkpointRepo.EXPECT().FindCheckpointByID(ctx, checkpoint.ID).Return(checkpoint, nil)
				fx.verificationRepo.EXPECT().FindByUserAndCheckpoint(ctx, userID, checkpoint.ID).Return(nil, dbErr)
			},
		},
		{
			name: "create fails",
			setup: func(fx checkpointServiceFixtures, ctx context.Context, userID uuid.UUID, checkpoint *entity.Checkpoint) {
				fx.checkpointRepo.EXPECT().FindCheckpointByID(ctx, checkpoint.ID).Return(checkpoint, nil)
				fx.verificationRepo.EXPECT().
					FindByUserAndCheckpoint(ctx, userID, checkpoint.ID).
					Return(nil, repository.ErrVerificationNotFound)
				fx.clock.EXPECT().Now().Return(time.Now().UTC())
				fx.verificationRepo.EXPECT().Create(ctx, mock.Anything).Return(dbErr)
			},
		},
		{
			name: "re-read fails",
			setup: func(fx checkpointServiceFixtures, ctx context.Context, userID uuid.UUID, checkpoint *entity.Checkpoint) {
				fx.checkpointRepo.EXPECT().FindCheckpointByID(ctx, checkpoint.ID).Return(checkpoint, nil)
				fx.verificationRepo.EXPECT().
					FindByUserAndCheckpoint(ctx, userID, checkpoint.ID).
					Return(nil, repository.ErrVerificationNotFound)
				fx.clock.EXPECT().Now().Return(time.Now().UTC())
				fx.verificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
				fx.verificationRepo.EXPECT().FindVerificationByID(ctx, mock.Anything).Return(nil, dbErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckpointService(t)
			ctx := t.Context()
			userID := uuid.New()
			checkpoint := testCheckpoint()
			tt.setup(fx, ctx, userID, checkpoint)

			result, err := fx.service.Verify(ctx, userID, &usecase.VerifyCheckpointInput{CheckpointID: checkpoint.ID})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, domainerrors.IsAppError(err, domainerrors.ErrVerificationFailed))
		})
	}
}

func TestCheckpointService_Verify_NilInput(t *testing.T) {
	fx := createTestCheckpointService(t)

	_, err := fx.service.Verify(t.Context(), uuid.New(), nil)

	assert.True(t, domainerrors.IsAppError(err, domainerrors.ErrValidationFailed))
}

func TestCheckpointService_VerifyByTag(t *testing.T) {
	t.Run("valid tag verifies the decoded checkpoint", func(t *testing.T) {
		fx := createTestCheckpointService(t)
		ctx := t.Context()
		userID := uuid.New()
		checkpoint := testCheckpoint()
		existing := &entity.CheckpointVerification{ID: uuid.New(), CheckpointID: checkpoint.ID}

		fx.tagService.EXPECT().ParseCheckpointTag("payload").Return(checkpoint.ID, nil)
		fx.checkpointRepo.EXPECT().FindCheckpointByID(ctx, checkpoint.ID).Return(checkpoint, nil)
		fx.verificationRepo.EXPECT().FindByUserAndCheckpoint(ctx, userID, checkpoint.ID).Return(existing, nil)

		result, err := fx.service.VerifyByTag(ctx, userID, "payload", checkpoint.Latitude, checkpoint.Longitude)

		require.NoError(t, err)
		assert.Equal(t, entity.VerificationStatusAlreadyVerified, result.Status)
	})

	t.Run("invalid tag", func(t *testing.T) {
		fx := createTestCheckpointService(t)

		fx.tagService.EXPECT().
			ParseCheckpointTag("garbage").
			Return(uuid.Nil, errors.Wrap(service.ErrInvalidCheckpointTag, "not json"))

		result, err := fx.service.VerifyByTag(t.Context(), uuid.New(), "garbage", 0, 0)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, domainerrors.IsAppError(err, domainerrors.ErrCheckpointTagInvalid))
	})
}

func TestCheckpointService_GetPatrolStatus(t *testing.T) {
	locationID := uuid.New()
	cp1, cp2, cp3 := testCheckpoint(), testCheckpoint(), testCheckpoint()
	checkpoints := []*entity.Checkpoint{cp1, cp2, cp3}

	tests := []struct {
		name          string
		verifications []*entity.CheckpointVerification
		wantVerified  int
		wantComplete  bool
	}{
		{
			name:          "nothing verified",
			verifications: []*entity.CheckpointVerification{},
			wantVerified:  0,
		},
		{
			name: "partially verified",
			verifications: []*entity.CheckpointVerification{
				{CheckpointID: cp2.ID},
			},
			wantVerified: 1,
		},
		{
			name: "verification of a foreign checkpoint is ignored",
			verifications: []*entity.CheckpointVerification{
				{CheckpointID: cp1.ID},
				{CheckpointID: uuid.New()},
			},
			wantVerified: 1,
		},
		{
			name: "all verified",
			verifications: []*entity.CheckpointVerification{
				{CheckpointID: cp1.ID},
				{CheckpointID: cp2.ID},
				{CheckpointID: cp3.ID},
			},
			wantVerified: 3,
			wantComplete: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckpointService(t)
			ctx := t.Context()
			userID := uuid.New()

			fx.locationRepo.EXPECT().FindLocationByID(ctx, locationID).Return(&entity.PatrolLocation{ID: locationID, Name: "Warehouse 7"}, nil)
			fx.checkpointRepo.EXPECT().FindByLocationID(ctx, locationID).Return(checkpoints, nil)
			fx.verificationRepo.EXPECT().FindByUserAndLocation(ctx, userID, locationID).Return(tt.verifications, nil)

			status, err := fx.service.GetPatrolStatus(ctx, userID, locationID)

			require.NoError(t, err)
			assert.Equal(t, locationID, status.LocationID)
			assert.Equal(t, "Warehouse 7", status.LocationName)
			assert.Equal(t, 3, status.TotalCheckpoints)
			assert.Equal(t, tt.wantVerified, status.VerifiedCheckpoints)
			assert.Equal(t, tt.wantComplete, status.IsComplete)
		})
	}
}

func TestCheckpointService_GetPatrolStatus_LocationWithoutCheckpointsIsNotComplete(t *testing.T) {
	fx := createTestCheckpointService(t)
	ctx := t.Context()
	userID, locationID := uuid.New(), uuid.New()

	fx.locationRepo.EXPECT().FindLocationByID(ctx, locationID).Return(&entity.PatrolLocation{ID: locationID, Name: "Warehouse 7"}, nil)
	fx.checkpointRepo.EXPECT().FindByLocationID(ctx, locationID).Return([]*entity.Checkpoint{}, nil)
	fx.verificationRepo.EXPECT().FindByUserAndLocation(ctx, userID, locationID).Return(nil, nil)

	status, err := fx.service.GetPatrolStatus(ctx, userID, locationID)

	require.NoError(t, err)
	assert.Equal(t, 0, status.TotalCheckpoints)
	assert.False(t, status.IsComplete)
}

func TestCheckpointService_GetPatrolStatus_LocationNotFound(t *testing.T) {
	fx := createTestCheckpointService(t)
	ctx := t.Context()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().FindLocationByID(ctx, locationID).Return(nil, repository.ErrPatrolLocationNotFound)

	status, err := fx.service.GetPatrolStatus(ctx, uuid.New(), locationID)

	require.Error(t, err)
	assert.Nil(t, status)
	assert.True(t, domainerrors.IsAppError(err, domainerrors.ErrPatrolLocationNotFound))
}

func TestCheckpointService_GetNearbyCheckpoints(t *testing.T) {
	t.Run("delegates to repository", func(t *testing.T) {
		fx := createTestCheckpointService(t)
		ctx := t.Context()
		nearby := []*entity.NearbyCheckpoint{{Checkpoint: testCheckpoint(), DistanceMeters: 12}}

		fx.checkpointRepo.EXPECT().FindNearby(ctx, 25.03, 121.56, 500.0).Return(nearby, nil)

		got, err := fx.service.GetNearbyCheckpoints(ctx, 25.03, 121.56, 500)

		require.NoError(t, err)
		assert.Equal(t, nearby, got)
	})

	invalid := []struct {
		name     string
		lat, lon float64
		radius   float64
	}{
		{name: "latitude out of range", lat: 90.1, lon: 0, radius: 100},
		{name: "longitude out of range", lat: 0, lon: 181, radius: 100},
		{name: "zero radius", lat: 0, lon: 0, radius: 0},
		{name: "negative radius", lat: 0, lon: 0, radius: -5},
		{name: "radius above max", lat: 0, lon: 0, radius: 5000.1},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckpointService(t)

			got, err := fx.service.GetNearbyCheckpoints(t.Context(), tt.lat, tt.lon, tt.radius)

			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, domainerrors.IsAppError(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestCheckpointService_GenerateCheckpointTag(t *testing.T) {
	t.Run("renders tag", func(t *testing.T) {
		fx := createTestCheckpointService(t)
		ctx := t.Context()
		checkpoint := testCheckpoint()

		fx.checkpointRepo.EXPECT().FindCheckpointByID(ctx, checkpoint.ID).Return(checkpoint, nil)
		fx.tagService.EXPECT().GenerateCheckpointTag(checkpoint).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		png, err := fx.service.GenerateCheckpointTag(ctx, checkpoint.ID)

		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
	})

	t.Run("unknown checkpoint", func(t *testing.T) {
		fx := createTestCheckpointService(t)
		ctx := t.Context()
		checkpointID := uuid.New()

		fx.checkpointRepo.EXPECT().FindCheckpointByID(ctx, checkpointID).Return(nil, repository.ErrCheckpointNotFound)

		_, err := fx.service.GenerateCheckpointTag(ctx, checkpointID)

		assert.True(t, domainerrors.IsAppError(err, domainerrors.ErrCheckpointNotFound))
	})
}

// verificationStore backs the verification repository mock with an in-memory table
// so a test can run a whole patrol against it.
type verificationStore struct {
	byID map[uuid.UUID]*entity.CheckpointVerification
}

func (s *verificationStore) bind(repo *mockRepo.MockCheckpointVerificationRepository) {
	repo.EXPECT().FindByUserAndCheckpoint(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, userID, checkpointID uuid.UUID) (*entity.CheckpointVerification, error) {
			for _, v := range s.byID {
				if v.UserID == userID && v.CheckpointID == checkpointID {
					return v, nil
				}
			}

			return nil, repository.ErrVerificationNotFound
		}).Maybe()
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, v *entity.CheckpointVerification) error {
			v.ID = uuid.New()
			stored := *v
			s.byID[v.ID] = &stored

			return nil
		}).Maybe()
	repo.EXPECT().FindVerificationByID(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.CheckpointVerification, error) {
			if v, ok := s.byID[id]; ok {
				return v, nil
			}

			return nil, repository.ErrVerificationNotFound
		}).Maybe()
	repo.EXPECT().FindByUserAndLocation(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, userID, locationID uuid.UUID) ([]*entity.CheckpointVerification, error) {
			var out []*entity.CheckpointVerification
			for _, v := range s.byID {
				if v.UserID == userID && v.LocationID == locationID {
					out = append(out, v)
				}
			}

			return out, nil
		}).Maybe()
}

func TestCheckpointService_PatrolStatusNeverDecreasesDuringPatrol(t *testing.T) {
	fx := createTestCheckpointService(t)
	ctx := t.Context()
	userID := uuid.New()
	location := &entity.PatrolLocation{ID: uuid.New(), Name: "Warehouse 7"}

	checkpoints := make([]*entity.Checkpoint, 3)
	for i := range checkpoints {
		checkpoints[i] = &entity.Checkpoint{ID: uuid.New(), LocationID: location.ID, Latitude: 25.03, Longitude: 121.56}
		fx.checkpointRepo.EXPECT().FindCheckpointByID(mock.Anything, checkpoints[i].ID).Return(checkpoints[i], nil).Maybe()
	}
	fx.locationRepo.EXPECT().FindLocationByID(mock.Anything, location.ID).Return(location, nil)
	fx.checkpointRepo.EXPECT().FindByLocationID(mock.Anything, location.ID).Return(checkpoints, nil)

	tick := time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC)
	fx.clock.EXPECT().Now().RunAndReturn(func() time.Time {
		tick = tick.Add(time.Minute)

		return tick
	}).Maybe()

	store := &verificationStore{byID: map[uuid.UUID]*entity.CheckpointVerification{}}
	store.bind(fx.verificationRepo)

	status := func() *entity.PatrolStatus {
		s, err := fx.service.GetPatrolStatus(ctx, userID, location.ID)
		require.NoError(t, err)

		return s
	}
	verify := func(cp *entity.Checkpoint) *usecase.VerificationResult {
		res, err := fx.service.Verify(ctx, userID, &usecase.VerifyCheckpointInput{
			CheckpointID: cp.ID, Latitude: cp.Latitude, Longitude: cp.Longitude,
		})
		require.NoError(t, err)

		return res
	}

	last := status()
	assert.Equal(t, 0, last.VerifiedCheckpoints)
	assert.False(t, last.IsComplete)

	first := verify(checkpoints[0])
	assert.Equal(t, entity.VerificationStatusVerified, first.Status)

	visits := []*entity.Checkpoint{checkpoints[0], checkpoints[1], checkpoints[0], checkpoints[2], checkpoints[1]}
	for _, cp := range visits {
		res := verify(cp)
		if cp == checkpoints[0] {
			assert.Equal(t, entity.VerificationStatusAlreadyVerified, res.Status)
			assert.Equal(t, first.Verification.Timestamp, res.Verification.Timestamp)
		}

		current := status()
		assert.GreaterOrEqual(t, current.VerifiedCheckpoints, last.VerifiedCheckpoints)
		assert.LessOrEqual(t, current.VerifiedCheckpoints, current.TotalCheckpoints)
		last = current
	}

	assert.Equal(t, 3, last.VerifiedCheckpoints)
	assert.True(t, last.IsComplete)
	assert.Len(t, store.byID, 3)
}
