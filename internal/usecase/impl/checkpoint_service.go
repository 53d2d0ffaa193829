package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"patrol/config"
	deliverycontext "patrol/internal/delivery/context"
	"patrol/internal/domain/entity"
	domainerrors "patrol/internal/domain/errors"
	"patrol/internal/domain/geo"
	"patrol/internal/domain/repository"
	"patrol/internal/domain/service"
	"patrol/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkpointService implements the CheckpointUsecase interface.
type checkpointService struct {
	checkpointRepo   repository.CheckpointRepository
	locationRepo     repository.PatrolLocationRepository
	verificationRepo repository.CheckpointVerificationRepository
	tagService       service.CheckpointTagService
	clock            service.Clock
	maxRadius        float64
	logger           *slog.Logger
}

// CheckpointServiceParams holds dependencies for CheckpointService, injected by Fx.
type CheckpointServiceParams struct {
	fx.In

	Config           *config.Config
	CheckpointRepo   repository.CheckpointRepository
	LocationRepo     repository.PatrolLocationRepository
	VerificationRepo repository.CheckpointVerificationRepository
	TagService       service.CheckpointTagService
	Clock            service.Clock
	Logger           *slog.Logger
}

// NewCheckpointService is the constructor for checkpointService.
func NewCheckpointService(params CheckpointServiceParams) usecase.CheckpointUsecase {
	return &checkpointService{
		checkpointRepo:   params.CheckpointRepo,
		locationRepo:     params.LocationRepo,
		verificationRepo: params.VerificationRepo,
		tagService:       params.TagService,
		clock:            params.Clock,
		maxRadius:        params.Config.Checkpoint.MaxRadius,
		logger:           params.Logger,
	}
}

func (srv *checkpointService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Verify records that the user visited the checkpoint. Calling it again for the same pair
// returns the first record unchanged.
func (srv *checkpointService) Verify(ctx context.Context, userID uuid.UUID, input *usecase.VerifyCheckpointInput) (*usecase.VerificationResult, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("verification input is required")
	}

	checkpoint, err := srv.checkpointRepo.FindCheckpointByID(ctx, input.CheckpointID)
	if err != nil {
		if errors.Is(err, repository.ErrCheckpointNotFound) {
			return nil, domainerrors.ErrCheckpointNotFound
		}

		return nil, srv.verificationFailed(ctx, "Failed to load checkpoint", input.CheckpointID, err)
	}

	// Advisory only; a guard may verify from anywhere.
	distance := geo.DistanceMeters(input.Latitude, input.Longitude, checkpoint.Latitude, checkpoint.Longitude)

	existing, err := srv.verificationRepo.FindByUserAndCheckpoint(ctx, userID, checkpoint.ID)
	switch {
	case err == nil:
		return alreadyVerified(existing, distance), nil
	case !errors.Is(err, repository.ErrVerificationNotFound):
		return nil, srv.verificationFailed(ctx, "Failed to look up verification", checkpoint.ID, err)
	}

	verification := &entity.CheckpointVerification{
		UserID:       userID,
		CheckpointID: checkpoint.ID,
		LocationID:   checkpoint.LocationID,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Timestamp:    srv.clock.Now().UTC(),
	}

	if err := srv.verificationRepo.Create(ctx, verification); err != nil {
		switch {
		case errors.Is(err, repository.ErrVerificationExists):
			// A concurrent request won the insert.
			winner, err := srv.verificationRepo.FindByUserAndCheckpoint(ctx, userID, checkpoint.ID)
			if err != nil {
				return nil, srv.verificationFailed(ctx, "Failed to reload concurrent verification", checkpoint.ID, err)
			}

			return alreadyVerified(winner, distance), nil
		case errors.Is(err, repository.ErrCheckpointNotFound):
			return nil, domainerrors.ErrCheckpointNotFound
		default:
			return nil, srv.verificationFailed(ctx, "Failed to create verification", checkpoint.ID, err)
		}
	}

	created, err := srv.verificationRepo.FindVerificationByID(ctx, verification.ID)
	if err != nil {
		return nil, srv.verificationFailed(ctx, "Failed to reload verification", checkpoint.ID, err)
	}

	srv.log(ctx).Info("Checkpoint verified",
		slog.String("user_id", userID.String()),
		slog.String("checkpoint_id", checkpoint.ID.String()),
		slog.Float64("distance_meters", distance),
	)

	return &usecase.VerificationResult{
		Verification:   created,
		Status:         entity.VerificationStatusVerified,
		DistanceMeters: distance,
	}, nil
}

// VerifyByTag decodes a scanned checkpoint tag and verifies the checkpoint it names.
func (srv *checkpointService) VerifyByTag(ctx context.Context, userID uuid.UUID, tagPayload string, lat, lon float64) (*usecase.VerificationResult, error) {
	checkpointID, err := srv.tagService.ParseCheckpointTag(tagPayload)
	if err != nil {
		return nil, domainerrors.ErrCheckpointTagInvalid.WithDetails(err.Error())
	}

	return srv.Verify(ctx, userID, &usecase.VerifyCheckpointInput{
		CheckpointID: checkpointID,
		Latitude:     lat,
		Longitude:    lon,
	})
}

// GetPatrolStatus counts how many checkpoints of the location the user has verified.
func (srv *checkpointService) GetPatrolStatus(ctx context.Context, userID, locationID uuid.UUID) (*entity.PatrolStatus, error) {
	location, err := srv.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrPatrolLocationNotFound) {
			return nil, domainerrors.ErrPatrolLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to load patrol location")
	}

	checkpoints, err := srv.checkpointRepo.FindByLocationID(ctx, locationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list checkpoints")
	}

	verifications, err := srv.verificationRepo.FindByUserAndLocation(ctx, userID, locationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list verifications")
	}

	verified := make(map[uuid.UUID]struct{}, len(verifications))
	for _, verification := range verifications {
		verified[verification.CheckpointID] = struct{}{}
	}

	count := 0
	for _, checkpoint := range checkpoints {
		if _, ok := verified[checkpoint.ID]; ok {
			count++
		}
	}

	return entity.NewPatrolStatus(location, len(checkpoints), count), nil
}

// GetNearbyCheckpoints returns checkpoints within radiusMeters, nearest first.
func (srv *checkpointService) GetNearbyCheckpoints(ctx context.Context, lat, lon, radiusMeters float64) ([]*entity.NearbyCheckpoint, error) {
	if !geo.IsValidCoordinate(lat, lon) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid coordinates")
	}
	if math.IsNaN(radiusMeters) || radiusMeters <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radius must be positive")
	}
	if srv.maxRadius > 0 && radiusMeters > srv.maxRadius {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("radius must not exceed %.0f meters", srv.maxRadius))
	}

	nearby, err := srv.checkpointRepo.FindNearby(ctx, lat, lon, radiusMeters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby checkpoints")
	}

	return nearby, nil
}

// GenerateCheckpointTag renders the printable QR tag of a checkpoint.
func (srv *checkpointService) GenerateCheckpointTag(ctx context.Context, checkpointID uuid.UUID) ([]byte, error) {
	checkpoint, err := srv.checkpointRepo.FindCheckpointByID(ctx, checkpointID)
	if err != nil {
		if errors.Is(err, repository.ErrCheckpointNotFound) {
			return nil, domainerrors.ErrCheckpointNotFound
		}

		return nil, errors.Wrap(err, "failed to load checkpoint")
	}

	png, err := srv.tagService.GenerateCheckpointTag(checkpoint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate checkpoint tag")
	}

	return png, nil
}

func (srv *checkpointService) verificationFailed(ctx context.Context, msg string, checkpointID uuid.UUID, err error) error {
	srv.log(ctx).Error(msg,
		slog.String("checkpoint_id", checkpointID.String()),
		slog.Any("error", err),
	)

	return domainerrors.ErrVerificationFailed.WithDetails(err.Error())
}

func alreadyVerified(verification *entity.CheckpointVerification, distance float64) *usecase.VerificationResult {
	return &usecase.VerificationResult{
		Verification:   verification,
		Status:         entity.VerificationStatusAlreadyVerified,
		DistanceMeters: distance,
	}
}
