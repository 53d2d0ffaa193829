package handler

import (
	"log/slog"
	"net/http"

	"patrol/config"
	"patrol/internal/delivery/api/middleware"
	"patrol/internal/delivery/api/response"
	"patrol/internal/domain/entity"
	"patrol/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckpointHandlerParams holds dependencies for CheckpointHandler, injected by Fx.
type CheckpointHandlerParams struct {
	fx.In

	Config       *config.Config
	CheckpointUC usecase.CheckpointUsecase
	Logger       *slog.Logger
}

// CheckpointHandler handles checkpoint verification and lookups.
type CheckpointHandler struct {
	checkpointUC  usecase.CheckpointUsecase
	defaultRadius float64
	logger        *slog.Logger
}

// NewCheckpointHandler is the constructor for CheckpointHandler
func NewCheckpointHandler(params CheckpointHandlerParams) *CheckpointHandler {
	return &CheckpointHandler{
		checkpointUC:  params.CheckpointUC,
		defaultRadius: params.Config.Checkpoint.DefaultRadius,
		logger:        params.Logger,
	}
}

// VerifyCheckpointRequest is the body of POST /checkpoints/verify.
type VerifyCheckpointRequest struct {
	CheckpointID string  `json:"checkpoint_id" validate:"required,uuid"`
	Latitude     float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude    float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// VerifyTagRequest is the body of POST /checkpoints/verify/tag.
type VerifyTagRequest struct {
	Payload   string  `json:"payload" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// GetNearbyCheckpoints lists checkpoints around a point, nearest first.
func (h *CheckpointHandler) GetNearbyCheckpoints(c echo.Context) error {
	var lat, lng float64
	radius := h.defaultRadius
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &lat).
		MustFloat64("lng", &lng).
		Float64("radius", &radius).
		BindError()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lat and lng are required numbers, radius is optional")
	}

	nearby, err := h.checkpointUC.GetNearbyCheckpoints(c.Request().Context(), lat, lng, radius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nearby)
}

// VerifyCheckpoint records a checkpoint visit.
func (h *CheckpointHandler) VerifyCheckpoint(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req VerifyCheckpointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	checkpointID, err := uuid.Parse(req.CheckpointID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid checkpoint ID")
	}

	result, err := h.checkpointUC.Verify(c.Request().Context(), userID, &usecase.VerifyCheckpointInput{
		CheckpointID: checkpointID,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return verificationResponse(c, result)
}

// VerifyCheckpointTag records a checkpoint visit from a scanned QR tag.
func (h *CheckpointHandler) VerifyCheckpointTag(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req VerifyTagRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tag verification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	result, err := h.checkpointUC.VerifyByTag(c.Request().Context(), userID, req.Payload, req.Latitude, req.Longitude)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return verificationResponse(c, result)
}

// GetCheckpointTag returns the printable PNG tag of a checkpoint.
func (h *CheckpointHandler) GetCheckpointTag(c echo.Context) error {
	checkpointID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid checkpoint ID")
	}

	png, err := h.checkpointUC.GenerateCheckpointTag(c.Request().Context(), checkpointID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetPatrolStatus reports the caller's progress through a patrol location.
func (h *CheckpointHandler) GetPatrolStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	status, err := h.checkpointUC.GetPatrolStatus(c.Request().Context(), userID, locationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

func verificationResponse(c echo.Context, result *usecase.VerificationResult) error {
	statusCode := http.StatusOK
	if result.Status == entity.VerificationStatusVerified {
		statusCode = http.StatusCreated
	}

	return response.Success(c, statusCode, result)
}
