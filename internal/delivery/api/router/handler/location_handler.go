package handler

import (
	"log/slog"
	"net/http"
	"time"

	"patrol/internal/delivery/api/middleware"
	"patrol/internal/delivery/api/response"
	"patrol/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	BatchUC usecase.LocationBatchUsecase
	Logger  *slog.Logger
}

// LocationHandler handles location sample uploads.
type LocationHandler struct {
	batchUC usecase.LocationBatchUsecase
	logger  *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		batchUC: params.BatchUC,
		logger:  params.Logger,
	}
}

// LocationSampleRequest is a single GPS fix in a batch upload.
type LocationSampleRequest struct {
	Latitude  float64   `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64   `json:"longitude" validate:"gte=-180,lte=180"`
	Accuracy  float64   `json:"accuracy" validate:"gte=0"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
}

// LocationBatchRequest is the body of POST /locations/batch. A device with a longer
// backlog splits it into several requests.
type LocationBatchRequest struct {
	Samples []*LocationSampleRequest `json:"samples" validate:"required,min=1,max=1000,dive,required"`
}

// UploadBatch stores a batch of location samples recorded while offline.
func (h *LocationHandler) UploadBatch(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req LocationBatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location batch input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	samples := make([]*usecase.LocationSampleInput, 0, len(req.Samples))
	for _, sample := range req.Samples {
		samples = append(samples, &usecase.LocationSampleInput{
			Latitude:  sample.Latitude,
			Longitude: sample.Longitude,
			Accuracy:  sample.Accuracy,
			Timestamp: sample.Timestamp,
		})
	}

	outcome, err := h.batchUC.ProcessBatch(c.Request().Context(), userID, samples)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, outcome)
}
