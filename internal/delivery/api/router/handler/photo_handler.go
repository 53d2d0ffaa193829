package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"patrol/internal/delivery/api/middleware"
	"patrol/internal/delivery/api/response"
	"patrol/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const photoFormField = "photo"

// PhotoHandlerParams holds dependencies for PhotoHandler, injected by Fx.
type PhotoHandlerParams struct {
	fx.In

	PhotoUC usecase.PhotoUsecase
	Logger  *slog.Logger
}

// PhotoHandler handles evidence photo upload and retrieval.
type PhotoHandler struct {
	photoUC usecase.PhotoUsecase
	logger  *slog.Logger
}

// NewPhotoHandler is the constructor for PhotoHandler
func NewPhotoHandler(params PhotoHandlerParams) *PhotoHandler {
	return &PhotoHandler{
		photoUC: params.PhotoUC,
		logger:  params.Logger,
	}
}

// UploadPhotoRequest holds the form values sent alongside the "photo" file part.
type UploadPhotoRequest struct {
	Latitude  *float64   `form:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64   `form:"longitude" validate:"required,gte=-180,lte=180"`
	Timestamp *time.Time `form:"timestamp"` // RFC 3339; optional
}

// UploadPhoto accepts a multipart upload with the image in the "photo" field.
func (h *PhotoHandler) UploadPhoto(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UploadPhotoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid photo upload input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	fileHeader, err := c.FormFile(photoFormField)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Photo file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable photo file")
	}
	defer file.Close()

	photo, err := h.photoUC.Upload(c.Request().Context(), userID, &usecase.UploadPhotoInput{
		Content:   file,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, photo)
}

// GetPhoto returns photo metadata.
func (h *PhotoHandler) GetPhoto(c echo.Context) error {
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid photo ID")
	}

	photo, err := h.photoUC.GetPhoto(c.Request().Context(), photoID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, photo)
}

// GetPhotoContent streams the stored image.
func (h *PhotoHandler) GetPhotoContent(c echo.Context) error {
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid photo ID")
	}

	photo, content, err := h.photoUC.OpenPhoto(c.Request().Context(), photoID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer content.Close()

	if photo.SizeBytes > 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(photo.SizeBytes, 10))
	}

	return c.Stream(http.StatusOK, photo.ContentType, content)
}

// DeletePhoto removes a photo and its stored image.
func (h *PhotoHandler) DeletePhoto(c echo.Context) error {
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid photo ID")
	}

	if err := h.photoUC.DeletePhoto(c.Request().Context(), photoID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Photo deleted successfully"})
}
