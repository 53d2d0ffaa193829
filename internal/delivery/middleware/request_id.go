package middleware

import (
	"log/slog"
	"strings"
	"unicode"

	deliverycontext "patrol/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxRequestIDLength = 128

// RequestIDMiddleware assigns every request an id and a logger carrying it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process takes the id from X-Request-Id, then from the Cloud trace header,
// and generates one when neither is usable.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := resolveRequestID(c.Request().Header)

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

type headerGetter interface {
	Get(key string) string
}

func resolveRequestID(h headerGetter) string {
	if id := h.Get(deliverycontext.HeaderXRequestID); validRequestID(id) {
		return id
	}

	// Format: TRACE_ID/SPAN_ID;o=OPTIONS
	if trace := h.Get(deliverycontext.HeaderCloudTrace); trace != "" {
		traceID, _, _ := strings.Cut(trace, "/")
		if validRequestID(traceID) {
			return traceID
		}
	}

	return uuid.New().String()
}

// validRequestID keeps client-supplied ids short and printable so they are safe in log lines.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	for _, r := range id {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return false
		}
	}

	return true
}
