package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"patrol/config"
	deliverycontext "patrol/internal/delivery/context"
	"patrol/internal/domain/constants"
	"patrol/internal/domain/entity"
	"patrol/internal/domain/service"
	mockUC "patrol/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, provider, env string) (*PushHandler, *mockUC.MockLocationSyncUsecase) {
	syncUC := mockUC.NewMockLocationSyncUsecase(t)
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: provider},
		Sync:   &config.SyncConfig{BatchSize: 100},
	}
	cfg.Env.Env = env

	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		SyncUC: syncUC,
	})

	return h, syncUC
}

func pushRequest(t *testing.T, event *service.LocationSyncEvent, attrs map[string]string) *http.Request {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "1"
	msg.Subscription = "projects/local/subscriptions/location-sync-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func servePush(h *PushHandler, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func outcomeOf(synced, failed []int64) *entity.SyncOutcome {
	outcome := entity.NewSyncOutcome()
	for _, id := range synced {
		outcome.MarkSynced(id)
	}
	for _, id := range failed {
		outcome.MarkFailed(id)
	}

	return outcome
}

func TestPushHandler_HandlePush_Synced(t *testing.T) {
	h, syncUC := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

	syncUC.EXPECT().SyncUnsynced(mock.Anything, 100).
		Run(func(ctx context.Context, _ int) {
			assert.Equal(t, "req-1", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(outcomeOf([]int64{1, 2}, nil), nil)

	rec := servePush(h, pushRequest(t, &service.LocationSyncEvent{EventID: "e1", SampleCount: 2},
		map[string]string{constants.AttrRequestID: "req-1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_EventBatchSize(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{name: "smaller batch honoured", requested: 25, want: 25},
		{name: "unset uses configured", requested: 0, want: 100},
		{name: "capped at configured", requested: 1_000_000, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, syncUC := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

			syncUC.EXPECT().SyncUnsynced(mock.Anything, tt.want).Return(outcomeOf(nil, nil), nil).Once()

			rec := servePush(h, pushRequest(t, &service.LocationSyncEvent{EventID: "e2", BatchSize: tt.requested}, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_FailuresAreRetried(t *testing.T) {
	h, syncUC := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

	syncUC.EXPECT().SyncUnsynced(mock.Anything, 100).Return(outcomeOf([]int64{1, 3}, []int64{2}), nil)

	rec := servePush(h, pushRequest(t, &service.LocationSyncEvent{EventID: "e3"}, nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_NonRetryableErrorIsAcknowledged(t *testing.T) {
	h, syncUC := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

	syncUC.EXPECT().SyncUnsynced(mock.Anything, 100).Return(nil, errors.New("batch size must be positive"))

	rec := servePush(h, pushRequest(t, &service.LocationSyncEvent{EventID: "e4"}, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"message":`},
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "data not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("plain")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)
			req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			rec := servePush(h, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_VerifiesGoogleToken(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvProduction)
		require.True(t, h.verifyPushAuth)

		rec := servePush(h, pushRequest(t, &service.LocationSyncEvent{EventID: "e5"}, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvProduction)
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}
		req := pushRequest(t, &service.LocationSyncEvent{EventID: "e6"}, nil)
		req.Header.Set("Authorization", "Bearer token")

		rec := servePush(h, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, syncUC := newTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvProduction)
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "token", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{
				Issuer: "https://accounts.google.com",
				Claims: map[string]any{"email_verified": true},
			}, nil
		}
		syncUC.EXPECT().SyncUnsynced(mock.Anything, 100).Return(outcomeOf([]int64{9}, nil), nil)
		req := pushRequest(t, &service.LocationSyncEvent{EventID: "e7"}, nil)
		req.Header.Set("Authorization", "Bearer token")

		rec := servePush(h, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

	var msg PubSubMessage
	event := &service.LocationSyncEvent{RequestID: "from-event"}
	assert.Equal(t, "from-event", h.extractRequestID(context.Background(), &msg, event))

	msg.Message.Attributes = map[string]string{constants.AttrRequestID: "from-attr"}
	assert.Equal(t, "from-attr", h.extractRequestID(context.Background(), &msg, event))

	ctx := deliverycontext.WithRequestID(context.Background(), "from-header")
	assert.Equal(t, "from-header", h.extractRequestID(ctx, &PubSubMessage{}, &service.LocationSyncEvent{}))

	assert.NotEmpty(t, h.extractRequestID(context.Background(), &PubSubMessage{}, &service.LocationSyncEvent{}))
}
