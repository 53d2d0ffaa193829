package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"patrol/internal/domain/constants"
	"patrol/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription   = "projects/local/subscriptions/location-sync-sub"
	localMaxAttempts    = 3
	localRequestTimeout = 10 * time.Second
	requestIDHeader     = "X-Request-Id"
)

// localHTTPPublisher posts events straight to the worker's push endpoint in the
// same envelope Google Pub/Sub push uses. A 5xx reply is redelivered a few times,
// like a push subscription would.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	retryDelay time.Duration
	logger     *slog.Logger
}

// PubSubPushMessage is the Pub/Sub push envelope.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: localRequestTimeout,
		},
		retryDelay: 500 * time.Millisecond,
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishLocationSyncEvent(ctx context.Context, event *service.LocationSyncEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PubSubPushMessage{
		Subscription: localSubscription,
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = event.EventID
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.InfoContext(ctx, "[LocalPubSub] Publishing event",
		slog.String("endpoint", p.endpoint),
		slog.String(constants.AttrEventID, event.EventID),
		slog.Int("sample_count", event.SampleCount),
	)

	for attempt := 1; ; attempt++ {
		status, err := p.push(ctx, body, event.RequestID)
		if err == nil && status < http.StatusMultipleChoices {
			p.logger.InfoContext(ctx, "[LocalPubSub] Event delivered",
				slog.String(constants.AttrEventID, event.EventID),
				slog.Int("attempt", attempt),
			)

			return nil
		}
		if err == nil {
			err = errors.Errorf("worker returned non-success status: %d", status)
			if status < http.StatusInternalServerError {
				return err
			}
		}
		if attempt == localMaxAttempts {
			return errors.Wrapf(err, "event %s not delivered after %d attempts", event.EventID, attempt)
		}

		p.logger.WarnContext(ctx, "[LocalPubSub] Delivery failed, redelivering",
			slog.String(constants.AttrEventID, event.EventID),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(p.retryDelay * time.Duration(attempt)):
		}
	}
}

func (p *localHTTPPublisher) push(ctx context.Context, body []byte, requestID string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(requestIDHeader, requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
